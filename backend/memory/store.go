// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"bytes"
	"errors"
	"sync"

	"github.com/0xsoniclabs/outcome/backend"
	"github.com/0xsoniclabs/outcome/common/optional"
	"github.com/0xsoniclabs/outcome/common/result"
)

// ErrClosed is reported for operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Store is an in-memory backend.Store implementation. It is mainly intended
// for tests and tools not requiring persistence. It is safe for concurrent
// use.
type Store struct {
	data   map[string][]byte
	closed bool
	mutex  sync.RWMutex
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: map[string][]byte{}}
}

func (s *Store) Get(key []byte) result.Result[optional.Optional[[]byte]] {
	if err := backend.CheckKey(key); err != nil {
		return result.Err[optional.Optional[[]byte]](err)
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return backend.ReadFailure(key, ErrClosed)
	}
	value, found := s.data[string(key)]
	if !found {
		return backend.Miss()
	}
	return backend.Hit(bytes.Clone(value))
}

func (s *Store) Put(key, value []byte) error {
	if err := backend.CheckKey(key); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.data[string(key)] = bytes.Clone(value)
	return nil
}

func (s *Store) Delete(key []byte) error {
	if err := backend.CheckKey(key); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return ErrClosed
	}
	delete(s.data, string(key))
	return nil
}

func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.closed = true
	s.data = nil
	return nil
}
