// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/outcome/backend"
	"github.com/0xsoniclabs/outcome/common/guard"
	"github.com/0xsoniclabs/outcome/common/optional"
	"github.com/0xsoniclabs/outcome/common/result"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// Store is a backend.Store implementation persisting its data in a LevelDB
// instance. Values are stored snappy-compressed.
type Store struct {
	db *leveldb.DB
}

// Open opens the LevelDB instance in the given directory, creating it if
// needed.
func Open(dir string) (*Store, error) {
	if err := guard.RejectIfEmpty(dir, "dir"); err != nil {
		return nil, err
	}
	db, err := leveldb.OpenFile(dir, &opt.Options{
		Compression: opt.SnappyCompression,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB in %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key []byte) result.Result[optional.Optional[[]byte]] {
	if err := backend.CheckKey(key); err != nil {
		return result.Err[optional.Optional[[]byte]](err)
	}
	value, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return backend.Miss()
	}
	if err != nil {
		return backend.ReadFailure(key, err)
	}
	return backend.Hit(value)
}

func (s *Store) Put(key, value []byte) error {
	if err := backend.CheckKey(key); err != nil {
		return err
	}
	return s.db.Put(key, value, nil)
}

func (s *Store) Delete(key []byte) error {
	if err := backend.CheckKey(key); err != nil {
		return err
	}
	return s.db.Delete(key, nil)
}

func (s *Store) Close() error {
	return s.db.Close()
}
