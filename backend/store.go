// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package backend

//go:generate mockgen -source store.go -destination store_mocks.go -package backend

import (
	"encoding/hex"
	"fmt"

	"github.com/0xsoniclabs/outcome/common/guard"
	"github.com/0xsoniclabs/outcome/common/optional"
	"github.com/0xsoniclabs/outcome/common/result"
)

// Store is a key/value store whose lookups distinguish between missing keys
// and failed reads. A lookup of a missing key is a successful Result holding
// an absent Optional; a failed read is a failed Result carrying the error
// reported by the underlying storage as its cause.
type Store interface {
	// Get retrieves the value associated to the given key.
	Get(key []byte) result.Result[optional.Optional[[]byte]]
	// Put associates the given value to the given key.
	Put(key, value []byte) error
	// Delete removes the given key from the store. Deleting a missing key is
	// not an error.
	Delete(key []byte) error
	// Close releases resources held by the store.
	Close() error
}

// Lookup retrieves the value associated to the given key from the store and
// decodes it using the given decoder. Missing keys are reported as absent,
// decoding errors as failures.
func Lookup[T any](store Store, key []byte, decode func([]byte) result.Result[T]) result.Result[optional.Optional[T]] {
	guard.MustNotBeAbsent(store, "store")
	guard.MustNotBeAbsent(decode, "decode")
	return result.Bind(store.Get(key), func(data optional.Optional[[]byte]) result.Result[optional.Optional[T]] {
		value, present := data.Get()
		if !present {
			return result.Ok(optional.None[T]())
		}
		return result.Map(decode(value), optional.Some[T])
	})
}

// Miss is the result of a lookup of a missing key.
func Miss() result.Result[optional.Optional[[]byte]] {
	return result.Ok(optional.None[[]byte]())
}

// Hit is the result of a lookup of a present key.
func Hit(value []byte) result.Result[optional.Optional[[]byte]] {
	return result.Ok(optional.Some(value))
}

// ReadFailure is the result of a lookup failing with the given error.
func ReadFailure(key []byte, err error) result.Result[optional.Optional[[]byte]] {
	return result.FailedWith[optional.Optional[[]byte]](
		fmt.Sprintf("failed to read key %s", hex.EncodeToString(key)), err,
	)
}

// CheckKey reports an error if the given key can not be used for accessing
// a store.
func CheckKey(key []byte) error {
	return guard.RejectIfEmpty(key, "key")
}
