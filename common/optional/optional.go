// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package optional provides a carrier for values that may be absent. It is
// intended to replace nil pointers and (value, ok) pairs in places where a
// single type is needed, like struct fields, channels or containers.
//
// An Optional is either present, holding a value, or absent. The zero value
// of an Optional is absent. Optionals are immutable; all operations produce
// new instances and may thus be used concurrently without synchronization.
//
// Instead of inspecting the state of an Optional directly, the combinators
// Bind, Map, OrElse, OrElseGet, OrElseFrom and OrElseThrow may be used to
// transform, recover or extract the contained value:
//
//	name := optional.Bind(lookupUser(id), func(u User) optional.Optional[string] {
//	   return u.Nickname
//	}).OrElseGet(func() string { return "anonymous" })
package optional

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/outcome/common/equality"
	"github.com/cespare/xxhash/v2"
)

var (
	// ErrInvalidState is matched by errors reporting an attempt to access a
	// value of a carrier not holding one.
	ErrInvalidState = errors.New("invalid state")

	// ErrAbsent is reported when accessing the value of an absent Optional.
	ErrAbsent = fmt.Errorf("%w: value is absent", ErrInvalidState)

	// ErrNilError is reported by OrElseThrow if the error factory does not
	// produce an error.
	ErrNilError = errors.New("error factory returned nil")
)

// Optional is either holding a value of type T or absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some creates an Optional holding the given value. Nil values are accepted.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None creates an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPointer creates an Optional holding the value referenced by the given
// pointer or an absent Optional if the pointer is nil.
func FromPointer[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk converts the (value, ok) pattern used by map lookups and type
// assertions into an Optional.
func FromOk[T any](value T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsPresent returns true if this Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if this Optional is absent.
func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Value returns the held value. It panics with ErrAbsent if the Optional is
// absent. Use Get or the combinators where the state is not known.
func (o Optional[T]) Value() T {
	if !o.present {
		panic(ErrAbsent)
	}
	return o.value
}

// Get returns the held value and true if present, or the zero value and
// false otherwise.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Equal returns true if both Optionals are absent or both hold equal values.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.present != other.present {
		return false
	}
	return !o.present || equality.Equal(o.value, other.value)
}

// Hash returns a hash of this Optional consistent with Equal.
func (o Optional[T]) Hash() uint64 {
	digest := xxhash.New()
	o.WriteHash(digest)
	return digest.Sum64()
}

// WriteHash feeds this Optional into the given digest in a way consistent
// with Equal. It allows hashing Optionals as part of enclosing values.
func (o Optional[T]) WriteHash(digest *xxhash.Digest) {
	if !o.present {
		_, _ = digest.Write([]byte{0})
		return
	}
	_, _ = digest.Write([]byte{1})
	equality.Write(digest, o.value)
}

func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
