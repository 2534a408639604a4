// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package equality provides the payload equality and hashing used by the
// carrier types of this module. Values are compared using the equality
// defined by their type: an Equal method if present, the == operator for
// comparable values, and deep equality otherwise. Hashes are consistent with
// this equality, i.e. equal values produce equal hashes.
package equality

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equaler is implemented by types defining their own notion of equality.
type Equaler[T any] interface {
	Equal(T) bool
}

// Hasher is implemented by types providing a hash consistent with their
// Equal method.
type Hasher interface {
	Hash() uint64
}

// Equal compares the given values using the equality defined by their type.
// Nil pointers are equal to nil pointers of the same type only; their Equal
// method is not invoked. Floating point NaNs are equal to each other.
func Equal[T any](a, b T) bool {
	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == nil && vb == nil
	}
	ra, rb := reflect.ValueOf(va), reflect.ValueOf(vb)
	if na, nb := isNilPointer(ra), isNilPointer(rb); na || nb {
		return na && nb && ra.Type() == rb.Type()
	}
	if eq, ok := va.(Equaler[T]); ok {
		return eq.Equal(b)
	}
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatEqual(ra.Float(), rb.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := ra.Complex(), rb.Complex()
		return floatEqual(real(ca), real(cb)) && floatEqual(imag(ca), imag(cb))
	}
	if ra.Comparable() && rb.Comparable() {
		return va == vb
	}
	return reflect.DeepEqual(va, vb)
}

func floatEqual(a, b float64) bool {
	return a == b || (a != a && b != b)
}

func isNilPointer(v reflect.Value) bool {
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Hash computes a hash of the given value which is consistent with Equal.
func Hash[T any](value T) uint64 {
	digest := xxhash.New()
	Write(digest, value)
	return digest.Sum64()
}

// maxDepth limits the number of pointers followed while hashing values
// compared by deep equality.
const maxDepth = 8

// Write feeds the given value into the digest in a way consistent with Equal.
func Write[T any](digest *xxhash.Digest, value T) {
	v := any(value)
	if v == nil {
		writeUint64(digest, 0)
		return
	}
	rv := reflect.ValueOf(v)
	if isNilPointer(rv) {
		_, _ = digest.WriteString(rv.Type().String())
		writeUint64(digest, 0)
		return
	}
	if h, ok := v.(Hasher); ok {
		writeUint64(digest, h.Hash())
		return
	}
	_, _ = digest.WriteString(rv.Type().String())
	if _, ok := v.(Equaler[T]); ok {
		// Custom equality may consider values with different representations
		// equal, thus only the type can be hashed.
		return
	}
	writeValue(digest, rv, !rv.Comparable(), 0)
}

func writeValue(digest *xxhash.Digest, v reflect.Value, deep bool, depth int) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint64(digest, 1)
		} else {
			writeUint64(digest, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint64(digest, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint64(digest, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(digest, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(digest, real(c))
		writeFloat(digest, imag(c))
	case reflect.String:
		writeString(digest, v.String())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			writeValue(digest, v.Index(i), deep, depth)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			writeValue(digest, v.Field(i), deep, depth)
		}
	case reflect.Interface:
		if v.IsNil() {
			writeUint64(digest, 0)
			return
		}
		elem := v.Elem()
		writeString(digest, elem.Type().String())
		writeValue(digest, elem, deep, depth)
	case reflect.Pointer:
		if v.IsNil() {
			writeUint64(digest, 0)
			return
		}
		if !deep {
			writeUint64(digest, uint64(v.Pointer()))
			return
		}
		if depth < maxDepth {
			writeValue(digest, v.Elem(), deep, depth+1)
		}
	case reflect.Slice:
		writeUint64(digest, uint64(v.Len()))
		if depth >= maxDepth {
			return
		}
		for i := 0; i < v.Len(); i++ {
			writeValue(digest, v.Index(i), deep, depth+1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		writeUint64(digest, uint64(v.Pointer()))
	case reflect.Map, reflect.Func:
		// Map iteration order is random and functions are only deeply equal
		// if nil, so only length and nil-ness are hashed.
		if v.IsNil() {
			writeUint64(digest, 0)
		} else if v.Kind() == reflect.Map {
			writeUint64(digest, uint64(v.Len())+1)
		}
	}
}

func writeFloat(digest *xxhash.Digest, f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	if math.IsNaN(f) {
		f = math.NaN()
	}
	writeUint64(digest, math.Float64bits(f))
}

func writeString(digest *xxhash.Digest, s string) {
	writeUint64(digest, uint64(len(s)))
	_, _ = digest.WriteString(s)
}

func writeUint64(digest *xxhash.Digest, value uint64) {
	var buffer [8]byte
	binary.LittleEndian.PutUint64(buffer[:], value)
	_, _ = digest.Write(buffer[:])
}
