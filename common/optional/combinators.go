// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package optional

import "github.com/0xsoniclabs/outcome/common/guard"

// Bind applies f to the value of a present Optional and returns its result.
// For an absent Optional, f is not invoked and an absent Optional is returned.
// Bind panics if f is nil.
func Bind[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	guard.MustNotBeAbsent(f, "f")
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}

// Map applies f to the value of a present Optional and wraps the result in a
// present Optional. For an absent Optional, f is not invoked.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	guard.MustNotBeAbsent(f, "f")
	return Bind(o, func(value T) Optional[U] {
		return Some(f(value))
	})
}

// OrElse returns this Optional if present, the given alternative otherwise.
// The alternative is constructed by the caller even if it is not needed; use
// OrElseFrom to avoid this cost.
func (o Optional[T]) OrElse(alternative Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return alternative
}

// OrElseGet returns the held value if present. Otherwise, supplier is invoked
// once and its result is returned. OrElseGet panics if supplier is nil.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	guard.MustNotBeAbsent(supplier, "supplier")
	if o.present {
		return o.value
	}
	return supplier()
}

// OrElseFrom returns this Optional if present. Otherwise, supplier is invoked
// once and the Optional it produces is returned. OrElseFrom panics if
// supplier is nil.
func (o Optional[T]) OrElseFrom(supplier func() Optional[T]) Optional[T] {
	guard.MustNotBeAbsent(supplier, "supplier")
	if o.present {
		return o
	}
	return supplier()
}

// OrElseThrow returns the held value and a nil error if present. Otherwise,
// factory is invoked once and the error it produces is returned. If factory
// returns nil, ErrNilError is returned instead. OrElseThrow panics if factory
// is nil.
func (o Optional[T]) OrElseThrow(factory func() error) (T, error) {
	guard.MustNotBeAbsent(factory, "factory")
	if o.present {
		return o.value, nil
	}
	var zero T
	if err := factory(); err != nil {
		return zero, err
	}
	return zero, ErrNilError
}
