// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

import (
	"github.com/0xsoniclabs/outcome/common/guard"
)

// Bind applies f to the value of a successful Result and returns its result
// unchanged. For a failure, f is not invoked and the failure is forwarded
// with its reason and cause. Bind panics if f is nil.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	guard.MustNotBeAbsent(f, "f")
	if !r.core.success {
		var zero U
		return Result[U]{core: newCore(zero, false, r.core.reason, r.core.cause)}
	}
	return f(r.core.payload)
}

// Map applies f to the value of a successful Result and wraps its result in
// a successful Result. Failures are forwarded without invoking f.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	guard.MustNotBeAbsent(f, "f")
	return Bind(r, func(value T) Result[U] {
		return Ok(f(value))
	})
}

// OrElse returns this Result if it is a success, the given alternative
// otherwise. Since the alternative is constructed even if not needed,
// OrElseFrom should be used where this is expensive.
func (r Result[T]) OrElse(alternative Result[T]) Result[T] {
	if r.core.success {
		return r
	}
	return alternative
}

// OrElseGet returns the value of a successful Result. For a failure, supplier
// is invoked once and its result is returned. OrElseGet panics if supplier
// is nil.
func (r Result[T]) OrElseGet(supplier func() T) T {
	guard.MustNotBeAbsent(supplier, "supplier")
	if r.core.success {
		return r.core.payload
	}
	return supplier()
}

// OrElseFrom returns this Result if it is a success. For a failure, supplier
// is invoked once and the Result it produces is returned. OrElseFrom panics
// if supplier is nil.
func (r Result[T]) OrElseFrom(supplier func() Result[T]) Result[T] {
	guard.MustNotBeAbsent(supplier, "supplier")
	if r.core.success {
		return r
	}
	return supplier()
}

// OrElseThrow returns the value of a successful Result and a nil error,
// without invoking factory. For a failure, factory is invoked once and the
// error it produces is returned. If factory returns nil, ErrNilError is
// returned instead. OrElseThrow panics if factory is nil.
func (r Result[T]) OrElseThrow(factory func() error) (T, error) {
	guard.MustNotBeAbsent(factory, "factory")
	if r.core.success {
		return r.core.payload, nil
	}
	var zero T
	if err := factory(); err != nil {
		return zero, err
	}
	return zero, ErrNilError
}
