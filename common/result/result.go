// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package result provides a carrier for the outcome of an operation that can
// either succeed with a value or fail with a diagnostic. A failure carries a
// human-readable reason and, optionally, the error causing it.
//
// Results are immutable values. The zero value of a Result is a failure, such
// that results embedded in structs or containers never claim success unless
// explicitly created by Ok. All functions of this package are synchronous and
// safe for concurrent use.
//
// Results are typically consumed through the combinators Bind, Map, OrElse,
// OrElseGet, OrElseFrom and OrElseThrow instead of inspecting their state:
//
//	port, err := result.Bind(readConfig(path), func(c Config) result.Result[int] {
//	   return parsePort(c.Port)
//	}).OrElseThrow(func() error { return errNoPort })
package result

import (
	"fmt"

	"github.com/0xsoniclabs/outcome/common/optional"
)

var (
	// ErrInvalidState is matched by the error reported when accessing the
	// value of a failed result.
	ErrInvalidState = optional.ErrInvalidState

	// ErrNilError is reported by OrElseThrow if the error factory does not
	// produce an error.
	ErrNilError = optional.ErrNilError
)

// Result encapsulates the outcome of an operation that can either succeed
// with a value of type T or fail with a reason and an optional cause. It is
// intended to be used in scenarios where a single type is needed to represent
// such an outcome, for instance for channels or containers.
type Result[T any] struct {
	core core[T]
}

// Ok creates a Result representing a successful outcome with the given value.
// The value is not validated; nil pointers are accepted.
func Ok[T any](value T) Result[T] {
	return Result[T]{core: newCore(value, true, "", optional.None[error]())}
}

// Failed creates a Result representing a failed outcome with the given reason.
func Failed[T any](reason string) Result[T] {
	var zero T
	return Result[T]{core: newCore(zero, false, reason, optional.None[error]())}
}

// FailedWith creates a Result representing a failed outcome with the given
// reason caused by the given error. A nil cause is treated as absent.
func FailedWith[T any](reason string, cause error) Result[T] {
	var zero T
	c := optional.None[error]()
	if cause != nil {
		c = optional.Some(cause)
	}
	return Result[T]{core: newCore(zero, false, reason, c)}
}

// Err creates a Result representing a failed outcome caused by the given
// error, using the error's message as reason.
func Err[T any](err error) Result[T] {
	if err == nil {
		return Failed[T]("")
	}
	return FailedWith[T](err.Error(), err)
}

// FromTuple converts the (value, error) pair returned by most Go functions
// into a Result.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// FromOptional converts a present Optional into a successful Result and an
// absent Optional into a failure with the given reason.
func FromOptional[T any](o optional.Optional[T], reason string) Result[T] {
	if value, present := o.Get(); present {
		return Ok(value)
	}
	return Failed[T](reason)
}

// IsSuccess returns true if this Result represents a successful outcome.
func (r Result[T]) IsSuccess() bool {
	return r.core.success
}

// Value returns the value of a successful Result. It panics with a *Failure
// matching ErrInvalidState if the Result is a failure. Outside of code paths
// known to succeed, Get or the combinators should be preferred.
func (r Result[T]) Value() T {
	if !r.core.success {
		panic(r.failure())
	}
	return r.core.payload
}

// Get returns the value and error contained in the Result. Using this function
// forces the caller to handle potential errors. For failures, the returned
// error is a *Failure matching ErrInvalidState and the failure's cause.
func (r Result[T]) Get() (T, error) {
	if !r.core.success {
		var zero T
		return zero, r.failure()
	}
	return r.core.payload, nil
}

// Message returns the reason of a failure, or the empty string for a success.
func (r Result[T]) Message() string {
	return r.core.reason
}

// Cause returns the error causing a failure, if any.
func (r Result[T]) Cause() optional.Optional[error] {
	return r.core.cause
}

// ToOptional returns an Optional holding the value of a successful Result,
// or an absent Optional for a failure.
func (r Result[T]) ToOptional() optional.Optional[T] {
	if !r.core.success {
		return optional.None[T]()
	}
	return optional.Some(r.core.payload)
}

// Equal returns true if both results are successes with equal values, or both
// are failures with equal reasons and causes.
func (r Result[T]) Equal(other Result[T]) bool {
	return r.core.equal(other.core)
}

// Hash returns a hash of this Result consistent with Equal.
func (r Result[T]) Hash() uint64 {
	return r.core.hash()
}

func (r Result[T]) String() string {
	if r.core.success {
		return fmt.Sprintf("Ok(%v)", r.core.payload)
	}
	if cause, present := r.core.cause.Get(); present {
		return fmt.Sprintf("Failed(%s: %v)", r.core.reason, cause)
	}
	return fmt.Sprintf("Failed(%s)", r.core.reason)
}

func (r Result[T]) failure() *Failure {
	cause, _ := r.core.cause.Get()
	return &Failure{Reason: r.core.reason, Cause: cause}
}

// Failure is the error reported when accessing the value of a failed Result.
// It matches ErrInvalidState and, if present, the cause of the failure.
type Failure struct {
	Reason string
	Cause  error // < nil if the failure has no cause
}

func (f *Failure) Error() string {
	switch {
	case f.Reason == "" && f.Cause == nil:
		return fmt.Sprintf("%v: result is a failure", ErrInvalidState)
	case f.Cause == nil:
		return f.Reason
	case f.Reason == "" || f.Reason == f.Cause.Error():
		return f.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", f.Reason, f.Cause)
}

func (f *Failure) Unwrap() []error {
	if f.Cause == nil {
		return []error{ErrInvalidState}
	}
	return []error{ErrInvalidState, f.Cause}
}
