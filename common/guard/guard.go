// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package guard provides eager precondition checks to be placed at the top of
// operations receiving caller-provided arguments. A guard either accepts its
// input silently or reports an ArgumentError describing the offending
// argument. Guards never modify their inputs.
//
// A typical use looks as follows:
//
//	func Open(dir string) (*Store, error) {
//	   if err := guard.RejectIfEmpty(dir, "dir"); err != nil {
//	      return nil, err
//	   }
//	   ...
//	}
package guard

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument is matched by all errors reported by guards.
var ErrInvalidArgument = errors.New("invalid argument")

const defaultName = "value"

// ArgumentError is reported by guards for rejected arguments.
type ArgumentError struct {
	Name   string // < the name of the rejected argument
	Absent bool   // < true if the argument was missing, false if it was empty
}

func (e *ArgumentError) Error() string {
	if e.Absent {
		return fmt.Sprintf("%v: %s must not be nil", ErrInvalidArgument, e.Name)
	}
	return fmt.Sprintf("%v: %s must not be empty", ErrInvalidArgument, e.Name)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// emptier is implemented by two-state values, like optionals, which can be
// in an empty state.
type emptier interface {
	IsEmpty() bool
}

// RejectIfAbsent reports an error if the given value is nil. Values of types
// that can not be nil are always accepted.
func RejectIfAbsent[T any](value T, name string) error {
	if isNil(value) {
		return &ArgumentError{Name: nameOrDefault(name), Absent: true}
	}
	return nil
}

// RejectIfEmpty reports an error if the given value is nil, an empty string,
// an empty slice or map, or a two-state value in its empty state.
func RejectIfEmpty[T any](value T, name string) error {
	if err := RejectIfAbsent(value, name); err != nil {
		return err
	}
	if isEmpty(value) {
		return &ArgumentError{Name: nameOrDefault(name)}
	}
	return nil
}

// MustNotBeAbsent panics with the error reported by RejectIfAbsent, if any.
// It is intended for arguments whose absence is a programming error, like
// missing callback functions.
func MustNotBeAbsent[T any](value T, name string) {
	if err := RejectIfAbsent(value, name); err != nil {
		panic(err)
	}
}

func nameOrDefault(name string) string {
	if name == "" {
		return defaultName
	}
	return name
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case emptier:
		return v.IsEmpty()
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return v.Len() == 0
	}
	return false
}
