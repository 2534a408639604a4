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
	"github.com/0xsoniclabs/outcome/common/equality"
	"github.com/0xsoniclabs/outcome/common/optional"
	"github.com/cespare/xxhash/v2"
)

// core is the immutable state shared by all results. Its zero value is a
// failure without reason and cause.
type core[T any] struct {
	payload T                        // < only meaningful if success is true
	success bool                     // < false for the zero value
	reason  string                   // < empty for successes
	cause   optional.Optional[error] // < only present for failures
}

func newCore[T any](payload T, success bool, reason string, cause optional.Optional[error]) core[T] {
	return core[T]{
		payload: payload,
		success: success,
		reason:  reason,
		cause:   cause,
	}
}

func (c core[T]) equal(other core[T]) bool {
	if c.success != other.success || c.reason != other.reason {
		return false
	}
	if !c.cause.Equal(other.cause) {
		return false
	}
	return !c.success || equality.Equal(c.payload, other.payload)
}

func (c core[T]) hash() uint64 {
	digest := xxhash.New()
	if c.success {
		_, _ = digest.Write([]byte{1})
		equality.Write(digest, c.payload)
	} else {
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.WriteString(c.reason)
	c.cause.WriteHash(digest)
	return digest.Sum64()
}
