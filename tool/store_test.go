// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/0xsoniclabs/outcome/backend"
	"github.com/0xsoniclabs/outcome/common/guard"
	"github.com/0xsoniclabs/outcome/common/optional"
	"github.com/0xsoniclabs/outcome/common/result"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrintEntry_PresentValue_IsPrinted(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := backend.NewMockStore(ctrl)
	store.EXPECT().Get([]byte("key")).Return(backend.Hit([]byte("value")))

	out := &bytes.Buffer{}
	require.NoError(t, printEntry(out, store, "key", optional.Some("fallback"), true))
	require.Equal(t, "value\n", out.String())
}

func TestPrintEntry_MissingValue_UsesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := backend.NewMockStore(ctrl)
	store.EXPECT().Get([]byte("key")).Return(backend.Miss())

	out := &bytes.Buffer{}
	require.NoError(t, printEntry(out, store, "key", optional.Some("fallback"), false))
	require.Equal(t, "fallback\n", out.String())
}

func TestPrintEntry_MissingRequiredValue_FallbackIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := backend.NewMockStore(ctrl)
	store.EXPECT().Get([]byte("key")).Return(backend.Miss())

	out := &bytes.Buffer{}
	require.NoError(t, printEntry(out, store, "key", optional.Some("fallback"), true))
	require.Equal(t, "fallback\n", out.String())
}

func TestPrintEntry_MissingRequiredValue_IsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := backend.NewMockStore(ctrl)
	store.EXPECT().Get([]byte("key")).Return(backend.Miss())

	out := &bytes.Buffer{}
	err := printEntry(out, store, "key", optional.None[string](), true)
	require.EqualError(t, err, "key key not found")
	require.Empty(t, out.String())
}

func TestPrintEntry_ReadFailure_IsReportedWithCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := backend.NewMockStore(ctrl)
	issue := errors.New("disk failure")
	store.EXPECT().Get([]byte("key")).Return(backend.ReadFailure([]byte("key"), issue))

	out := &bytes.Buffer{}
	err := printEntry(out, store, "key", optional.Some("fallback"), false)
	require.ErrorIs(t, err, issue)
	require.EqualError(t, err, "failed to read key 6b6579: disk failure")
	require.Empty(t, out.String())
}

func TestPrintEntry_EmptyKey_IsRejectedWithoutLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := backend.NewMockStore(ctrl)

	err := printEntry(&bytes.Buffer{}, store, "", optional.None[string](), false)
	require.ErrorIs(t, err, guard.ErrInvalidArgument)
}

func TestOpenStore_LevelDb_CanBeReopenedAfterClose(t *testing.T) {
	db := t.TempDir()
	store := openStore(leveldbBackend, db)
	require.True(t, store.IsSuccess())
	require.NoError(t, store.Value().Close())

	// a closed LevelDB releases its lock and can be opened again
	store = openStore(leveldbBackend, db)
	require.True(t, store.IsSuccess())
	require.NoError(t, store.Value().Close())
}

func TestOpenStore_FailuresCarryCause(t *testing.T) {
	got := openStore(sqliteBackend, t.TempDir())
	require.False(t, got.IsSuccess())
	require.True(t, got.Cause().IsPresent())
}

func TestOpenStore_UnknownBackend_IsFailure(t *testing.T) {
	got := openStore("csv", t.TempDir())
	require.True(t, got.Equal(result.Failed[backend.Store](`unknown backend "csv"`)))
}
