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
	"errors"
	"fmt"
	"io"

	"github.com/0xsoniclabs/outcome/backend"
	"github.com/0xsoniclabs/outcome/backend/ldb"
	"github.com/0xsoniclabs/outcome/backend/sqlite"
	"github.com/0xsoniclabs/outcome/common/guard"
	"github.com/0xsoniclabs/outcome/common/optional"
	"github.com/0xsoniclabs/outcome/common/result"
	"github.com/urfave/cli/v2"
)

const (
	leveldbBackend = "leveldb"
	sqliteBackend  = "sqlite"
)

var (
	defaultFlag = cli.StringFlag{
		Name:  "default",
		Usage: "the value to print if the key is missing",
	}
	requireFlag = cli.BoolFlag{
		Name:  "require",
		Usage: "fail if the key is missing",
	}
)

var GetCmd = cli.Command{
	Action:    withDiagnostics(doGet),
	Name:      "get",
	Usage:     "prints the value stored for a key",
	ArgsUsage: "<key>",
	Flags: []cli.Flag{
		&defaultFlag,
		&requireFlag,
	},
}

var PutCmd = cli.Command{
	Action:    withDiagnostics(doPut),
	Name:      "put",
	Usage:     "stores a value for a key",
	ArgsUsage: "<key> <value>",
}

var DeleteCmd = cli.Command{
	Action:    withDiagnostics(doDelete),
	Name:      "delete",
	Usage:     "removes a key from the store",
	ArgsUsage: "<key>",
}

func doGet(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing key parameter")
	}
	key := context.Args().Get(0)
	fallback := optional.FromOk(context.String(defaultFlag.Name), context.IsSet(defaultFlag.Name))
	required := context.Bool(requireFlag.Name)
	return withStore(context, func(store backend.Store) error {
		return printEntry(context.App.Writer, store, key, fallback, required)
	})
}

func doPut(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("missing key or value parameter")
	}
	key, value := context.Args().Get(0), context.Args().Get(1)
	return withStore(context, func(store backend.Store) error {
		return store.Put([]byte(key), []byte(value))
	})
}

func doDelete(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing key parameter")
	}
	key := context.Args().Get(0)
	return withStore(context, func(store backend.Store) error {
		return store.Delete([]byte(key))
	})
}

// printEntry prints the value stored for the given key. Missing keys are
// resolved using the fallback, if present, or reported as an error if
// required is set.
func printEntry(out io.Writer, store backend.Store, key string, fallback optional.Optional[string], required bool) error {
	if err := guard.RejectIfEmpty(key, "key"); err != nil {
		return err
	}
	entry, err := store.Get([]byte(key)).Get()
	if err != nil {
		return err
	}
	value := optional.Map(entry, func(data []byte) string { return string(data) }).OrElse(fallback)
	if required {
		text, err := value.OrElseThrow(func() error {
			return fmt.Errorf("key %s not found", key)
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}
	_, err = fmt.Fprintln(out, value.OrElseGet(func() string { return "<none>" }))
	return err
}

func withStore(context *cli.Context, action func(backend.Store) error) error {
	store, err := openStore(context.String(backendFlag.Name), context.String(dbFlag.Name)).Get()
	if err != nil {
		return err
	}
	return errors.Join(action(store), store.Close())
}

func openStore(kind, path string) result.Result[backend.Store] {
	if err := guard.RejectIfEmpty(path, dbFlag.Name); err != nil {
		return result.Err[backend.Store](err)
	}
	switch kind {
	case leveldbBackend:
		store, err := ldb.Open(path)
		return asStore(result.FromTuple(store, err))
	case sqliteBackend:
		store, err := sqlite.Open(path)
		return asStore(result.FromTuple(store, err))
	}
	return result.Failed[backend.Store](fmt.Sprintf("unknown backend %q", kind))
}

func asStore[S backend.Store](store result.Result[S]) result.Result[backend.Store] {
	return result.Map(store, func(s S) backend.Store { return s })
}
