// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/0xsoniclabs/outcome/backend"
	"github.com/0xsoniclabs/outcome/common/guard"
	"github.com/0xsoniclabs/outcome/common/optional"
	"github.com/0xsoniclabs/outcome/common/result"
	_ "github.com/mattn/go-sqlite3"
)

const (
	createTable = `CREATE TABLE IF NOT EXISTS entries (key BLOB PRIMARY KEY, value BLOB NOT NULL)`
	selectValue = `SELECT value FROM entries WHERE key = ?`
	upsertValue = `INSERT INTO entries (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	deleteValue = `DELETE FROM entries WHERE key = ?`
)

// Store is a backend.Store implementation persisting its data in a single
// table of a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database in the given file, creating it if needed.
func Open(file string) (*Store, error) {
	if err := guard.RejectIfEmpty(file, "file"); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database %s: %w", file, err)
	}
	// SQLite does not support concurrent writers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createTable); err != nil {
		return nil, errors.Join(
			fmt.Errorf("failed to initialize SQLite database %s: %w", file, err),
			db.Close(),
		)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key []byte) result.Result[optional.Optional[[]byte]] {
	if err := backend.CheckKey(key); err != nil {
		return result.Err[optional.Optional[[]byte]](err)
	}
	var value []byte
	err := s.db.QueryRow(selectValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return backend.Miss()
	}
	if err != nil {
		return backend.ReadFailure(key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return backend.Hit(value)
}

func (s *Store) Put(key, value []byte) error {
	if err := backend.CheckKey(key); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.Exec(upsertValue, key, value)
	return err
}

func (s *Store) Delete(key []byte) error {
	if err := backend.CheckKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(deleteValue, key)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
