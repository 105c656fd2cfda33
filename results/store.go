// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package results

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avlbench/fault"
	"github.com/bitmark-inc/logger"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// all rows are stored under this prefix followed by a big-endian
// sequence number, so iteration returns them in recording order
const rowPrefix = 'R'

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - LevelDB database of result rows
type Store struct {
	sync.Mutex
	db       *leveldb.DB
	readOnly bool
	next     uint64
}

// Open - open or create a results database
//
// a read-only open fails if the database does not exist
func Open(name string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	switch {
	case version > currentDBVersion:
		logger.Criticalf("results database version: %d > current version: %d", version, currentDBVersion)
		db.Close()
		return nil, fmt.Errorf("%w: %d > %d", fault.ErrDatabaseVersion, version, currentDBVersion)

	case 0 == version && !readOnly:
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			db.Close()
			return nil, err
		}

	case version != currentDBVersion:
		db.Close()
		return nil, fmt.Errorf("%w: %d != %d", fault.ErrDatabaseVersion, version, currentDBVersion)
	}

	next, err := nextSequence(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	return &Store{
		db:       db,
		readOnly: readOnly,
		next:     next,
	}, nil
}

// Record - append a row
func (s *Store) Record(row Row) error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}
	data, err := json.Marshal(row)
	if nil != err {
		return err
	}
	err = s.db.Put(rowKey(s.next), data, nil)
	if nil != err {
		return err
	}
	s.next += 1
	return nil
}

// Count - number of rows stored
func (s *Store) Count() uint64 {
	s.Lock()
	defer s.Unlock()
	return s.next
}

// Rows - read back all rows in the order they were recorded
func (s *Store) Rows() ([]Row, error) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	rows := make([]Row, 0, s.next)
	iter := s.db.NewIterator(ldb_util.BytesPrefix([]byte{rowPrefix}), nil)
	defer iter.Release()

	for iter.Next() {
		var row Row
		if err := json.Unmarshal(iter.Value(), &row); nil != err {
			return nil, fmt.Errorf("row: %x  error: %s", iter.Key(), err)
		}
		rows = append(rows, row)
	}
	if err := iter.Error(); nil != err {
		return nil, err
	}
	return rows, nil
}

// Close - close the database
func (s *Store) Close() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func rowKey(n uint64) []byte {
	key := make([]byte, 9)
	key[0] = rowPrefix
	binary.BigEndian.PutUint64(key[1:], n)
	return key
}

// sequence number following the last stored row
func nextSequence(db *leveldb.DB) (uint64, error) {
	iter := db.NewIterator(ldb_util.BytesPrefix([]byte{rowPrefix}), nil)
	defer iter.Release()

	if !iter.Last() {
		return 0, iter.Error()
	}
	key := iter.Key()
	if 9 != len(key) {
		return 0, fmt.Errorf("row key: %x has invalid length: %d", key, len(key))
	}
	return binary.BigEndian.Uint64(key[1:]) + 1, nil
}

// zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
