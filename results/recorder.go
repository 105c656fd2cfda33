// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package results

import (
	"github.com/bitmark-inc/avlbench/fault"
)

//go:generate mockgen -source=recorder.go -destination=mocks/recorder.go -package=mocks

// Recorder - destination for result rows
type Recorder interface {
	Record(Row) error
	Close() error
}

type multi struct {
	recorders []Recorder
}

// Multi - a recorder that passes each row to all of the given recorders
//
// record stops at the first failure; close closes everything and
// returns the first error seen
func Multi(recorders ...Recorder) (Recorder, error) {
	if 0 == len(recorders) {
		return nil, fault.ErrNoRecorder
	}
	return &multi{
		recorders: recorders,
	}, nil
}

func (m *multi) Record(row Row) error {
	for _, r := range m.recorders {
		if err := r.Record(row); nil != err {
			return err
		}
	}
	return nil
}

func (m *multi) Close() error {
	var first error
	for _, r := range m.recorders {
		if err := r.Close(); nil != err && nil == first {
			first = err
		}
	}
	return first
}
