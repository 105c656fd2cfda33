// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package results

import (
	"encoding/csv"
	"io"
	"os"
)

// CSVRecorder - writes a header line then one line per row
type CSVRecorder struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSVRecorder - record to a writer, the header is written at once
func NewCSVRecorder(w io.Writer) (*CSVRecorder, error) {
	r := &CSVRecorder{
		w: csv.NewWriter(w),
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	if err := r.w.Write(header); nil != err {
		return nil, err
	}
	return r, nil
}

// CreateCSV - create or truncate a CSV results file
func CreateCSV(fileName string) (*CSVRecorder, error) {
	f, err := os.Create(fileName)
	if nil != err {
		return nil, err
	}
	r, err := NewCSVRecorder(f)
	if nil != err {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Record - write one row
//
// each row is flushed so a partial run still leaves usable data
func (r *CSVRecorder) Record(row Row) error {
	if err := r.w.Write(row.fields()); nil != err {
		return err
	}
	r.w.Flush()
	return r.w.Error()
}

// Close - flush and close the underlying file if there is one
func (r *CSVRecorder) Close() error {
	r.w.Flush()
	err := r.w.Error()
	if nil != r.closer {
		if e := r.closer.Close(); nil == err {
			err = e
		}
	}
	return err
}
