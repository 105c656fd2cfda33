// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// last resort channel, nil until Initialise
var log *logger.L

// Initialise - open the channel used to record an abort
//
// call after logger.Initialise; before this aborts go to stdout
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("abort")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush the abort channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Panicf - record the caller and a message, then panic
//
// used where a tree or result store is in a state no caller can
// recover from, e.g. a corrupt node pool
func Panicf(format string, arguments ...interface{}) {
	where := "unknown"
	if _, file, line, ok := runtime.Caller(1); ok {
		where = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	message := fmt.Sprintf(format, arguments...)
	abort("(%s) %s", where, message)
	panic("abort: " + message)
}

// PanicIfError - panic with the message if err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %s", message, err)
	abort("%s", s)
	panic(s)
}

func abort(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
