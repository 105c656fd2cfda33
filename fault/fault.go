// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidMode          = InvalidError("invalid mode")
	ErrInvalidOperations    = InvalidError("churn operations must be positive")
	ErrInvalidRepetitions   = InvalidError("repetitions must be positive")
	ErrInvalidScenario      = InvalidError("invalid scenario")
	ErrInvalidSize          = InvalidError("tree size must be positive")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingConfiguration = NotFoundError("configuration file is required")
	ErrMissingResults       = NotFoundError("no results recorded")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrDatabaseVersion      = ProcessError("incompatible database version")
	ErrNoRecorder           = ProcessError("no recorder configured")
	ErrTreeBalance          = ProcessError("tree is unbalanced")
	ErrTreeCount            = ProcessError("tree node count mismatch")
	ErrTreeHeight           = ProcessError("cached height is incorrect")
	ErrTreeOrder            = ProcessError("tree keys out of order")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
