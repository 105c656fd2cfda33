// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avlbench/fault"
)

// command specific errors
const (
	ErrInvalidKey  = fault.InvalidError("invalid key")
	ErrKeyNotFound = fault.NotFoundError("key not found")
	ErrMissingKey  = fault.NotFoundError("key is required")
	ErrNoKeys      = fault.NotFoundError("no keys given")
)
