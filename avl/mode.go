// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avlbench/fault"
)

// Mode - replacement selection policy for deleting a node with two
// children
type Mode int

// the possible modes
const (
	Standard  Mode = iota + 1 // always the in-order successor
	Optimized                 // donor from the taller side
)

// String - name of the mode
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Optimized:
		return "optimized"
	default:
		return "*unknown*"
	}
}

// Valid - true if the mode is one of the known modes
func (m Mode) Valid() bool {
	return Standard == m || Optimized == m
}

// ParseMode - convert a mode name to a mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "optimized", "optimised":
		return Optimized, nil
	default:
		return 0, fault.ErrInvalidMode
	}
}

// Modes - all modes in their canonical order
func Modes() []Mode {
	return []Mode{Standard, Optimized}
}

// the replacement strategy used by a mode
func (m Mode) replacer() (replacer, error) {
	switch m {
	case Standard:
		return successor{}, nil
	case Optimized:
		return tallerSide{}, nil
	default:
		return nil, fault.ErrInvalidMode
	}
}
