// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - path helpers for configuration files
package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - make the path absolute then create it and any
// missing parents
func EnsureDirectory(directory string, dirPath string) (string, error) {
	dirPath = EnsureAbsolute(directory, dirPath)
	if err := os.MkdirAll(dirPath, 0700); nil != err {
		return "", err
	}
	return dirPath, nil
}

// EnsurePlainName - fail if the name contains a directory part,
// otherwise join it to the directory
func EnsurePlainName(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		return EnsureAbsolute(directory, name), nil
	default:
		return "", fmt.Errorf("files: %q is not plain name", name)
	}
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
