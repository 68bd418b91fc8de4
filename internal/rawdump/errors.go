// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package rawdump

import (
	"errors"
	"fmt"
)

// ErrDirNotFound is returned by Scan when the input directory does not exist.
var ErrDirNotFound = errors.New("input directory not found")

// FileError records a failure to read or decode one host file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
