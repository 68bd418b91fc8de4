// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package rawdump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/toeirei/keyreport/internal/i18n"
	"github.com/toeirei/keyreport/internal/logging"
	"github.com/toeirei/keyreport/internal/model"
)

// DefaultSuffix is the file name suffix of a host dump.
const DefaultSuffix = "_raw_auth_keys.txt"

// Scanner builds a Corpus from every host file in Dir.
type Scanner struct {
	Dir    string
	Suffix string // DefaultSuffix when empty
	Log    *clog.Logger
}

// NewScanner returns a Scanner for dir using the default suffix.
func NewScanner(dir string, log *clog.Logger) *Scanner {
	return &Scanner{Dir: dir, Suffix: DefaultSuffix, Log: log}
}

// Scan parses every matching file. Problems are reported through the logger
// as they happen and also returned, joined, so callers can count them. The
// returned Corpus is always usable, even alongside a non-nil error.
func (s *Scanner) Scan() (model.Corpus, error) {
	corpus := model.Corpus{}
	suffix := s.suffix()

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger().Error(i18n.T("scan.dir_not_found", s.Dir))
			return corpus, fmt.Errorf("%w: %s", ErrDirNotFound, s.Dir)
		}
		s.logger().Error(i18n.T("scan.dir_error", s.Dir, err))
		return corpus, fmt.Errorf("reading %s: %w", s.Dir, err)
	}

	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		host := strings.TrimSuffix(name, suffix)
		path := filepath.Join(s.Dir, name)

		users, err := ParseFile(path)
		if err != nil {
			s.report(path, err)
			errs = append(errs, err)
			continue
		}
		if len(users) == 0 {
			s.logger().Debug(i18n.T("scan.host_empty", path))
			continue
		}
		s.logger().Debug(i18n.T("scan.host_parsed", host, len(users), users.KeyCount()))
		corpus[host] = users
	}
	return corpus, errors.Join(errs...)
}

func (s *Scanner) report(path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		s.logger().Error(i18n.T("scan.file_not_found", path))
		return
	}
	cause := err
	var fe *FileError
	if errors.As(err, &fe) {
		cause = fe.Err
	}
	s.logger().Error(i18n.T("scan.file_error", path, cause))
}

func (s *Scanner) suffix() string {
	if s.Suffix == "" {
		return DefaultSuffix
	}
	return s.Suffix
}

func (s *Scanner) logger() *clog.Logger {
	if s.Log == nil {
		return logging.L
	}
	return s.Log
}
