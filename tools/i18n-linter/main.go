// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every i18n.T key used in the source exists in the
// primary locale, that every other locale carries all primary keys, and lists
// primary keys nothing references.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var keyCallRe = regexp.MustCompile(`i18n\.T\(\s*"([^"]+)"`)

// Result is the outcome of one lint pass. All slices are sorted.
type Result struct {
	Undefined []string            // used in code, absent from the primary locale
	Orphaned  []string            // in the primary locale, never used
	Missing   map[string][]string // locale file -> primary keys it lacks
}

// Failed reports whether the result should fail a build. Orphaned keys are
// only advisory.
func (r Result) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	res, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	printResult(os.Stdout, res)
	if res.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales, primary string) (Result, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Result{}, fmt.Errorf("scan sources: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(root, locales, primary))
	if err != nil {
		return Result{}, fmt.Errorf("load primary locale %s: %w", primary, err)
	}

	res := Result{Missing: map[string][]string{}}
	for key := range used {
		if _, ok := primaryKeys[key]; !ok {
			res.Undefined = append(res.Undefined, key)
		}
	}
	for key := range primaryKeys {
		if _, ok := used[key]; !ok {
			res.Orphaned = append(res.Orphaned, key)
		}
	}
	sort.Strings(res.Undefined)
	sort.Strings(res.Orphaned)

	files, err := filepath.Glob(filepath.Join(root, locales, "*.yaml"))
	if err != nil {
		return Result{}, err
	}
	for _, file := range files {
		name := filepath.Base(file)
		if name == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Result{}, fmt.Errorf("load locale %s: %w", name, err)
		}
		var missing []string
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		res.Missing[name] = missing
	}
	return res, nil
}

func printResult(w io.Writer, res Result) {
	section := func(title string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  none")
			return
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
	section("Undefined keys (used in code, missing from primary locale)", res.Undefined)
	section("Orphaned keys (in primary locale, unused)", res.Orphaned)

	names := make([]string, 0, len(res.Missing))
	for name := range res.Missing {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		section("Missing keys in "+name, res.Missing[name])
	}
}

// findUsedKeys collects literal keys passed to i18n.T in non-test Go files
// below root. The tools directory is skipped.
func findUsedKeys(root string) (map[string]struct{}, error) {
	used := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "tools", "_examples", "vendor", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCallRe.FindAllStringSubmatch(string(content), -1) {
			used[m[1]] = struct{}{}
		}
		return nil
	})
	return used, err
}

// loadKeysFromLocale reads a YAML locale file and returns its keys flattened
// with dots, so nested and dotted flat layouts compare equal.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
