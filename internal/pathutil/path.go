// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package pathutil

import (
	"path/filepath"
	"strings"
)

// Absolutize resolves path against base when it is relative and cleans it.
// base is expected to be absolute (the editor working directory).
func Absolutize(path, base string) string {
	if path == "" {
		return ""
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	return filepath.Clean(path)
}

// ResolveSymlinks resolves symlinks in path. If resolution fails (broken
// link, missing file) the cleaned input is returned unchanged.
func ResolveSymlinks(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return resolved
}

// IsFSRoot reports whether path is the filesystem root itself.
func IsFSRoot(path string) bool {
	clean := filepath.Clean(path)
	return clean == string(filepath.Separator) || clean == filepath.VolumeName(clean)+string(filepath.Separator)
}

// AtFSRoot reports whether path names an entry directly under the
// filesystem root, e.g. "/vmlinuz". The root itself also qualifies.
func AtFSRoot(path string) bool {
	clean := filepath.Clean(path)
	if IsFSRoot(clean) {
		return true
	}
	return IsFSRoot(filepath.Dir(clean))
}

// ClampRange normalizes a 1-based inclusive line range: inverted ranges are
// swapped and the result is clamped to [1, max]. max < 1 yields (0, 0).
func ClampRange(start, end, max int) (int, int) {
	if max < 1 {
		return 0, 0
	}
	if start > end {
		start, end = end, start
	}
	if start < 1 {
		start = 1
	}
	if end > max {
		end = max
	}
	if start > max {
		start = max
	}
	return start, end
}

// Dedupe removes duplicate and empty entries while preserving the order of
// first occurrence.
func Dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
