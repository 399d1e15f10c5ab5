// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package inspect classifies selected files so consumers can gate actions
// on file kind before acting on a selection.
package inspect

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// Result describes one selected path.
type Result struct {
	Path   string `json:"path"`
	Mime   string `json:"mime"`
	IsText bool   `json:"isText"`
	Ext    string `json:"ext"`
	Size   int64  `json:"size"`
	IsDir  bool   `json:"isDir"`
}

// File inspects the file bytes to determine a mime type and whether the
// file is likely text. Directories get mime "inode/directory".
func File(path string) (*Result, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	res := &Result{
		Path:  path,
		Ext:   strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		Size:  fi.Size(),
		IsDir: fi.IsDir(),
	}
	if fi.IsDir() {
		res.Mime = "inode/directory"
		return res, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	buf := make([]byte, 4100)
	n, _ := f.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	// try using filetype lib to get more specific type
	kind, _ := filetype.Match(buf[:n])
	if kind != filetype.Unknown {
		mimeType = kind.MIME.Value
	}
	res.Mime = mimeType
	// heuristics for text-like types
	res.IsText = strings.HasPrefix(mimeType, "text/") || strings.Contains(mimeType, "json") || strings.Contains(mimeType, "xml") || strings.Contains(mimeType, "javascript") || strings.Contains(mimeType, "yaml") || strings.Contains(mimeType, "toml")
	return res, nil
}

// Files inspects every path, skipping entries that fail to stat or open.
// The error of the last failing path is returned alongside the successes.
func Files(paths []string) ([]*Result, error) {
	out := make([]*Result, 0, len(paths))
	var lastErr error
	for _, p := range paths {
		r, err := File(p)
		if err != nil {
			lastErr = err
			continue
		}
		out = append(out, r)
	}
	return out, lastErr
}
