// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package explorer

import (
	"context"
	"fmt"

	"treesel/internal/host"
)

const (
	nerdTreeProbe = `exists("g:NERDTree")`

	// GetSelected() yields the node under the cursor or an empty dict.
	nerdTreeSelectedPath = `empty(g:NERDTreeFileNode.GetSelected()) ? "" : g:NERDTreeFileNode.GetSelected().path.str()`

	nerdTreeSelectedIsRoot = `!empty(g:NERDTreeFileNode.GetSelected()) && g:NERDTreeFileNode.GetSelected().path.str() ==# b:NERDTree.root.path.str()`
)

// NERDTree selects the single node under the cursor in a NERDTree window.
// NERDTree is Vimscript, so the adapter evaluates expressions instead of
// calling Lua.
type NERDTree struct{}

func (NERDTree) Name() string { return "nerdtree" }

func (NERDTree) Matches(buf host.BufferInfo) bool {
	return buf.Filetype == "nerdtree"
}

func (NERDTree) Selection(ctx context.Context, h host.Host) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var loaded int
	if err := h.Eval(nerdTreeProbe, &loaded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%w: g:NERDTree not defined", ErrUnavailable)
	}
	// Vimscript booleans arrive as numbers.
	var isRoot int
	if err := h.Eval(nerdTreeSelectedIsRoot, &isRoot); err != nil {
		return nil, fmt.Errorf("read cursor node: %w", err)
	}
	if isRoot != 0 {
		return nil, ErrRootPath
	}
	var path string
	if err := h.Eval(nerdTreeSelectedPath, &path); err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	if path == "" {
		return nil, ErrNoSelection
	}
	return []string{path}, nil
}
