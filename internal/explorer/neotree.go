// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package explorer

import (
	"context"
	"fmt"

	"treesel/internal/host"
	"treesel/internal/pathutil"
)

const (
	neoTreeProbe = `return pcall(require, "neo-tree.sources.manager")`

	// Maps each line of a (clamped) range to its rendered node. Depth 1 is
	// the root node and never selectable.
	neoTreeRangeSelection = `
local srow, erow = ...
local state = require("neo-tree.sources.manager").get_state("filesystem")
if not state or not state.tree then
  return {}
end
local out = {}
for l = srow, erow do
  local node = state.tree:get_node(l)
  if node and node.path and node:get_depth() > 1 then
    out[#out + 1] = node.path
  end
end
return out`

	neoTreeCursorIsRoot = `
local line = ...
local state = require("neo-tree.sources.manager").get_state("filesystem")
if not state or not state.tree then
  return false
end
local node = state.tree:get_node(line)
return node ~= nil and node:get_depth() == 1`
)

// NeoTree selects from the neo-tree.nvim explorer. In visual mode every
// line of the range maps to one node; otherwise the cursor line does.
type NeoTree struct{}

func (NeoTree) Name() string { return "neo-tree" }

func (NeoTree) Matches(buf host.BufferInfo) bool {
	return buf.Filetype == "neo-tree"
}

func (NeoTree) Selection(ctx context.Context, h host.Host) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ok bool
	if err := h.ExecLua(neoTreeProbe, &ok); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: neo-tree sources.manager not loadable", ErrUnavailable)
	}

	start, end, visual, err := h.VisualRange()
	if err != nil {
		return nil, fmt.Errorf("visual range: %w", err)
	}
	if !visual {
		line, err := h.CursorLine()
		if err != nil {
			return nil, fmt.Errorf("cursor: %w", err)
		}
		start, end = line, line
	}
	total, err := h.LineCount()
	if err != nil {
		return nil, fmt.Errorf("line count: %w", err)
	}
	start, end = pathutil.ClampRange(start, end, total)
	if start == 0 {
		return nil, ErrNoSelection
	}

	var paths []string
	if err := h.ExecLua(neoTreeRangeSelection, &paths, start, end); err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	if len(paths) > 0 {
		return paths, nil
	}
	var isRoot bool
	if err := h.ExecLua(neoTreeCursorIsRoot, &isRoot, start); err != nil {
		return nil, fmt.Errorf("read cursor node: %w", err)
	}
	if isRoot {
		return nil, ErrRootPath
	}
	return nil, ErrNoSelection
}
