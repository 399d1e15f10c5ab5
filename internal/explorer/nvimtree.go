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
	nvimTreeProbe = `return pcall(require, "nvim-tree.api")`

	// Marked nodes win over the node under the cursor. The root node has no
	// parent and is skipped here; rootness is re-checked separately so the
	// caller can tell "nothing selected" from "root selected".
	nvimTreeSelection = `
local api = require("nvim-tree.api")
local out = {}
for _, node in ipairs(api.marks.list()) do
  if node.absolute_path then
    out[#out + 1] = node.absolute_path
  end
end
if #out == 0 then
  local node = api.tree.get_node_under_cursor()
  if node and node.absolute_path and node.parent then
    out[#out + 1] = node.absolute_path
  end
end
return out`

	nvimTreeCursorIsRoot = `
local api = require("nvim-tree.api")
local node = api.tree.get_node_under_cursor()
return node ~= nil and node.parent == nil`
)

// NvimTree selects from the nvim-tree.lua explorer: its mark list first,
// then the node under the cursor.
type NvimTree struct{}

func (NvimTree) Name() string { return "nvim-tree" }

func (NvimTree) Matches(buf host.BufferInfo) bool {
	return buf.Filetype == "NvimTree"
}

func (NvimTree) Selection(ctx context.Context, h host.Host) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ok bool
	if err := h.ExecLua(nvimTreeProbe, &ok); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: nvim-tree.api not loadable", ErrUnavailable)
	}
	var paths []string
	if err := h.ExecLua(nvimTreeSelection, &paths); err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	if len(paths) > 0 {
		return paths, nil
	}
	var isRoot bool
	if err := h.ExecLua(nvimTreeCursorIsRoot, &isRoot); err != nil {
		return nil, fmt.Errorf("read cursor node: %w", err)
	}
	if isRoot {
		return nil, ErrRootPath
	}
	return nil, ErrNoSelection
}
