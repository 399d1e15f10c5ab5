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

// Buffer is the fallback source: the file behind the focused buffer itself.
// It must be registered last, after the plugin adapters.
type Buffer struct{}

func (Buffer) Name() string { return "buffer" }

// Matches accepts any regular file buffer. Special buffers (terminals,
// prompts, plugin scratch buffers) have a non-empty buftype and are left to
// the unsupported error.
func (Buffer) Matches(buf host.BufferInfo) bool {
	return buf.Buftype == ""
}

func (Buffer) Selection(ctx context.Context, h host.Host) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf, err := h.CurrentBuffer()
	if err != nil {
		return nil, fmt.Errorf("inspect buffer: %w", err)
	}
	if buf.Name == "" {
		return nil, fmt.Errorf("%w: buffer has no file", ErrNoSelection)
	}
	cwd, err := h.WorkingDir()
	if err != nil {
		return nil, fmt.Errorf("working dir: %w", err)
	}
	abs := pathutil.Absolutize(buf.Name, cwd)
	if pathutil.AtFSRoot(abs) {
		return nil, fmt.Errorf("%w: %s", ErrRootPath, abs)
	}
	return []string{abs}, nil
}
