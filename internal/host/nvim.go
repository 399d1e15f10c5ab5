// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"strings"

	"github.com/neovim/go-client/nvim"
)

// NvimHost implements Host on top of a live Neovim RPC connection.
type NvimHost struct {
	v *nvim.Nvim
}

// NewNvim wraps an established Neovim client.
func NewNvim(v *nvim.Nvim) *NvimHost {
	return &NvimHost{v: v}
}

func (h *NvimHost) CurrentBuffer() (BufferInfo, error) {
	buf, err := h.v.CurrentBuffer()
	if err != nil {
		return BufferInfo{}, fmt.Errorf("current buffer: %w", err)
	}
	name, err := h.v.BufferName(buf)
	if err != nil {
		return BufferInfo{}, fmt.Errorf("buffer name: %w", err)
	}
	var ft, bt string
	if err := h.v.BufferOption(buf, "filetype", &ft); err != nil {
		return BufferInfo{}, fmt.Errorf("buffer filetype: %w", err)
	}
	if err := h.v.BufferOption(buf, "buftype", &bt); err != nil {
		return BufferInfo{}, fmt.Errorf("buffer buftype: %w", err)
	}
	return BufferInfo{
		Number:   int(buf),
		Name:     name,
		Filetype: ft,
		Buftype:  bt,
	}, nil
}

func (h *NvimHost) CursorLine() (int, error) {
	win, err := h.v.CurrentWindow()
	if err != nil {
		return 0, fmt.Errorf("current window: %w", err)
	}
	pos, err := h.v.WindowCursor(win)
	if err != nil {
		return 0, fmt.Errorf("window cursor: %w", err)
	}
	return pos[0], nil
}

func (h *NvimHost) LineCount() (int, error) {
	buf, err := h.v.CurrentBuffer()
	if err != nil {
		return 0, fmt.Errorf("current buffer: %w", err)
	}
	n, err := h.v.BufferLineCount(buf)
	if err != nil {
		return 0, fmt.Errorf("line count: %w", err)
	}
	return n, nil
}

func (h *NvimHost) VisualRange() (int, int, bool, error) {
	mode, err := h.v.Mode()
	if err != nil {
		return 0, 0, false, fmt.Errorf("mode: %w", err)
	}
	// v, V and CTRL-V (\x16) are the visual modes.
	if !strings.HasPrefix(mode.Mode, "v") && !strings.HasPrefix(mode.Mode, "V") && !strings.HasPrefix(mode.Mode, "\x16") {
		return 0, 0, false, nil
	}
	var lines []int
	if err := h.v.Eval(`[line("v"), line(".")]`, &lines); err != nil {
		return 0, 0, false, fmt.Errorf("visual range: %w", err)
	}
	if len(lines) != 2 {
		return 0, 0, false, fmt.Errorf("visual range: unexpected value %v", lines)
	}
	return lines[0], lines[1], true, nil
}

func (h *NvimHost) WorkingDir() (string, error) {
	var cwd string
	if err := h.v.Eval(`getcwd()`, &cwd); err != nil {
		return "", fmt.Errorf("getcwd: %w", err)
	}
	return cwd, nil
}

func (h *NvimHost) ExecLua(code string, result interface{}, args ...interface{}) error {
	if args == nil {
		args = []interface{}{}
	}
	return h.v.ExecLua(code, result, args...)
}

func (h *NvimHost) Eval(expr string, result interface{}) error {
	return h.v.Eval(expr, result)
}
