// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package host abstracts the editor surface the selection adapters inspect.
// Production code talks to Neovim over msgpack-RPC; tests substitute a
// scripted fake.
package host

// BufferInfo describes the buffer that currently has focus.
type BufferInfo struct {
	Number   int
	Name     string
	Filetype string
	Buftype  string
}

// Host is the read-only view of editor state the adapters need. All calls
// reflect state at call time; nothing is cached.
type Host interface {
	// CurrentBuffer returns name, filetype and buftype of the focused buffer.
	CurrentBuffer() (BufferInfo, error)
	// CursorLine returns the 1-based cursor line in the focused window.
	CursorLine() (int, error)
	// LineCount returns the number of lines in the focused buffer.
	LineCount() (int, error)
	// VisualRange returns the 1-based line range of an in-progress visual
	// selection. active is false when the editor is not in visual mode.
	VisualRange() (start, end int, active bool, err error)
	// WorkingDir returns the editor's current working directory.
	WorkingDir() (string, error)
	// ExecLua runs a Lua chunk in the editor and decodes its return value.
	ExecLua(code string, result interface{}, args ...interface{}) error
	// Eval evaluates a Vimscript expression and decodes its value.
	Eval(expr string, result interface{}) error
}
