// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package explorer

import "errors"

var (
	// ErrUnsupported is returned when the focused buffer belongs to no
	// supported explorer and the buffer fallback does not apply.
	ErrUnsupported = errors.New("buffer type not supported")

	// ErrUnavailable is returned when an explorer matched the buffer but its
	// plugin API could not be reached.
	ErrUnavailable = errors.New("explorer plugin unavailable")

	// ErrNoSelection is returned when an explorer matched but nothing is
	// selectable (no node under the cursor, unnamed buffer, empty mark list).
	ErrNoSelection = errors.New("no selectable entry")

	// ErrRootPath is returned when the only candidate is the explorer's root
	// node or a file directly at the filesystem root.
	ErrRootPath = errors.New("root path is not selectable")
)
