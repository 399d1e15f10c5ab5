// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package explorer

import "fmt"

// FromNames builds the explorer chain for the given config names, in order.
// When fallback is true the buffer adapter is appended last.
func FromNames(names []string, fallback bool) ([]Explorer, error) {
	known := map[string]Explorer{
		"nvim-tree": NvimTree{},
		"neo-tree":  NeoTree{},
		"nerdtree":  NERDTree{},
	}
	out := make([]Explorer, 0, len(names)+1)
	for _, n := range names {
		e, ok := known[n]
		if !ok {
			return nil, fmt.Errorf("unknown explorer %q", n)
		}
		out = append(out, e)
	}
	if fallback {
		out = append(out, Buffer{})
	}
	return out, nil
}
