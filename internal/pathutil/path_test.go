// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsolutize(t *testing.T) {
	assert.Equal(t, "/home/u/proj/a.txt", Absolutize("a.txt", "/home/u/proj"))
	assert.Equal(t, "/home/u/a.txt", Absolutize("../a.txt", "/home/u/proj"))
	assert.Equal(t, "/etc/hosts", Absolutize("/etc/hosts", "/home/u/proj"))
	assert.Equal(t, "/etc/hosts", Absolutize("/etc//./hosts", "/home/u/proj"))
	assert.Equal(t, "", Absolutize("", "/home/u/proj"))
}

func TestIsFSRoot(t *testing.T) {
	assert.True(t, IsFSRoot("/"))
	assert.True(t, IsFSRoot("//"))
	assert.False(t, IsFSRoot("/etc"))
	assert.False(t, IsFSRoot("/etc/hosts"))
}

func TestAtFSRoot(t *testing.T) {
	assert.True(t, AtFSRoot("/"))
	assert.True(t, AtFSRoot("/vmlinuz"))
	assert.True(t, AtFSRoot("/etc/.."))
	assert.False(t, AtFSRoot("/etc/hosts"))
	assert.False(t, AtFSRoot("/home/u/a.txt"))
}

func TestResolveSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(target, link))

	resolved := ResolveSymlinks(link)
	// TempDir itself may sit behind a symlink (e.g. /tmp on macOS), so
	// compare against the resolved target.
	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, want, resolved)

	// broken links fall back to the cleaned input
	broken := filepath.Join(dir, "broken.txt")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), broken))
	assert.Equal(t, broken, ResolveSymlinks(broken))
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		name               string
		start, end, max    int
		wantStart, wantEnd int
	}{
		{"inside", 2, 5, 10, 2, 5},
		{"inverted", 5, 2, 10, 2, 5},
		{"past end", 8, 20, 10, 8, 10},
		{"before start", -3, 4, 10, 1, 4},
		{"both past end", 12, 15, 10, 10, 10},
		{"empty buffer", 1, 3, 0, 0, 0},
		{"single line", 1, 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := ClampRange(tt.start, tt.end, tt.max)
			assert.Equal(t, tt.wantStart, s)
			assert.Equal(t, tt.wantEnd, e)
		})
	}
}

func TestDedupe(t *testing.T) {
	in := []string{"/a", "", "/b", "/a", "  ", "/c", "/b"}
	assert.Equal(t, []string{"/a", "/b", "/c"}, Dedupe(in))
	assert.Empty(t, Dedupe(nil))
}
