package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAppendsLine(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "audit.log")
	l := New(p)

	id := l.Record("nvim-tree", []string{"/a", "/b"})
	require.NotEmpty(t, id)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "query="+id)
	assert.Contains(t, line, "source=nvim-tree")
	assert.Contains(t, line, "paths=2")
}

func TestRecordUniqueIDs(t *testing.T) {
	p := filepath.Join(t.TempDir(), "audit.log")
	l := New(p)

	a := l.Record("buffer", []string{"/a"})
	b := l.Record("buffer", []string{"/a"})
	assert.NotEqual(t, a, b)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)
}
