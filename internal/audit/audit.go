package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Log appends one line per selection query to an audit file. Failures are
// swallowed: auditing must never break a query.
type Log struct {
	mu   sync.Mutex
	path string
}

// New creates an audit log writing to path. An empty path defaults to
// ~/.treesel/audit.log.
func New(path string) *Log {
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".treesel", "audit.log")
		}
	}
	return &Log{path: path}
}

// Record appends a query entry and returns the generated query id.
func (l *Log) Record(source string, paths []string) string {
	id := uuid.NewString()
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path == "" {
		return id
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return id
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return id
	}
	defer f.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] query=%s source=%s paths=%d\n", timestamp, id, source, len(paths))
	if _, err := f.WriteString(line); err != nil {
		// ignore
	}
	return id
}
