package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNotifiesOnChange(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(p, []byte("audit = false\n"), 0644))

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s, err := New(p, log)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer s.Stop()

	ch := s.Subscribe()
	defer s.Unsubscribe(ch)

	require.NoError(t, os.WriteFile(p, []byte("audit = true\n"), 0644))

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("no notification after write")
	}
}

func TestIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(p, []byte("audit = false\n"), 0644))

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s, err := New(p, log)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer s.Stop()

	ch := s.Subscribe()
	defer s.Unsubscribe(ch)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-ch:
		t.Fatal("unexpected notification for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}
