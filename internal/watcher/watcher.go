package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Service watches a single file and notifies subscribers when it changes.
// The parent directory is watched instead of the file itself because most
// editors replace files on save (write to temp, rename over).
type Service struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	clients  map[chan struct{}]bool
	mu       sync.Mutex
	done     chan struct{}
	log      *logrus.Logger
}

// New creates a watcher service for the given file.
func New(path string, log *logrus.Logger) (*Service, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.New()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}

	s := &Service{
		watcher:  w,
		path:     abs,
		debounce: 500 * time.Millisecond,
		clients:  make(map[chan struct{}]bool),
		done:     make(chan struct{}),
		log:      log,
	}

	return s, nil
}

// Start begins watching and broadcasting change notifications.
func (s *Service) Start() error {
	if err := s.watcher.Add(filepath.Dir(s.path)); err != nil {
		return err
	}
	go s.loop()
	return nil
}

// Stop stops the watcher.
func (s *Service) Stop() {
	close(s.done)
	s.watcher.Close()
}

// Subscribe listens for change notifications.
func (s *Service) Subscribe() chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{}, 1) // Buffer to prevent blocking
	s.clients[ch] = true
	return ch
}

// Unsubscribe removes a listener.
func (s *Service) Unsubscribe(ch chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[ch]; ok {
		delete(s.clients, ch)
		close(ch)
	}
}

func (s *Service) loop() {
	var last time.Time

	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			// Ignore CHMOD
			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			// Only the watched file matters; the whole dir is noisy.
			if filepath.Clean(event.Name) != s.path {
				continue
			}

			// Debounce
			if time.Since(last) < s.debounce {
				s.log.Debugf("[WATCHER] debounced: %s %s", event.Op, event.Name)
				continue
			}
			last = time.Now()

			s.log.Debugf("[WATCHER] change: %s %s", event.Op, event.Name)
			s.broadcast()

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warnf("[WATCHER] error: %v", err)
		}
	}
}

func (s *Service) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- struct{}{}:
		default:
			// Drop notification if client too slow
		}
	}
}
