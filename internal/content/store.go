package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Store holds the current bundle. Readers always see a complete bundle.
type Store struct {
	path    string
	current atomic.Pointer[Bundle]
	logger  *zap.Logger
}

// NewStore loads the initial bundle from path (embedded content when empty).
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path, logger: logger}
	s.current.Store(b)
	return s, nil
}

// NewStaticStore wraps a bundle that never reloads.
func NewStaticStore(b *Bundle) *Store {
	s := &Store{logger: zap.NewNop()}
	s.current.Store(b)
	return s
}

func (s *Store) Current() *Bundle {
	return s.current.Load()
}

// Reload re-reads the content file. On error the previous bundle is kept.
func (s *Store) Reload() error {
	b, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(b)
	return nil
}

// Watch reloads the content file whenever it is written or replaced, until
// ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return errors.New("content watch needs a content file")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so watch the directory.
	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	s.logger.Info("watching content file", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Error("content reload failed, keeping previous content", zap.Error(err))
				continue
			}
			s.logger.Info("content reloaded",
				zap.String("path", target),
				zap.Int("projects", s.Current().Catalog.Len()))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", zap.Error(err))
		}
	}
}
