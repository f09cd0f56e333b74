// Package watch provides recursive filesystem watching for schema
// sources.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// FileWatcher watches directory trees and reports events whose base
// name matches one of the configured patterns.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	patterns []string
	exclude  []string
	onChange func(path string, op fsnotify.Op)
}

func NewFileWatcher(patterns []string, exclude []string, onChange func(path string, op fsnotify.Op)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create file watcher").
			WithCause(err)
	}
	return &FileWatcher{
		watcher:  watcher,
		patterns: patterns,
		exclude:  exclude,
		onChange: onChange,
	}, nil
}

// AddDirectory watches dir and every subdirectory beneath it.
func (w *FileWatcher) AddDirectory(dir string) error {
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if w.excluded(filepath.Base(path)) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to watch directory").
			WithCause(err)
	}
	return nil
}

// Start delivers matching events until ctx is cancelled.
func (w *FileWatcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("watcher event channel closed")
			}
			// Newly created directories need their own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.AddDirectory(event.Name); err != nil {
						log.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
					}
				}
			}
			if w.shouldTrigger(event.Name) {
				w.onChange(event.Name, event.Op)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("watcher error channel closed")
			}
			if err != nil {
				log.Warn().Err(err).Msg("file watcher error")
			}
		}
	}
}

func (w *FileWatcher) shouldTrigger(path string) bool {
	base := filepath.Base(path)
	if w.excluded(base) {
		return false
	}
	for _, pattern := range w.patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func (w *FileWatcher) excluded(base string) bool {
	for _, pattern := range w.exclude {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}
