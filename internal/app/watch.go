package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"schemalab/internal/types"
	"schemalab/internal/watch"
)

// Watch re-runs generation whenever a schema file changes. Failures of
// individual runs are logged and watching continues; the caller stops
// the loop through ctx.
func (s Service) Watch(ctx context.Context, req WatchRequest) error {
	debounce := req.Debounce
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	changes := make(chan string, 16)
	patterns := []string{"*" + types.BebopSchemaExt, "*.proto"}
	watcher, err := watch.NewFileWatcher(patterns, nil, func(path string, _ fsnotify.Op) {
		select {
		case changes <- path:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range watchRoots(req.Generate) {
		if err := watcher.AddDirectory(root); err != nil {
			return err
		}
	}
	go func() {
		if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("file watcher stopped")
		}
	}()

	if _, err := s.Generate(ctx, req.Generate); err != nil {
		log.Error().Err(err).Msg("initial generation failed")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path := <-changes:
			log.Info().Str("path", path).Msg("schema change detected")
			drainChanges(ctx, changes, debounce)
			if _, err := s.Generate(ctx, req.Generate); err != nil {
				log.Error().Err(err).Msg("regeneration failed")
			}
		}
	}
}

// drainChanges absorbs follow-up events until the window stays quiet,
// so a burst of saves triggers a single regeneration.
func drainChanges(ctx context.Context, changes <-chan string, window time.Duration) {
	timer := time.NewTimer(window)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(window)
		case <-timer.C:
			return
		}
	}
}

// watchRoots collects the unique directories a generate request reads
// from: the schema directory, proto include roots, and the parent of
// each proto input.
func watchRoots(req GenerateRequest) []string {
	seen := map[string]struct{}{}
	var roots []string
	add := func(dir string) {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return
		}
		if _, ok := seen[dir]; ok {
			return
		}
		seen[dir] = struct{}{}
		roots = append(roots, dir)
	}
	add(req.SchemaDir)
	for _, include := range req.ProtoIncludes {
		add(include)
	}
	for _, input := range req.ProtoFiles {
		add(filepath.Dir(input))
	}
	return roots
}
