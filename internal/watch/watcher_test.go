package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldTrigger(t *testing.T) {
	watcher, err := NewFileWatcher([]string{"*.bop", "*.proto"}, []string{".*"}, func(string, fsnotify.Op) {})
	require.NoError(t, err)
	defer watcher.Close()

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join("schemas", "jazz.bop"), true},
		{filepath.Join("schemas", "jazz.proto"), true},
		{filepath.Join("schemas", "README.md"), false},
		{filepath.Join("schemas", ".jazz.bop.swp"), false},
		{"jazz.bop.bak", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, watcher.shouldTrigger(tt.path), tt.path)
	}
}

func TestWatcherReportsSchemaChange(t *testing.T) {
	dir := t.TempDir()
	changes := make(chan string, 1)
	watcher, err := NewFileWatcher([]string{"*.bop"}, nil, func(path string, _ fsnotify.Op) {
		select {
		case changes <- path:
		default:
		}
	})
	require.NoError(t, err)
	defer watcher.Close()
	require.NoError(t, watcher.AddDirectory(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)

	// Give the watch goroutine time to settle before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bop"), []byte("struct A {}"), 0644))

	select {
	case path := <-changes:
		assert.Equal(t, filepath.Join(dir, "a.bop"), path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestAddDirectoryMissing(t *testing.T) {
	watcher, err := NewFileWatcher([]string{"*.bop"}, nil, func(string, fsnotify.Op) {})
	require.NoError(t, err)
	defer watcher.Close()

	err = watcher.AddDirectory(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
