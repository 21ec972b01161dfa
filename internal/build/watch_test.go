package build

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/featgen/internal/feature"
)

func TestWatcher_RebuildsOnChange(t *testing.T) {
	p := newProject(t)
	writeFile(t, filepath.Join(p.src, "keep.txt"), "")
	b := p.builder(feature.ModePermissive)

	builds := make(chan *Report, 4)
	w := NewWatcher(b, 20*time.Millisecond, func(r *Report, err error) {
		if err == nil {
			builds <- r
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(p.src, "login.md"), loginMD)

	select {
	case r := <-builds:
		assert.Equal(t, 1, r.Count(StatusGenerated))
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after change")
	}

	cancel()
	require.NoError(t, <-done)
	assert.Contains(t, p.feature(t, "login"), "Scenario: Login")
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	p := newProject(t)
	writeFile(t, filepath.Join(p.src, "keep.txt"), "")
	w := NewWatcher(p.builder(feature.ModePermissive), time.Millisecond, nil)

	assert.False(t, w.relevant(fsEvent(filepath.Join(p.src, "notes.txt"))))
	assert.True(t, w.relevant(fsEvent(filepath.Join(p.src, "login.md"))))
}

func fsEvent(name string) fsnotify.Event {
	return fsnotify.Event{Name: name, Op: fsnotify.Write}
}
