package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, err := New(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	changed := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	waitFor(t, changed, "change callback")
}

func TestWatcher_FiresOnWalSibling(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, err := New(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	changed := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	// A WAL checkpoint touches the sibling, not the main file.
	require.NoError(t, os.WriteFile(path+"-wal", []byte("frames"), 0o644))
	waitFor(t, changed, "wal sibling callback")
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, err := New(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	changed := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-changed:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, err := New(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	fires := make(chan struct{}, 16)
	require.NoError(t, w.Watch(path, func() {
		fires <- struct{}{}
	}))

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte(i)}, 0o644))
		time.Sleep(2 * time.Millisecond)
	}

	waitFor(t, fires, "first debounced fire")
	// The burst already ended; no second fire should trail it.
	select {
	case <-fires:
		t.Fatal("burst produced more than one callback")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_WatchAfterCloseFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, err := New(10*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	err = w.Watch(path, func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWatcher_CloseIdempotent(t *testing.T) {
	w, err := New(10*time.Millisecond, nil)
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
