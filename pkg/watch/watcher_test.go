package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(nil, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() failed: %v", err)
	}
	defer func() { _ = watcher.Stop() }()

	if watcher.config.DebounceInterval != 250*time.Millisecond {
		t.Errorf("DebounceInterval = %v, want 250ms", watcher.config.DebounceInterval)
	}
}

func TestDefaultFileWatcherConfig(t *testing.T) {
	config := DefaultFileWatcherConfig()

	if len(config.Extensions) != 2 {
		t.Errorf("len(Extensions) = %d, want 2", len(config.Extensions))
	}
	if !config.SkipHidden {
		t.Error("SkipHidden = false, want true")
	}
}

func TestFileWatcher_Watch_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "site.yml")
	if err := os.WriteFile(tmpFile, []byte("---\nkey: 'v'\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config := DefaultFileWatcherConfig()
	config.Paths = []string{tmpDir}
	config.DebounceInterval = 50 * time.Millisecond

	watcher, err := NewFileWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	changed := make(chan []string, 10)
	onChange := func(paths []string) error {
		select {
		case changed <- paths:
		default:
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = watcher.Watch(ctx, onChange)
	}()

	// Wait for the watcher to start
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(tmpFile, []byte("---\nkey: 'changed'\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case paths := <-changed:
		if len(paths) == 0 {
			t.Error("onChange called with no paths")
		}
	case <-time.After(time.Second):
		t.Error("onChange not called after file modification")
	}
}

func TestFileWatcher_IgnoresOtherExtensions(t *testing.T) {
	tmpDir := t.TempDir()

	config := DefaultFileWatcherConfig()
	config.Paths = []string{tmpDir}
	config.DebounceInterval = 50 * time.Millisecond

	watcher, err := NewFileWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = watcher.Watch(ctx, func([]string) error {
			calls.Add(1)
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	if calls.Load() != 0 {
		t.Errorf("onChange called %d times for non-playbook file, want 0", calls.Load())
	}
}

func TestDebouncer_Trigger(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)
	defer debouncer.Stop()

	var callCount atomic.Int32
	callback := func() {
		callCount.Add(1)
	}

	for i := 0; i < 5; i++ {
		debouncer.Trigger(callback)
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if count := callCount.Load(); count != 1 {
		t.Errorf("Callback called %d times, want 1", count)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)

	var callCount atomic.Int32
	debouncer.Trigger(func() {
		callCount.Add(1)
	})
	debouncer.Stop()

	time.Sleep(150 * time.Millisecond)

	if count := callCount.Load(); count != 0 {
		t.Errorf("Callback called %d times after Stop(), want 0", count)
	}
}

func TestRescanScheduler_InvalidSchedule(t *testing.T) {
	scheduler := NewRescanScheduler("not a schedule", nil)
	err := scheduler.Start(context.Background(), func(context.Context) {})
	if err == nil {
		t.Error("Start() with invalid cron expression = nil error, want error")
	}
}

func TestRescanScheduler_EmptyScheduleIsNoop(t *testing.T) {
	scheduler := NewRescanScheduler("", nil)
	if err := scheduler.Start(context.Background(), func(context.Context) {}); err != nil {
		t.Errorf("Start() with empty schedule = %v, want nil", err)
	}
	scheduler.Stop()
}
