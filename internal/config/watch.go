package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces the burst of events editors emit on save.
const debounceInterval = 200 * time.Millisecond

// Watch reloads the configuration at path whenever it changes and passes each
// valid result to onChange. It blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory so atomic renames by editors are seen
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	target := filepath.Clean(path)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.After(debounceInterval)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[WARN] Config watcher error: %v", err)
		case <-pending:
			pending = nil
			cfg, err := LoadFrom(path)
			if err != nil {
				log.Printf("[WARN] Ignoring config change: %v", err)
				continue
			}
			if err := cfg.Validate(); err != nil {
				log.Printf("[WARN] Ignoring invalid config: %v", err)
				continue
			}
			onChange(cfg)
		}
	}
}
