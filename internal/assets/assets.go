// Package assets resolves local image assets such as character stock icons.
package assets

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FallbackKey is the asset used when a requested image is missing.
const FallbackKey = "stock-icon-unknown.png"

// Resolver maps asset keys to files under a base directory.
type Resolver struct {
	baseDir string

	mu    sync.RWMutex
	cache map[string]string
}

// NewResolver creates a resolver for images under baseDir.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{
		baseDir: baseDir,
		cache:   make(map[string]string),
	}
}

// BaseDir returns the directory assets are resolved from.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Resolve returns the file path for key, the fallback icon when the file is
// missing, or "" when neither exists. Keys may not escape the base directory.
func (r *Resolver) Resolve(key string) string {
	r.mu.RLock()
	path, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return path
	}

	path = r.lookup(key)
	if path == "" {
		path = r.lookup(FallbackKey)
	}

	r.mu.Lock()
	r.cache[key] = path
	r.mu.Unlock()
	return path
}

// Invalidate drops cached lookups, e.g. after the asset directory changed.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[string]string)
	r.mu.Unlock()
}

func (r *Resolver) lookup(key string) string {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return ""
	}

	path := filepath.Join(r.baseDir, clean)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}
