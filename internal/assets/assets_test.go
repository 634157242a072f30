package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAsset(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}
	return path
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	icon := writeAsset(t, dir, "stock-icon-20-0.png")

	r := NewResolver(dir)
	if got := r.Resolve("stock-icon-20-0.png"); got != icon {
		t.Errorf("expected %q, got %q", icon, got)
	}
	if got := r.Resolve("stock-icon-2-3.png"); got != "" {
		t.Errorf("expected empty path for missing asset, got %q", got)
	}
}

func TestResolve_Fallback(t *testing.T) {
	dir := t.TempDir()
	fallback := writeAsset(t, dir, FallbackKey)

	r := NewResolver(dir)
	if got := r.Resolve("stock-icon-9-9.png"); got != fallback {
		t.Errorf("expected fallback %q, got %q", fallback, got)
	}
}

func TestResolve_RejectsEscapes(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "assets")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeAsset(t, root, "secret.png")

	r := NewResolver(dir)
	for _, key := range []string{"../secret.png", "", filepath.Join(root, "secret.png")} {
		if got := r.Resolve(key); got != "" {
			t.Errorf("Resolve(%q): expected empty path, got %q", key, got)
		}
	}
}

func TestInvalidate(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver(dir)

	if got := r.Resolve("stock-icon-1-0.png"); got != "" {
		t.Fatalf("expected miss before asset exists, got %q", got)
	}

	icon := writeAsset(t, dir, "stock-icon-1-0.png")
	if got := r.Resolve("stock-icon-1-0.png"); got != "" {
		t.Errorf("expected cached miss, got %q", got)
	}

	r.Invalidate()
	if got := r.Resolve("stock-icon-1-0.png"); got != icon {
		t.Errorf("expected %q after invalidate, got %q", icon, got)
	}
}
