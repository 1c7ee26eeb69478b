package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/lifeweeks/pkg/cache"
)

func TestFileCacheDir(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.Config.Cache.Dir = "/var/cache/lw"

	dir, err := c.fileCacheDir()
	if err != nil {
		t.Fatalf("fileCacheDir() error: %v", err)
	}
	if dir != "/var/cache/lw" {
		t.Errorf("fileCacheDir() = %q, want configured dir", dir)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	c.Config.Cache.Dir = ""
	dir, err = c.fileCacheDir()
	if err != nil {
		t.Fatalf("fileCacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", appName); dir != want {
		t.Errorf("fileCacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LIFEWEEKS_CACHE_DIR", dir)

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"artifact:pdf:a", "artifact:svg:b"} {
		if err := fc.Set(ctx, key, []byte("x"), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	if _, ok, _ := fc.Get(ctx, "artifact:pdf:a"); ok {
		t.Error("entry should be gone after cache clear")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after clear, want 0", len(entries))
	}
}

func TestNewCacheNoCache(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	store, err := c.newCache(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*cache.NullCache); !ok {
		t.Errorf("newCache(noCache) = %T, want *cache.NullCache", store)
	}
}

func TestNewCacheDefaultsToXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	c := New(&bytes.Buffer{}, LogInfo)
	store, err := c.newCache(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	fc, ok := store.(*cache.FileCache)
	if !ok {
		t.Fatalf("newCache() = %T, want *cache.FileCache", store)
	}
	if want := filepath.Join(xdg, appName); fc.Dir() != want {
		t.Errorf("Dir() = %q, want %q", fc.Dir(), want)
	}
}
