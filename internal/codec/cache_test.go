package codec

import (
	"errors"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes a small pattern image to a temp file and returns its path
func writeTestPNG(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := EncodeFile(path, testBuffer(t, 12, 9), 90); err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	return path
}

func TestCache_LoadCachesBuffer(t *testing.T) {
	path := writeTestPNG(t, "img.png")
	cache := NewCache()

	b1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	b2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if b1 != b2 {
		t.Error("second Load should return the cached buffer")
	}
}

func TestCache_Evict(t *testing.T) {
	path := writeTestPNG(t, "img.png")
	cache := NewCache()

	b1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Evict(path)
	b2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if b1 == b2 {
		t.Error("Load after Evict should decode a fresh buffer")
	}
}

func TestCache_Clear(t *testing.T) {
	path := writeTestPNG(t, "img.png")
	cache := NewCache()

	b1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()
	b2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if b1 == b2 {
		t.Error("Load after Clear should decode a fresh buffer")
	}
}

func TestCache_LoadMissing(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, ErrIO) {
		t.Errorf("got %v, want ErrIO", err)
	}
}

func TestCache_Info(t *testing.T) {
	path := writeTestPNG(t, "img.png")
	cache := NewCache()

	info, err := cache.Info(path)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Width != 12 || info.Height != 9 {
		t.Errorf("dimensions: got %dx%d, want 12x9", info.Width, info.Height)
	}
	if info.Channels != 3 {
		t.Errorf("channels: got %d, want 3", info.Channels)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}
