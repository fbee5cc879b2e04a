package imaging

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small capture to disk and returns its path.
func writeTestPNG(t *testing.T, name string) string {
	t.Helper()
	img := fillImage(8, 8, color.Black)
	img.Set(4, 4, color.White)

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return path
}

func TestCaptureCache_Load(t *testing.T) {
	path := writeTestPNG(t, "capture.png")
	cache := NewCaptureCache()

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("capture size: got %dx%d, want 8x8", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load must come from cache even after the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load should not hit disk: %v", err)
	}

	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("load after evict should fail for a deleted file")
	}
}

func TestCaptureCache_Clear(t *testing.T) {
	path := writeTestPNG(t, "capture.png")
	cache := NewCaptureCache()
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("load after clear should fail for a deleted file")
	}
}

func TestLoadCapture_Missing(t *testing.T) {
	if _, err := LoadCapture(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadCapture_Undecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCapture(path); err == nil {
		t.Error("undecodable file should error")
	}
}
