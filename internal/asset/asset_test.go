package asset

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/thecubes/internal/config"
	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/entity"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.png")
	writePNG(t, path, solid(30, 20, color.NRGBA{R: 255, A: 255}))

	img, rect, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rect != core.NewRect(0, 0, 30, 20) {
		t.Errorf("rect = %+v, expected 30x20 at origin", rect)
	}
	if img.Bounds().Dx() != 30 {
		t.Errorf("image width = %d, expected 30", img.Bounds().Dx())
	}
}

func TestLoadBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, solid(16, 16, color.NRGBA{G: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	_, rect, err := Load(path)
	if err != nil {
		t.Fatalf("Load(bmp) failed: %v", err)
	}
	if rect.W != 16 || rect.H != 16 {
		t.Errorf("rect = %+v, expected 16x16", rect)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(filepath.Join(dir, "missing.png"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: expected LoadError wrapping ErrNotExist, got %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(corrupt); !errors.As(err, &loadErr) {
		t.Errorf("corrupt file: expected LoadError, got %v", err)
	}
}

func TestBuiltinLibrary(t *testing.T) {
	lib := NewLibrary(config.DefaultCubesConfig().Images)
	if err := lib.Preload(); err != nil {
		t.Fatalf("Preload() failed: %v", err)
	}

	for _, k := range entity.Kinds {
		img, rect, err := lib.Sprite(k)
		if err != nil {
			t.Fatalf("Sprite(%s) failed: %v", k, err)
		}
		if img == nil || rect.W == 0 || rect.H == 0 {
			t.Errorf("Sprite(%s) returned an empty sprite", k)
		}
	}

	if c := lib.Color(entity.KindDiamond); c != core.ColorBrightCyan {
		t.Errorf("diamond color = %d, expected bright cyan", c)
	}
	if c := lib.Color(entity.KindRock); c != core.ColorGray {
		t.Errorf("rock color = %d, expected gray", c)
	}
}

func TestLibraryFromFolder(t *testing.T) {
	dir := t.TempDir()
	images := config.DefaultCubesConfig().Images
	images.FolderName = dir

	writePNG(t, filepath.Join(dir, images.PlayerCube), solid(32, 32, color.NRGBA{B: 255, A: 255}))

	lib := NewLibrary(images)
	_, rect, err := lib.Sprite(entity.KindPlayer)
	if err != nil {
		t.Fatalf("Sprite(player) failed: %v", err)
	}
	if rect.W != 32 {
		t.Errorf("player sprite width = %d, expected 32", rect.W)
	}

	// Cached: removing the file does not matter any more
	os.Remove(filepath.Join(dir, images.PlayerCube))
	if _, _, err := lib.Sprite(entity.KindPlayer); err != nil {
		t.Errorf("cached sprite should not be reloaded: %v", err)
	}

	var loadErr *LoadError
	if err := lib.Preload(); !errors.As(err, &loadErr) {
		t.Errorf("Preload with missing files: expected LoadError, got %v", err)
	}
}

func TestDominantColor(t *testing.T) {
	if c := DominantColor(solid(10, 10, color.NRGBA{R: 255, A: 255})); c != core.ColorBrightRed {
		t.Errorf("red sprite = %d, expected bright red", c)
	}
	if c := DominantColor(solid(10, 10, color.NRGBA{})); c != core.ColorWhite {
		t.Errorf("transparent sprite = %d, expected white fallback", c)
	}
}
