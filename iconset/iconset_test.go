package iconset

import (
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
)

func testContext() context.Context {
	return WithLogger(context.Background(), NewLogger(io.Discard, log.DebugLevel))
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("can't open icon: %s", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("can't decode %s: %s", path, err)
	}
	return img
}

func TestFileName(t *testing.T) {
	if got := Active().FileName(16); got != "icon16.png" {
		t.Errorf("unexpected name %s", got)
	}
	if got := Inactive().FileName(128); got != "icon128-inactive.png" {
		t.Errorf("unexpected name %s", got)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	results, err := Generate(testContext(), Options{Dir: dir})
	if err != nil {
		t.Fatalf("can't generate icons: %s", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	exp := []string{"icon128.png", "icon16.png", "icon48.png"}
	got := listDir(t, dir)
	if len(got) != len(exp) {
		t.Fatalf("expected files %v, got %v", exp, got)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Fatalf("expected files %v, got %v", exp, got)
		}
	}

	for i, size := range Sizes() {
		res := results[i]
		if res.Size != size || res.Err != nil {
			t.Errorf("unexpected result %v", res)
		}
		img := decodePNG(t, res.Path)
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("%s: expected %dx%d, got %v", res.Path, size, size, b)
		}
		if _, ok := img.(*image.NRGBA); !ok {
			t.Errorf("%s: expected an image with alpha channel, got %T", res.Path, img)
		}
		if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
			t.Errorf("%s: expected a transparent corner", res.Path)
		}
	}
}

func TestGenerateInactive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")
	results, err := Generate(testContext(), Options{Dir: dir, Variants: []Variant{Active(), Inactive()}})
	if err != nil {
		t.Fatalf("can't generate icons: %s", err)
	}
	if len(results) != 6 {
		t.Fatalf("expected 6 results, got %d", len(results))
	}
	if got := listDir(t, dir); len(got) != 6 {
		t.Fatalf("expected 6 files, got %v", got)
	}
	if got := filepath.Base(results[3].Path); got != "icon16-inactive.png" {
		t.Errorf("inactive icons should follow the active ones, got %s", got)
	}
}

func TestGenerateIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	// a directory in place of the file makes its creation fail
	if err := os.Mkdir(filepath.Join(dir, "icon48.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	results, err := Generate(testContext(), Options{Dir: dir})
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(results) != 3 {
		t.Fatalf("all sizes should be attempted, got %d results", len(results))
	}
	for _, res := range results {
		if res.Size == 48 {
			if res.Err == nil || !errors.Is(err, res.Err) {
				t.Errorf("expected the failure of icon48.png to be reported, got %v", res.Err)
			}
			continue
		}
		if res.Err != nil {
			t.Errorf("size %d: unexpected error %s", res.Size, res.Err)
		}
		decodePNG(t, res.Path)
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	dir := t.TempDir()
	results, err := Generate(testContext(), Options{Dir: dir, Sizes: []int{0, 16}})
	if err == nil {
		t.Fatal("expected an error")
	}
	if results[0].Err == nil || results[1].Err != nil {
		t.Errorf("unexpected results %v", results)
	}
	if got := listDir(t, dir); len(got) != 1 || got[0] != "icon16.png" {
		t.Errorf("expected only icon16.png, got %v", got)
	}
}

func TestGenerateCancelled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	results, err := Generate(ctx, Options{Dir: dir})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
	if got := listDir(t, dir); len(got) != 0 {
		t.Errorf("expected no files, got %v", got)
	}
}
