// Package iconset renders the extension icons at each
// of their sizes and writes them as PNG files.
//
// Every file is attempted on its own: a failure to write one icon
// is reported in its Result and does not prevent the others.
package iconset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/benoitkugler/flowicon/glyph"
	"github.com/benoitkugler/flowicon/iconraster"
)

// Sizes returns the icon sizes, in generation order.
func Sizes() []int { return []int{16, 48, 128} }

// Variant is one family of icons sharing a glyph and background.
type Variant struct {
	Suffix string // appended to the file name, empty for the active icons
	Icon   *glyph.Icon
}

// Active is the default variant, written to icon<size>.png.
func Active() Variant { return Variant{Icon: glyph.Workflow()} }

// Inactive is written to icon<size>-inactive.png.
func Inactive() Variant { return Variant{Suffix: "-inactive", Icon: glyph.Inactive()} }

// FileName returns the conventional name of the icon file.
func (v Variant) FileName(size int) string {
	return fmt.Sprintf("icon%d%s.png", size, v.Suffix)
}

// Options configures Generate.
type Options struct {
	Dir      string    // output directory, created if needed; empty means the current directory
	Sizes    []int     // nil means Sizes()
	Variants []Variant // nil means only Active()
}

// Result is the outcome of writing one icon file.
type Result struct {
	Size int
	Path string
	Err  error
}

// Generate renders every variant at every size and writes the files.
// All files are attempted; the returned error joins the failures.
// Generation stops early, before the next file, if ctx is cancelled.
func Generate(ctx context.Context, opts Options) ([]Result, error) {
	logger := LoggerFromContext(ctx)
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Sizes == nil {
		opts.Sizes = Sizes()
	}
	if opts.Variants == nil {
		opts.Variants = []Variant{Active()}
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var (
		results []Result
		errs    []error
	)
	for _, variant := range opts.Variants {
		for _, size := range opts.Sizes {
			if err := ctx.Err(); err != nil {
				return results, errors.Join(append(errs, err)...)
			}

			name := variant.FileName(size)
			logger.Infof("Generating %s...", name)
			res := Result{Size: size, Path: filepath.Join(opts.Dir, name)}
			res.Err = writeIcon(logger, variant.Icon, size, res.Path)
			if res.Err != nil {
				logger.Warn("icon not written", "file", res.Path, "err", res.Err)
				errs = append(errs, res.Err)
			}
			results = append(results, res)
		}
	}
	return results, errors.Join(errs...)
}

func writeIcon(logger *log.Logger, icon *glyph.Icon, size int, path string) error {
	logger.Debug("rendering", "icon", icon.Name, "size", size, "scale", glyph.Scale(size),
		"stroke", icon.StrokePixels(size), "shapes", len(icon.Visible(size)), "arrows", glyph.ShowArrows(size))
	img, err := iconraster.RenderIcon(icon, size)
	if err != nil {
		return err
	}
	return savePNG(path, img)
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
