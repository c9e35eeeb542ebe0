// Package export writes a rendered board to image and PDF files.
package export

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"PrimitiveBoard/internal/logging"
	"PrimitiveBoard/internal/render"
	"PrimitiveBoard/internal/state"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Canvas describes the board area being exported, in board pixels.
type Canvas struct {
	Width, Height int
	// Scale multiplies the output resolution of raster formats.
	Scale      float64
	Background color.Color
}

// ImageFormat is a raster output encoding.
type ImageFormat string

const (
	PNG  ImageFormat = "png"
	BMP  ImageFormat = "bmp"
	TIFF ImageFormat = "tiff"
)

// FormatForPath picks the raster format from the file extension,
// defaulting to PNG.
func FormatForPath(path string) ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	}
	return PNG
}

// Rasterize renders prims onto a fresh image surface.
func Rasterize(prims []state.Primitive, c Canvas, opts render.Options) *render.ImageSurface {
	bg := c.Background
	if bg == nil {
		bg = state.White
	}
	s := render.NewImageSurface(c.Width, c.Height, c.Scale, bg)
	render.Draw(s, prims, opts)
	return s
}

// WriteImage renders prims and encodes the result to w.
func WriteImage(w io.Writer, f ImageFormat, prims []state.Primitive, c Canvas, opts render.Options) error {
	img := Rasterize(prims, c, opts).Img
	var err error
	switch f {
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// ImageFile renders prims into path, choosing the format by extension.
func ImageFile(path string, prims []state.Primitive, c Canvas, opts render.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	format := FormatForPath(path)
	if err = WriteImage(f, format, prims, c, opts); err != nil {
		return err
	}
	logging.For("export").Info("image written", "path", path, "format", format, "count", len(prims))
	return nil
}
