package export

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned for formats that cannot be written.
var ErrUnsupportedFormat = errors.New("export: unsupported image format")

// Format names an output image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	// FormatWEBP is recognised so the error can name it; only decoding is
	// available.
	FormatWEBP Format = "webp"
)

// JPEGQuality is used for every JPEG export.
const JPEGQuality = 95

// Formats lists the encodings Encode accepts.
func Formats() []Format { return []Format{FormatPNG, FormatJPEG, FormatBMP} }

// ParseFormat maps a user supplied name such as "PNG" or "jpg" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "webp":
		return FormatWEBP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Encode writes img to w in the requested format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatWEBP:
		return fmt.Errorf("%w: webp can be read but not written", ErrUnsupportedFormat)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Save encodes img into path, choosing the format from its extension. The
// file is only created once the format is known to be writable, and is
// removed again if encoding fails.
func Save(path string, img image.Image) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if f == FormatWEBP {
		return Encode(io.Discard, img, f)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := Encode(out, img, f); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
