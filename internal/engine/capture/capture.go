// Package capture writes rendered frames to image files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Format is an image encoding for captures.
type Format struct {
	Ext    string
	encode func(w io.Writer, img image.Image) error
}

var (
	PNG = Format{Ext: "png", encode: png.Encode}
	BMP = Format{Ext: "bmp", encode: bmp.Encode}
)

// FormatByName looks up a format by its config name.
func FormatByName(name string) (Format, error) {
	switch name {
	case PNG.Ext, "":
		return PNG, nil
	case BMP.Ext:
		return BMP, nil
	default:
		return Format{}, fmt.Errorf("unknown capture format %q", name)
	}
}

// Capturer names and writes capture files.
type Capturer struct {
	dir    string
	prefix string
	format Format
	now    func() time.Time
}

// New creates a capturer writing into dir. An empty dir means the working
// directory.
func New(dir, prefix string, format Format) *Capturer {
	return &Capturer{
		dir:    dir,
		prefix: prefix,
		format: format,
		now:    time.Now,
	}
}

// Filename returns the path the next capture would be written to.
func (c *Capturer) Filename() string {
	name := fmt.Sprintf("%s_%s.%s", c.prefix, c.now().Format("2006-01-02_15-04-05"), c.format.Ext)
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// FromPixels builds an image from tightly packed RGBA rows read bottom-up,
// the order GL returns them in.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// SavePixels writes GL pixel data to a new capture file and returns its path.
func (c *Capturer) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.Save(img)
}

// Save writes img to a new capture file and returns its path.
func (c *Capturer) Save(img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0755); err != nil {
			return "", fmt.Errorf("creating capture dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := c.format.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", c.format.Ext, err)
	}
	return filename, nil
}
