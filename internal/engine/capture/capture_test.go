package capture

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestFormatByName(t *testing.T) {
	f, err := FormatByName("")
	require.NoError(t, err)
	assert.Equal(t, "png", f.Ext)

	f, err = FormatByName("bmp")
	require.NoError(t, err)
	assert.Equal(t, "bmp", f.Ext)

	_, err = FormatByName("gif")
	assert.Error(t, err)
}

func TestFromPixelsFlips(t *testing.T) {
	// Bottom row red, top row blue, as GL reads them
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))

	_, err = FromPixels(pixels, 2, 2)
	assert.Error(t, err)
	_, err = FromPixels(nil, 0, 0)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	c := New("out", "studio", PNG)
	c.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC) }
	assert.Equal(t, filepath.Join("out", "studio_2024-03-09_14-05-06.png"), c.Filename())

	c.dir = ""
	assert.Equal(t, "studio_2024-03-09_14-05-06.png", c.Filename())
}

func TestSavePixelsBMP(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures")
	c := New(dir, "shot", BMP)

	pixels := make([]byte, 4*3*4)
	for i := range pixels {
		pixels[i] = 200
		if i%4 == 3 {
			pixels[i] = 255
		}
	}
	path, err := c.SavePixels(pixels, 4, 3)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
}
