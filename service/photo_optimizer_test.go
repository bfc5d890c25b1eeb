package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestOptimize_SmallImageKeepsDimensions(t *testing.T) {
	p := NewPhotoOptimizer(1920, 75, zap.NewNop())
	out, err := p.Optimize(pngBytes(t, 640, 480))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestOptimize_WideImageScalesDown(t *testing.T) {
	p := NewPhotoOptimizer(1000, 75, zap.NewNop())
	out, err := p.Optimize(pngBytes(t, 2000, 500))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 250, h, "aspect ratio is preserved")
}

func TestOptimize_TallImageScalesDown(t *testing.T) {
	p := NewPhotoOptimizer(1000, 75, zap.NewNop())
	out, err := p.Optimize(pngBytes(t, 500, 2000))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 250, w)
	assert.Equal(t, 1000, h)
}

func TestOptimize_InvalidDataFails(t *testing.T) {
	p := NewPhotoOptimizer(1920, 75, zap.NewNop())
	_, err := p.Optimize([]byte("not an image"))
	assert.Error(t, err)
}

func TestOptimizeFile_RenamesToJPG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site-photo.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 100, 100), 0644))

	p := NewPhotoOptimizer(1920, 75, zap.NewNop())
	data, name, err := p.OptimizeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "site-photo.jpg", name)
	assert.NotEmpty(t, data)
}

func TestOptimizeFile_MissingFile(t *testing.T) {
	p := NewPhotoOptimizer(1920, 75, zap.NewNop())
	_, _, err := p.OptimizeFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
