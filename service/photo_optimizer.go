package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	defaultPhotoMaxDim  = 1920
	defaultPhotoQuality = 75
)

// PhotoOptimizer recompresses visit photo evidence before upload:
// resize to a maximum dimension (aspect ratio preserved) and re-encode
// as JPEG, the same treatment the web client applied in the browser.
type PhotoOptimizer struct {
	maxDim  int
	quality int
	log     *zap.Logger
}

// NewPhotoOptimizer creates a PhotoOptimizer. Non-positive settings
// fall back to defaults (1920px, quality 75).
func NewPhotoOptimizer(maxDim, quality int, log *zap.Logger) *PhotoOptimizer {
	if maxDim <= 0 {
		maxDim = defaultPhotoMaxDim
	}
	if quality <= 0 || quality > 100 {
		quality = defaultPhotoQuality
	}
	return &PhotoOptimizer{maxDim: maxDim, quality: quality, log: log}
}

// Optimize decodes raw image bytes (PNG, JPEG, ...), resizes them if
// either dimension exceeds the maximum, and returns JPEG bytes.
func (p *PhotoOptimizer) Optimize(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	resized := img
	if width > p.maxDim || height > p.maxDim {
		var newWidth, newHeight int
		if width > height {
			newWidth = p.maxDim
			newHeight = int(float64(height) * float64(p.maxDim) / float64(width))
		} else {
			newHeight = p.maxDim
			newWidth = int(float64(width) * float64(p.maxDim) / float64(height))
		}
		resized = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	p.log.Debug("photo optimized",
		zap.String("format", format),
		zap.Int("input_bytes", len(data)),
		zap.Int("output_bytes", buf.Len()))
	return buf.Bytes(), nil
}

// OptimizeFile reads a photo from disk and returns the optimized JPEG
// bytes plus the upload file name (original base name with a .jpg
// extension).
func (p *PhotoOptimizer) OptimizeFile(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read photo %s: %w", path, err)
	}
	optimized, err := p.Optimize(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to optimize %s: %w", path, err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + ".jpg"
	return optimized, name, nil
}
