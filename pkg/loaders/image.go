package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/lucasb/go-bsdf/pkg/core"
	"github.com/lucasb/go-bsdf/pkg/logger"
	"github.com/lucasb/go-bsdf/pkg/material"
)

// MaxTextureDim caps loaded texture dimensions. Larger images are downscaled
// preserving aspect ratio before conversion.
const MaxTextureDim = 4096

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG image and converts it to Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxTextureDim || bounds.Dy() > MaxTextureDim {
		logger.Log.Warn("downscaling oversized texture",
			zap.String("file", filename),
			zap.Int("width", bounds.Dx()),
			zap.Int("height", bounds.Dy()))
		img = resize.Thumbnail(MaxTextureDim, MaxTextureDim, img, resize.Bilinear)
		bounds = img.Bounds()
	}

	// Convert to Vec3 array
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	logger.Log.Debug("loaded texture",
		zap.String("file", filename),
		zap.Int("width", width),
		zap.Int("height", height))

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// NewImageTextureFromFile loads an image and wraps it as a texture color source
func NewImageTextureFromFile(filename string) (*material.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}

// NewBSDFFromImage builds a variant whose albedo comes from an image file
func NewBSDFFromImage(kind material.Kind, filename string) (material.BSDF, error) {
	tex, err := NewImageTextureFromFile(filename)
	if err != nil {
		return nil, err
	}
	return material.NewBSDF(kind, tex), nil
}
