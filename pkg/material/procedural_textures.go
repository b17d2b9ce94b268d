package material

import (
	perlin "github.com/aquilax/go-perlin"

	"github.com/lucasb/go-bsdf/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Determine which check we're in
			checkX := x / checkSize
			checkY := y / checkSize

			// Alternate colors based on check position
			var color core.Vec3
			if (checkX+checkY)%2 == 0 {
				color = color1
			} else {
				color = color2
			}

			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := float64(y) / float64(height-1)
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		// Interpolate from top to bottom
		t := float64(y) / float64(height-1)
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NoiseTexture blends two colors by 3D Perlin noise evaluated at the shading
// point, for marble/terrain style albedo variation
type NoiseTexture struct {
	noise  *perlin.Perlin
	Color1 core.Vec3
	Color2 core.Vec3
	Scale  float64
}

// NewNoiseTexture creates a Perlin noise texture. Scale controls feature size
// in world units; the same seed always reproduces the same pattern.
func NewNoiseTexture(color1, color2 core.Vec3, scale float64, seed int64) *NoiseTexture {
	return &NoiseTexture{
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		Color1: color1,
		Color2: color2,
		Scale:  scale,
	}
}

// Evaluate blends the two colors by the noise value at the 3D point
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	// Noise3D returns roughly [-1, 1]; remap to a blend factor
	v := n.noise.Noise3D(point.X*n.Scale, point.Y*n.Scale, point.Z*n.Scale)
	t := 0.5 * (v + 1.0)

	return n.Color1.Multiply(1.0-t).Add(n.Color2.Multiply(t)).Clamp(0, 1)
}
