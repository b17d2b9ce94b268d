package material

import (
	"testing"

	"github.com/lucasb/go-bsdf/pkg/core"
)

func TestImageTexture_SamplesNearestPixel(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	blue := core.NewVec3(0, 0, 1)
	tex := NewImageTexture(2, 1, []core.Vec3{red, blue})

	point := core.NewVec3(0, 0, 0)
	if got := tex.Evaluate(core.NewVec2(0.1, 0.5), point); got != red {
		t.Errorf("expected red at u=0.1, got %v", got)
	}
	if got := tex.Evaluate(core.NewVec2(0.9, 0.5), point); got != blue {
		t.Errorf("expected blue at u=0.9, got %v", got)
	}
}

func TestImageTexture_WrapsUV(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	blue := core.NewVec3(0, 0, 1)
	tex := NewImageTexture(2, 1, []core.Vec3{red, blue})
	point := core.NewVec3(0, 0, 0)

	// u=1.1 wraps to 0.1, u=-0.3 wraps to 0.7
	if got := tex.Evaluate(core.NewVec2(1.1, 0.5), point); got != red {
		t.Errorf("expected red after positive wrap, got %v", got)
	}
	if got := tex.Evaluate(core.NewVec2(-0.3, 0.5), point); got != blue {
		t.Errorf("expected blue after negative wrap, got %v", got)
	}
}

func TestImageTexture_FlipsV(t *testing.T) {
	top := core.NewVec3(1, 1, 1)
	bottom := core.NewVec3(0, 0, 0)
	// Row 0 is the top of the image
	tex := NewImageTexture(1, 2, []core.Vec3{top, bottom})
	point := core.NewVec3(0, 0, 0)

	// V near 1 samples the top row, V near 0 the bottom row
	if got := tex.Evaluate(core.NewVec2(0.5, 0.9), point); got != top {
		t.Errorf("expected top row at v=0.9, got %v", got)
	}
	if got := tex.Evaluate(core.NewVec2(0.5, 0.1), point); got != bottom {
		t.Errorf("expected bottom row at v=0.1, got %v", got)
	}
}
