package material

import (
	"github.com/lucasb/go-bsdf/pkg/core"
)

// Mirror represents an ideal specular reflector. Its lobe is a delta
// distribution, so finite evaluation and density are identically zero;
// only sampling produces the reflected direction.
type Mirror struct {
	baseBSDF
}

// NewMirror creates a perfect mirror with the given albedo source
func NewMirror(albedo ColorSource) *Mirror {
	return &Mirror{baseBSDF{
		scatterType: Reflection | Specular,
		kind:        KindMirror,
		albedo:      albedo,
	}}
}

// Eval always returns zero: a continuous direction pair never hits the delta
func (m *Mirror) Eval(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) core.Vec3 {
	return core.Vec3{}
}

// Pdf always returns zero for the same reason
func (m *Mirror) Pdf(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) float64 {
	return 0
}

// SampleScattered returns the perfect mirror reflection of out. The delta
// density is folded into the weight, so the reported pdf is 1 and the color
// is divided by |cosθ| to cancel the integrator's cosine term.
func (m *Mirror) SampleScattered(out core.Vec3, sample core.Sample, si *SurfaceInteraction, types ScatterType) ScatterSample {
	if !m.MatchesTypes(types) {
		return ScatterSample{}
	}

	wo := si.WorldToLocal(out)
	wi := core.NewVec3(-wo.X, -wo.Y, wo.Z)

	return ScatterSample{
		In:          si.LocalToWorld(wi),
		Pdf:         1,
		Color:       m.color(si).Multiply(1.0 / AbsCosTheta(wi)),
		SampledType: m.scatterType,
	}
}
