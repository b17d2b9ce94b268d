package material

import (
	"math"

	"github.com/lucasb/go-bsdf/pkg/core"
)

// Lambertian represents a perfectly diffuse reflector
type Lambertian struct {
	baseBSDF
}

// NewLambertian creates a diffuse material with the given albedo source
func NewLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{baseBSDF{
		scatterType: Reflection | Diffuse,
		kind:        KindDiffuse,
		albedo:      albedo,
	}}
}

// Eval returns the constant 1/π lobe modulated by albedo
func (l *Lambertian) Eval(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) core.Vec3 {
	types = stripHemisphereTypes(out, in, si.GeometricNormal, types)
	if !l.MatchesTypes(types) {
		return core.Vec3{}
	}

	wo := si.WorldToLocal(out)
	wi := si.WorldToLocal(in)

	return l.color(si).Multiply(l.evalLocal(wo, wi))
}

// Pdf returns the cosine-weighted density matching SampleScattered
func (l *Lambertian) Pdf(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) float64 {
	types = stripHemisphereTypes(out, in, si.GeometricNormal, types)
	if !l.MatchesTypes(types) {
		return 0
	}

	wo := si.WorldToLocal(out)
	wi := si.WorldToLocal(in)

	return l.pdfLocal(wo, wi)
}

// SampleScattered draws a cosine-weighted direction on the outgoing side
func (l *Lambertian) SampleScattered(out core.Vec3, sample core.Sample, si *SurfaceInteraction, types ScatterType) ScatterSample {
	if !l.MatchesTypes(types) {
		return ScatterSample{}
	}

	wo := si.WorldToLocal(out)
	wi := core.CosineSampleHemisphere(core.NewVec2(sample.U, sample.V))

	// Land the sample on the same side as the outgoing direction
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}

	return ScatterSample{
		In:          si.LocalToWorld(wi),
		Pdf:         l.pdfLocal(wo, wi),
		Color:       l.color(si).Multiply(l.evalLocal(wo, wi)),
		SampledType: l.scatterType,
	}
}

func (l *Lambertian) evalLocal(wo, wi core.Vec3) float64 {
	if !SameHemisphere(wo, wi) {
		return 0
	}
	return 1.0 / math.Pi
}

func (l *Lambertian) pdfLocal(wo, wi core.Vec3) float64 {
	if !SameHemisphere(wo, wi) {
		return 0
	}
	return AbsCosTheta(wi) / math.Pi
}
