package material

import (
	"fmt"

	"github.com/lucasb/go-bsdf/pkg/core"
)

// BSDF is the scattering contract every material variant implements. All
// directions at this boundary are world-space unit vectors pointing away from
// the surface; conversion into the shading frame happens inside each method.
type BSDF interface {
	// Eval returns the scattering value between two directions, modulated by
	// the albedo source. Zero when the type filter rejects the pair.
	Eval(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) core.Vec3

	// Pdf returns the solid-angle density with which SampleScattered would
	// have produced in given out. Zero under the same filtering rule.
	Pdf(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) float64

	// SampleScattered draws one scattered direction with the variant's
	// importance-sampling strategy. A zero-pdf result means no contribution.
	SampleScattered(out core.Vec3, sample core.Sample, si *SurfaceInteraction, types ScatterType) ScatterSample

	// Type returns the scatter-type flags fixed at construction
	Type() ScatterType

	// Kind returns the variant tag
	Kind() Kind
}

// ScatterSample is the result of one importance-sampled scattering decision
type ScatterSample struct {
	In          core.Vec3   // World-space sampled incoming direction
	Pdf         float64     // Realized density (1 for lone delta lobes)
	Color       core.Vec3   // Scattering value along In
	SampledType ScatterType // Which sub-lobe was actually chosen
}

// baseBSDF carries the immutable construction-time state shared by variants
type baseBSDF struct {
	scatterType ScatterType
	kind        Kind
	albedo      ColorSource
}

func (b *baseBSDF) Type() ScatterType {
	return b.scatterType
}

func (b *baseBSDF) Kind() Kind {
	return b.kind
}

// MatchesTypes reports whether the model's own type is fully contained in the
// requested set. Overlap is not enough; a reflection-only request must not
// match a reflection+transmission lobe.
func (b *baseBSDF) MatchesTypes(requested ScatterType) bool {
	return requested.Contains(b.scatterType)
}

// color evaluates the albedo source at the shading point
func (b *baseBSDF) color(si *SurfaceInteraction) core.Vec3 {
	return b.albedo.Evaluate(si.UV, si.Point)
}

// stripHemisphereTypes removes the lobe flag the geometry rules out: two
// directions on the same side of the geometric normal cannot be a
// transmission pair, two on opposite sides cannot be a reflection pair.
// Every variant's Eval and Pdf entry point applies this before matching.
func stripHemisphereTypes(out, in, geomNormal core.Vec3, types ScatterType) ScatterType {
	if out.Dot(geomNormal)*in.Dot(geomNormal) > 0 {
		return types &^ Transmission
	}
	return types &^ Reflection
}

// NewBSDF builds the variant for kind with the given albedo source. Glass is
// created as an air/glass interface; use NewGlass for other index pairs.
// An unknown kind means a broken material table and panics.
func NewBSDF(kind Kind, albedo ColorSource) BSDF {
	switch kind {
	case KindDiffuse:
		return NewLambertian(albedo)
	case KindMirror:
		return NewMirror(albedo)
	case KindGlass:
		return NewGlass(albedo, 1.0, 1.5)
	case KindMix:
		panic("material: kind mix requires two child BSDFs; use NewMix")
	}
	panic(fmt.Sprintf("material: unknown BSDF kind %d", kind))
}

// NewBSDFColor builds a constant-color variant for kind
func NewBSDFColor(kind Kind, color core.Vec3) BSDF {
	return NewBSDF(kind, NewSolidColor(color))
}
