package material

import (
	"math"

	"github.com/lucasb/go-bsdf/pkg/core"
)

// Mix blends two scattering models. Evaluation and density are ratio-weighted
// sums; sampling picks one child probabilistically.
type Mix struct {
	A, B  BSDF
	Ratio float64 // 0.0 = all A, 1.0 = all B
}

// NewMix creates a blend of two materials
func NewMix(a, b BSDF, ratio float64) *Mix {
	ratio = math.Max(0.0, math.Min(ratio, 1.0))
	return &Mix{A: a, B: b, Ratio: ratio}
}

// Type returns the union of both children's scatter types
func (m *Mix) Type() ScatterType {
	return m.A.Type() | m.B.Type()
}

// Kind returns the composite tag
func (m *Mix) Kind() Kind {
	return KindMix
}

// Eval blends both children's scattering values
func (m *Mix) Eval(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) core.Vec3 {
	a := m.A.Eval(out, in, si, types).Multiply(1.0 - m.Ratio)
	b := m.B.Eval(out, in, si, types).Multiply(m.Ratio)
	return a.Add(b)
}

// Pdf blends both children's densities
func (m *Mix) Pdf(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) float64 {
	return m.A.Pdf(out, in, si, types)*(1.0-m.Ratio) + m.B.Pdf(out, in, si, types)*m.Ratio
}

// SampleScattered selects a child with the W uniform and delegates. For
// finite lobes the realized pdf and color are re-blended across both
// children so Pdf stays consistent with the sampling distribution; for a
// delta child the selection probability is folded into the realized pdf.
func (m *Mix) SampleScattered(out core.Vec3, sample core.Sample, si *SurfaceInteraction, types ScatterType) ScatterSample {
	chosen, weight := m.A, 1.0-m.Ratio
	switch {
	case m.Ratio <= 0:
		chosen, weight = m.A, 1.0
	case m.Ratio >= 1:
		chosen, weight = m.B, 1.0
	case sample.W < m.Ratio:
		chosen, weight = m.B, m.Ratio
		// Remap the selector so the child sees a fresh uniform
		sample.W = sample.W / m.Ratio
	default:
		sample.W = (sample.W - m.Ratio) / (1.0 - m.Ratio)
	}

	result := chosen.SampleScattered(out, sample, si, types)
	if result.Pdf == 0 {
		return ScatterSample{}
	}

	if result.SampledType.Contains(Specular) {
		result.Pdf *= weight
		result.Color = result.Color.Multiply(weight)
		return result
	}

	result.Pdf = m.Pdf(out, result.In, si, types)
	result.Color = m.Eval(out, result.In, si, types)
	return result
}
