package material

import (
	"math"

	"github.com/lucasb/go-bsdf/pkg/core"
)

// Glass represents a smooth dielectric interface that both reflects and
// refracts. The branch is chosen by Fresnel-weighted Russian roulette; like
// Mirror, both lobes are delta distributions.
type Glass struct {
	baseBSDF
	etaI float64 // Refractive index on the incident (front) side
	etaT float64 // Refractive index on the transmitted side
}

// NewGlass creates a dielectric with the given index pair. Which index is
// incident is decided per call from the sign of the outgoing cosine.
func NewGlass(albedo ColorSource, etaI, etaT float64) *Glass {
	return &Glass{
		baseBSDF: baseBSDF{
			scatterType: Reflection | Transmission | Specular,
			kind:        KindGlass,
			albedo:      albedo,
		},
		etaI: etaI,
		etaT: etaT,
	}
}

// Eval always returns zero: both lobes are delta distributions
func (g *Glass) Eval(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) core.Vec3 {
	return core.Vec3{}
}

// Pdf always returns zero for the same reason
func (g *Glass) Pdf(out, in core.Vec3, si *SurfaceInteraction, types ScatterType) float64 {
	return 0
}

// SampleScattered picks reflection or refraction. With both lobes requested
// the choice is stochastic with probability p = 0.5*fresnel + 0.25, which
// biases toward the locally dominant branch while keeping either reachable.
func (g *Glass) SampleScattered(out core.Vec3, sample core.Sample, si *SurfaceInteraction, types ScatterType) ScatterSample {
	sampleReflect := types.Contains(Reflection | Specular)
	sampleRefract := types.Contains(Transmission | Specular)

	if !sampleReflect && !sampleRefract {
		return ScatterSample{}
	}
	sampleBoth := sampleReflect == sampleRefract

	wo := si.WorldToLocal(out)

	fresnel := FresnelDielectric(CosTheta(wo), g.etaI, g.etaT)
	prob := 0.5*fresnel + 0.25

	if (sampleBoth && sample.W <= prob) || (!sampleBoth && sampleReflect) {
		// Reflection branch
		wi := core.NewVec3(-wo.X, -wo.Y, wo.Z)

		pdf := prob
		if !sampleBoth {
			pdf = 1
		}

		return ScatterSample{
			In:          si.LocalToWorld(wi),
			Pdf:         pdf,
			Color:       g.color(si).Multiply(fresnel / AbsCosTheta(wi)),
			SampledType: Reflection | Specular,
		}
	}

	// Refraction branch
	entering := CosTheta(wo) > 0
	etaI, etaT := g.etaI, g.etaT
	if !entering {
		etaI, etaT = etaT, etaI
	}

	eta := etaI / etaT
	sinT2 := eta * eta * SinTheta2(wo)
	if sinT2 > 1 {
		// Total internal reflection: no energy crosses the interface
		return ScatterSample{}
	}

	cosT := math.Sqrt(math.Max(0, 1.0-sinT2))
	if entering {
		// Transmitted direction continues into the opposite hemisphere
		cosT = -cosT
	}

	wi := core.NewVec3(eta*-wo.X, eta*-wo.Y, cosT)

	pdf := 1 - prob
	if !sampleBoth {
		pdf = 1
	}

	return ScatterSample{
		In:          si.LocalToWorld(wi),
		Pdf:         pdf,
		Color:       g.color(si).Multiply((1 - fresnel) / AbsCosTheta(wi)),
		SampledType: Transmission | Specular,
	}
}
