package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lucasb/go-bsdf/pkg/core"
)

func TestMix_EvalAndPdfBlend(t *testing.T) {
	a := NewLambertian(NewSolidColor(core.NewVec3(1, 0, 0)))
	b := NewLambertian(NewSolidColor(core.NewVec3(0, 0, 1)))
	mix := NewMix(a, b, 0.25)
	si := testInteraction()

	out := core.NewVec3(0, 0, 1)
	in := core.NewVec3(0.6, 0, 0.8)

	value := mix.Eval(out, in, si, All)
	expected := core.NewVec3(0.75/math.Pi, 0, 0.25/math.Pi)
	if value.Subtract(expected).Length() > 1e-12 {
		t.Errorf("expected %v, got %v", expected, value)
	}

	// Both children share the cosine density, so the blend is unchanged
	pdf := mix.Pdf(out, in, si, All)
	if math.Abs(pdf-0.8/math.Pi) > 1e-12 {
		t.Errorf("expected pdf %f, got %f", 0.8/math.Pi, pdf)
	}
}

func TestMix_SamplingConsistentWithPdf(t *testing.T) {
	a := NewLambertian(NewSolidColor(core.NewVec3(0.9, 0.1, 0.1)))
	b := NewLambertian(NewSolidColor(core.NewVec3(0.1, 0.1, 0.9)))
	mix := NewMix(a, b, 0.4)
	si := testInteraction()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	out := core.NewVec3(0.1, 0.2, 0.97).Normalize()

	for i := 0; i < 1000; i++ {
		s := mix.SampleScattered(out, core.NewSample(sampler), si, All)
		if s.Pdf <= 0 {
			t.Fatal("diffuse mix should always produce a sample")
		}

		recomputedPdf := mix.Pdf(out, s.In, si, All)
		if math.Abs(s.Pdf-recomputedPdf) > 1e-12 {
			t.Fatalf("pdf mismatch: sampled %f, recomputed %f", s.Pdf, recomputedPdf)
		}

		recomputedColor := mix.Eval(out, s.In, si, All)
		if s.Color.Subtract(recomputedColor).Length() > 1e-12 {
			t.Fatalf("color mismatch: sampled %v, recomputed %v", s.Color, recomputedColor)
		}
	}
}

func TestMix_DeltaChildFoldsSelectionProbability(t *testing.T) {
	diffuse := NewLambertian(NewSolidColor(core.NewVec3(0.5, 0.5, 0.5)))
	mirror := NewMirror(NewSolidColor(core.NewVec3(1, 1, 1)))
	mix := NewMix(diffuse, mirror, 0.5)
	si := testInteraction()

	out := core.NewVec3(0.6, 0, 0.8)

	// W below the ratio selects the mirror child
	s := mix.SampleScattered(out, core.Sample{U: 0.3, V: 0.7, W: 0.2}, si, All)

	if s.SampledType != Reflection|Specular {
		t.Fatalf("expected the mirror child, got %b", s.SampledType)
	}
	if math.Abs(s.Pdf-0.5) > 1e-12 {
		t.Errorf("expected selection-weighted pdf 0.5, got %f", s.Pdf)
	}

	// Weighted color / weighted pdf keeps the estimator unchanged
	expectedWeight := 0.5 * (1.0 / 0.8)
	if math.Abs(s.Color.X-expectedWeight) > 1e-12 {
		t.Errorf("expected weighted color %f, got %f", expectedWeight, s.Color.X)
	}
}

func TestMix_DegenerateRatios(t *testing.T) {
	a := NewLambertian(NewSolidColor(core.NewVec3(1, 0, 0)))
	b := NewLambertian(NewSolidColor(core.NewVec3(0, 0, 1)))
	si := testInteraction()
	out := core.NewVec3(0, 0, 1)

	// Ratio 0: only A is ever sampled, with full weight
	onlyA := NewMix(a, b, 0)
	s := onlyA.SampleScattered(out, core.Sample{U: 0.5, V: 0.5, W: 0.99}, si, All)
	if s.Color.X == 0 || s.Color.Z != 0 {
		t.Errorf("expected pure A sample, got %v", s.Color)
	}

	onlyB := NewMix(a, b, 1)
	s = onlyB.SampleScattered(out, core.Sample{U: 0.5, V: 0.5, W: 0.01}, si, All)
	if s.Color.Z == 0 || s.Color.X != 0 {
		t.Errorf("expected pure B sample, got %v", s.Color)
	}

	// Constructor clamps out-of-range ratios
	if NewMix(a, b, 2.5).Ratio != 1 {
		t.Error("expected ratio clamped to 1")
	}
}

func TestMix_TypeIsUnionOfChildren(t *testing.T) {
	mix := NewMix(
		NewLambertian(NewSolidColor(core.NewVec3(1, 1, 1))),
		testGlass(),
		0.5,
	)

	expected := Reflection | Diffuse | Transmission | Specular
	if mix.Type() != expected {
		t.Errorf("expected %b, got %b", expected, mix.Type())
	}
	if mix.Kind() != KindMix {
		t.Errorf("expected mix kind, got %v", mix.Kind())
	}
}
