package material

// ScatterType is a bit-flag set classifying a scattering lobe along the two
// orthogonal axes {Reflection, Transmission} x {Diffuse, Glossy, Specular}.
// The integrator filters evaluation and sampling with these flags.
type ScatterType int

const (
	Reflection ScatterType = 1 << iota
	Transmission
	Diffuse
	Glossy
	Specular
)

// Convenience unions over the base flags
const (
	AllModes        = Diffuse | Glossy | Specular
	AllReflection   = Reflection | AllModes
	AllTransmission = Transmission | AllModes
	All             = AllReflection | AllTransmission
)

// Contains reports whether every flag of sub is also set in t
func (t ScatterType) Contains(sub ScatterType) bool {
	return t&sub == sub
}

// Kind identifies a concrete scattering model variant
type Kind int

const (
	KindDiffuse Kind = iota
	KindMirror
	KindGlass
	KindMix
)

func (k Kind) String() string {
	switch k {
	case KindDiffuse:
		return "diffuse"
	case KindMirror:
		return "mirror"
	case KindGlass:
		return "glass"
	case KindMix:
		return "mix"
	}
	return "invalid"
}

// KindFromName looks up a kind by its table name
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "diffuse":
		return KindDiffuse, true
	case "mirror":
		return KindMirror, true
	case "glass":
		return KindGlass, true
	case "mix":
		return KindMix, true
	}
	return Kind(-1), false
}
