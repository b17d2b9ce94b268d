package material

import (
	"math"

	"github.com/lucasb/go-bsdf/pkg/core"
)

// SurfaceInteraction describes the local differential geometry at a shading
// point. The shading normal is the +Z axis of the local frame spanned by
// Tangent, Bitangent and Normal.
type SurfaceInteraction struct {
	Point           core.Vec3 // Point of intersection
	Normal          core.Vec3 // Shading normal, local +Z
	GeometricNormal core.Vec3 // True surface normal, used for hemisphere tests
	Tangent         core.Vec3
	Bitangent       core.Vec3
	UV              core.Vec2 // Texture coordinates
	T               float64   // Parameter t along the ray
	FrontFace       bool      // Whether the ray hit the front face
}

// NewSurfaceInteraction builds a shading point with an orthonormal frame
// around the given normal. The geometric normal defaults to the shading
// normal; callers with bump-mapped or interpolated normals can overwrite it.
func NewSurfaceInteraction(point, normal core.Vec3, uv core.Vec2) *SurfaceInteraction {
	n := normal.Normalize()

	// Find a vector perpendicular to the normal
	var nt core.Vec3
	if math.Abs(n.X) > 0.1 {
		nt = core.NewVec3(0, 1, 0)
	} else {
		nt = core.NewVec3(1, 0, 0)
	}

	tangent := nt.Cross(n).Normalize()
	bitangent := n.Cross(tangent)

	return &SurfaceInteraction{
		Point:           point,
		Normal:          n,
		GeometricNormal: n,
		Tangent:         tangent,
		Bitangent:       bitangent,
		UV:              uv,
	}
}

// WorldToLocal converts a world-space direction into the shading frame
func (si *SurfaceInteraction) WorldToLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(v.Dot(si.Tangent), v.Dot(si.Bitangent), v.Dot(si.Normal))
}

// LocalToWorld converts a shading-frame direction back to world space
func (si *SurfaceInteraction) LocalToWorld(v core.Vec3) core.Vec3 {
	return si.Tangent.Multiply(v.X).
		Add(si.Bitangent.Multiply(v.Y)).
		Add(si.Normal.Multiply(v.Z))
}

// The predicates below take local-frame directions, where trigonometry
// against the normal reduces to reading z components.

// CosTheta returns the signed cosine between w and the shading normal
func CosTheta(w core.Vec3) float64 {
	return w.Z
}

// AbsCosTheta returns the unsigned cosine between w and the shading normal
func AbsCosTheta(w core.Vec3) float64 {
	return math.Abs(w.Z)
}

// SinTheta2 returns the squared sine between w and the shading normal
func SinTheta2(w core.Vec3) float64 {
	return math.Max(0, 1.0-w.Z*w.Z)
}

// SameHemisphere reports whether two local directions lie on the same side
// of the surface
func SameHemisphere(a, b core.Vec3) bool {
	return a.Z*b.Z > 0
}
