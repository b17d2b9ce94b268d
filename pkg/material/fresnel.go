package material

import "math"

// FresnelDielectric computes the exact unpolarized reflectance of a dielectric
// interface. cosI is the signed cosine between the incident direction and the
// surface normal; a negative value means the ray is exiting, in which case the
// two refractive indices swap roles. Returns 1 under total internal reflection.
func FresnelDielectric(cosI, etaI, etaT float64) float64 {
	cosI = math.Max(-1, math.Min(1, cosI))

	entering := cosI > 0
	ei, et := etaI, etaT
	if !entering {
		ei, et = et, ei
	}

	// Snell's law gives the transmitted sine
	sinT := ei / et * math.Sqrt(math.Max(0, 1.0-cosI*cosI))
	if sinT >= 1 {
		return 1.0
	}

	cosT := math.Sqrt(math.Max(0, 1.0-sinT*sinT))
	cosI = math.Abs(cosI)

	parallel := (etaT*cosI - etaI*cosT) / (etaT*cosI + etaI*cosT)
	perpendicular := (etaI*cosI - etaT*cosT) / (etaI*cosI + etaT*cosT)

	return (parallel*parallel + perpendicular*perpendicular) / 2.0
}
