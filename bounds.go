package hsluv

import "math"

// Gamut boundary geometry.
//
// At a fixed lightness the sRGB cube maps to a convex region of the (u, v)
// chroma plane bounded by six lines: each of the R, G, B channels pinned to
// its 0 face or its 1 face. Chroma limits are distances in that plane from
// the origin, which is the gray axis.
//
// Based on the HSLuv reference implementation (https://www.hsluv.org)
// with adaptations for Go idioms.

// boundary is one gamut edge as the line v = slope*u + intercept.
type boundary struct {
	slope, intercept float64
}

// chromaBounds computes the six gamut boundary lines at lightness l.
// The coefficients are the sRGB matrix rows folded through the LUV forward
// transform, precomputed as integers scaled by 1560896 (116^3).
func chromaBounds(l float64) [6]boundary {
	var bounds [6]boundary

	sub1 := math.Pow(l+16, 3) / 1560896
	sub2 := sub1
	if sub1 <= epsilon {
		sub2 = l / kappa
	}

	for channel := 0; channel < 3; channel++ {
		m1 := m[channel][0]
		m2 := m[channel][1]
		m3 := m[channel][2]

		for t := 0; t < 2; t++ {
			top1 := (284517*m1 - 94839*m3) * sub2
			top2 := (838422*m3+769860*m2+731718*m1)*l*sub2 - 769860*float64(t)*l
			bottom := (632260*m3-126452*m2)*sub2 + 126452*float64(t)

			bounds[channel*2+t] = boundary{
				slope:     top1 / bottom,
				intercept: top2 / bottom,
			}
		}
	}
	return bounds
}

// rayLength returns how far the ray from the origin at angle theta travels
// before crossing the line. Negative lengths mean the line lies behind the
// ray and must be ignored by callers.
func rayLength(theta float64, line boundary) float64 {
	return line.intercept / (math.Sin(theta) - line.slope*math.Cos(theta))
}

// MaxChroma returns the largest chroma a color of lightness l (0-100) and
// hue h (degrees) can carry while staying inside the sRGB gamut. HSLuv
// saturation 100 lands exactly on this chroma.
//
// The result is undefined for lightness outside (0, 100); callers guard the
// degenerate black and white cases before reaching the geometry.
func MaxChroma(l, h float64) float64 {
	minLen := math.MaxFloat64
	hrad := h / 360 * math.Pi * 2

	for _, line := range chromaBounds(l) {
		length := rayLength(hrad, line)
		if length >= 0 && length < minLen {
			minLen = length
		}
	}
	return minLen
}

// MaxSafeChroma returns the largest chroma that stays inside the sRGB gamut
// at lightness l regardless of hue: the distance from the gray axis to the
// closest boundary line. HPLuv saturation 100 lands exactly on this chroma,
// which keeps chroma steps comparable across hues.
func MaxSafeChroma(l float64) float64 {
	minLen := math.MaxFloat64

	for _, line := range chromaBounds(l) {
		// x where the line meets its perpendicular through the origin.
		x := line.intercept / (-1/line.slope - line.slope)
		y := line.intercept + x*line.slope
		dist := math.Sqrt(x*x + y*y)
		if dist >= 0 && dist < minLen {
			minLen = dist
		}
	}
	return minLen
}
