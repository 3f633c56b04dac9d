package hsluv

// HPLuv is a color in the HPLuv space, the pastel variant of HSLuv: H is
// the hue angle in degrees in [0, 360), S is saturation in [0, 100] and L
// is lightness in [0, 100].
//
// Saturation measures chroma as a fraction of the largest chroma displayable
// at every hue for this lightness, so equal saturation means equal chroma
// regardless of hue. The reachable gamut is the hue-independent pastel core
// of sRGB; converting a saturated RGB color to HPLuv can report S above 100.
type HPLuv struct {
	H, S, L float64
}

// ToLCh converts HPLuv to cylindrical LUV.
func (c HPLuv) ToLCh() LCh {
	h := c.H

	// White and black: disambiguate chroma.
	var chroma float64
	if !(c.L > 99.9999999 || c.L < 1e-8) {
		chroma = MaxSafeChroma(c.L) / 100 * c.S
	}

	// Grays: disambiguate hue.
	if c.S < 1e-8 {
		h = 0
	}
	return LCh{L: c.L, C: chroma, H: h}
}

// ToHPLuv converts cylindrical LUV to HPLuv.
func (c LCh) ToHPLuv() HPLuv {
	h := c.H

	// White and black: disambiguate saturation.
	var s float64
	if !(c.L > 99.9999999 || c.L < 1e-8) {
		s = c.C / MaxSafeChroma(c.L) * 100
	}

	// Grays: disambiguate hue.
	if c.C < 1e-8 {
		h = 0
	}
	return HPLuv{H: h, S: s, L: c.L}
}

// ToRGB converts HPLuv to gamma-encoded sRGB. Inputs inside the documented
// ranges always produce channels in [0, 1].
func (c HPLuv) ToRGB() RGB {
	return c.ToLCh().ToLUV().ToXYZ().ToRGB()
}

// ToHPLuv converts gamma-encoded sRGB to HPLuv.
func (c RGB) ToHPLuv() HPLuv {
	return c.ToXYZ().ToLUV().ToLCh().ToHPLuv()
}

// HPLuvToRGB converts hue (0-360), saturation (0-100) and lightness (0-100)
// to sRGB channels in [0, 1]. Inputs are not validated; out-of-range values
// flow through the arithmetic unchecked.
func HPLuvToRGB(h, s, l float64) (r, g, b float64) {
	c := HPLuv{H: h, S: s, L: l}.ToRGB()
	return c.R, c.G, c.B
}

// RGBToHPLuv converts sRGB channels in [0, 1] to HPLuv hue (0-360),
// saturation (0-100 inside the pastel gamut) and lightness (0-100). Inputs
// are not validated.
func RGBToHPLuv(r, g, b float64) (h, s, l float64) {
	c := RGB{R: r, G: g, B: b}.ToHPLuv()
	return c.H, c.S, c.L
}
