package hsluv

// HSLuv is a color in the HSLuv space: H is the hue angle in degrees in
// [0, 360), S is saturation in [0, 100] and L is lightness in [0, 100].
//
// Saturation measures chroma as a fraction of the largest chroma the sRGB
// gamut admits at this exact hue and lightness, so S = 100 is always a
// displayable, maximally saturated color. The trade-off is that equal
// saturation does not mean equal chroma across hues; see HPLuv for the
// variant that keeps chroma comparable instead.
type HSLuv struct {
	H, S, L float64
}

// ToLCh converts HSLuv to cylindrical LUV.
func (c HSLuv) ToLCh() LCh {
	h := c.H

	// White and black: disambiguate chroma.
	var chroma float64
	if !(c.L > 99.9999999 || c.L < 1e-8) {
		chroma = MaxChroma(c.L, h) / 100 * c.S
	}

	// Grays: disambiguate hue.
	if c.S < 1e-8 {
		h = 0
	}
	return LCh{L: c.L, C: chroma, H: h}
}

// ToHSLuv converts cylindrical LUV to HSLuv.
func (c LCh) ToHSLuv() HSLuv {
	h := c.H

	// White and black: disambiguate saturation.
	var s float64
	if !(c.L > 99.9999999 || c.L < 1e-8) {
		s = c.C / MaxChroma(c.L, h) * 100
	}

	// Grays: disambiguate hue.
	if c.C < 1e-8 {
		h = 0
	}
	return HSLuv{H: h, S: s, L: c.L}
}

// ToRGB converts HSLuv to gamma-encoded sRGB. Inputs inside the documented
// ranges always produce channels in [0, 1].
func (c HSLuv) ToRGB() RGB {
	return c.ToLCh().ToLUV().ToXYZ().ToRGB()
}

// ToHSLuv converts gamma-encoded sRGB to HSLuv.
func (c RGB) ToHSLuv() HSLuv {
	return c.ToXYZ().ToLUV().ToLCh().ToHSLuv()
}

// HSLuvToRGB converts hue (0-360), saturation (0-100) and lightness (0-100)
// to sRGB channels in [0, 1]. Inputs are not validated; out-of-range values
// flow through the arithmetic unchecked.
func HSLuvToRGB(h, s, l float64) (r, g, b float64) {
	c := HSLuv{H: h, S: s, L: l}.ToRGB()
	return c.R, c.G, c.B
}

// RGBToHSLuv converts sRGB channels in [0, 1] to HSLuv hue (0-360),
// saturation (0-100) and lightness (0-100). Inputs are not validated.
func RGBToHSLuv(r, g, b float64) (h, s, l float64) {
	c := RGB{R: r, G: g, B: b}.ToHSLuv()
	return c.H, c.S, c.L
}
