package hsluv

import "math"

// CIE L*u*v* and its cylindrical form. Formulas follow the CIE definitions
// with the reference white luminance Yn equal to 1, which drops the Yn terms.

// LUV is a CIE L*u*v* color: L* is lightness in [0, 100], u* and v* are the
// chroma axes, zero on the gray axis.
type LUV struct {
	L, U, V float64
}

// LCh is cylindrical LUV: C is the chroma sqrt(u*u + v*v) and H is the hue
// angle in degrees in [0, 360).
type LCh struct {
	L, C, H float64
}

// yToL converts relative luminance to CIE lightness.
func yToL(y float64) float64 {
	if y <= epsilon {
		return y * kappa
	}
	return 116*math.Pow(y, 1.0/3.0) - 16
}

// lToY inverts yToL. The branch point sits at L = 8, the image of epsilon.
func lToY(l float64) float64 {
	if l <= 8 {
		return l / kappa
	}
	return math.Pow((l+16)/116, 3)
}

// ToLUV converts CIE XYZ to CIE LUV.
func (c XYZ) ToLUV() LUV {
	varU := (4 * c.X) / (c.X + 15*c.Y + 3*c.Z)
	varV := (9 * c.Y) / (c.X + 15*c.Y + 3*c.Z)
	l := yToL(c.Y)

	// Black: the chromaticity above is 0/0 and must not leak out.
	if l < 1e-8 {
		return LUV{L: l}
	}
	return LUV{
		L: l,
		U: 13 * l * (varU - refU),
		V: 13 * l * (varV - refV),
	}
}

// ToXYZ converts CIE LUV back to CIE XYZ.
func (c LUV) ToXYZ() XYZ {
	// Black would divide by zero below.
	if c.L <= 1e-8 {
		return XYZ{}
	}

	varU := c.U/(13*c.L) + refU
	varV := c.V/(13*c.L) + refV
	y := lToY(c.L)
	x := -(9 * y * varU) / ((varU-4)*varV - varU*varV)
	z := (9*y - 15*varV*y - varV*x) / (3 * varV)
	return XYZ{X: x, Y: y, Z: z}
}

// ToLCh converts LUV to its cylindrical form.
func (c LUV) ToLCh() LCh {
	chroma := math.Sqrt(c.U*c.U + c.V*c.V)

	// Grays: hue is undefined, pin it to 0.
	var h float64
	if chroma >= 1e-8 {
		h = math.Atan2(c.V, c.U) * (180 / math.Pi)
		if h < 0 {
			h += 360
		}
	}
	return LCh{L: c.L, C: chroma, H: h}
}

// ToLUV converts cylindrical LCh back to LUV.
func (c LCh) ToLUV() LUV {
	hrad := c.H * (math.Pi / 180)
	return LUV{
		L: c.L,
		U: math.Cos(hrad) * c.C,
		V: math.Sin(hrad) * c.C,
	}
}
