package hsluv

import "math"

// sRGB working space: the D65 white point and the exact XYZ <-> linear sRGB
// matrices derived from the sRGB primary chromaticities (0.64, 0.33),
// (0.30, 0.60), (0.15, 0.06) and white (0.3127, 0.3290). The matrices are
// kept at full double precision; rounding them shifts the gamut boundary
// enough to push saturation-100 colors out of range.

// m maps CIE XYZ to linear sRGB, one row per output channel.
var m = [3][3]float64{
	{3.2409699419045214, -1.5373831775700935, -0.49861076029300328},
	{-0.96924363628087983, 1.8759675015077207, 0.041555057407175613},
	{0.055630079696993609, -0.20397695888897657, 1.0569715142428786},
}

// mInv maps linear sRGB to CIE XYZ.
var mInv = [3][3]float64{
	{0.41239079926595948, 0.35758433938387796, 0.18048078840183429},
	{0.21263900587151036, 0.71516867876775593, 0.072192315360733715},
	{0.019330818715591851, 0.11919477979462599, 0.95053215224966058},
}

const (
	// refU and refV locate the D65 white point in the u'v' chromaticity
	// plane.
	refU = 0.19783000664283681
	refV = 0.468319994938791

	// kappa (24389/27) and epsilon (216/24389) split the CIE lightness
	// curve into its linear and cubic regions.
	kappa   = 903.2962962962963
	epsilon = 0.0088564516790356308
)

// RGB is a gamma-encoded sRGB color with channels nominally in [0, 1].
// Channels outside that range describe out-of-gamut colors and pass through
// the conversions unchecked.
type RGB struct {
	R, G, B float64
}

// XYZ is a CIE 1931 XYZ color relative to the D65 illuminant, scaled so the
// luminance Y of the reference white is 1.
type XYZ struct {
	X, Y, Z float64
}

// dot applies one matrix row to a column vector.
func dot(row, v [3]float64) float64 {
	return row[0]*v[0] + row[1]*v[1] + row[2]*v[2]
}

// toLinear decodes a gamma-encoded sRGB channel to linear light.
func toLinear(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// fromLinear encodes a linear-light channel as gamma-encoded sRGB.
// The decode and encode cutoffs are the published sRGB values; they are not
// exact algebraic inverses of each other and must stay as written.
func fromLinear(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// ToXYZ converts gamma-encoded sRGB to CIE XYZ.
func (c RGB) ToXYZ() XYZ {
	lin := [3]float64{toLinear(c.R), toLinear(c.G), toLinear(c.B)}
	return XYZ{
		X: dot(mInv[0], lin),
		Y: dot(mInv[1], lin),
		Z: dot(mInv[2], lin),
	}
}

// ToRGB converts CIE XYZ to gamma-encoded sRGB.
func (c XYZ) ToRGB() RGB {
	v := [3]float64{c.X, c.Y, c.Z}
	return RGB{
		R: fromLinear(dot(m[0], v)),
		G: fromLinear(dot(m[1], v)),
		B: fromLinear(dot(m[2], v)),
	}
}
