package hsluv

import "image/color"

// Adapters between the coordinate types and the standard image/color
// interfaces. HSLuv, HPLuv and RGB values carry no alpha and are treated as
// opaque; channels are clamped to [0, 1] only at the quantization edge, the
// conversions themselves stay unclamped.

// HSLuvModel converts any color.Color to HSLuv.
var HSLuvModel color.Model = color.ModelFunc(hsluvModel)

// HPLuvModel converts any color.Color to HPLuv.
var HPLuvModel color.Model = color.ModelFunc(hpluvModel)

func hsluvModel(c color.Color) color.Color {
	if _, ok := c.(HSLuv); ok {
		return c
	}
	return HSLuvFromColor(c)
}

func hpluvModel(c color.Color) color.Color {
	if _, ok := c.(HPLuv); ok {
		return c
	}
	return HPLuvFromColor(c)
}

// HSLuvFromColor converts a standard color.Color to HSLuv, ignoring alpha.
func HSLuvFromColor(c color.Color) HSLuv {
	return rgbFromColor(c).ToHSLuv()
}

// HPLuvFromColor converts a standard color.Color to HPLuv, ignoring alpha.
func HPLuvFromColor(c color.Color) HPLuv {
	return rgbFromColor(c).ToHPLuv()
}

// rgbFromColor recovers straight-alpha float channels from a color.Color,
// which reports premultiplied 16-bit values.
func rgbFromColor(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	return RGB{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint32(clamp01(c.R) * 65535),
		uint32(clamp01(c.G) * 65535),
		uint32(clamp01(c.B) * 65535),
		65535
}

// RGBA implements the color.Color interface.
func (c HSLuv) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

// RGBA implements the color.Color interface.
func (c HPLuv) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}
