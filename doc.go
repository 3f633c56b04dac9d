// Package hsluv implements the HSLuv and HPLuv color spaces.
//
// # Overview
//
// HSLuv is a human-friendly alternative to HSL built on CIE LUV, designed
// for the GoGPU ecosystem and usable anywhere colors are picked by hand or
// generated programmatically. Hue, saturation and lightness move in
// perceptually uniform steps, and saturation is normalized against the sRGB
// gamut: S = 100 is the most saturated displayable color at that exact hue
// and lightness, so every in-range triple names a real color. HPLuv is the
// pastel variant, normalizing against the largest chroma displayable at
// every hue, which keeps chroma visually equal across hues at the cost of a
// smaller reachable gamut.
//
// # Quick Start
//
//	import "github.com/gogpu/hsluv"
//
//	// Canonical float API
//	r, g, b := hsluv.HSLuvToRGB(12.18, 100, 53.24) // close to pure red
//	h, s, l := hsluv.RGBToHSLuv(1, 0, 0)
//
//	// Typed pipeline
//	c := hsluv.HSLuv{H: 250, S: 80, L: 60}.ToRGB()
//
// # Coordinate Spaces
//
// One struct type per coordinate space keeps conversions honest: RGB, XYZ,
// LUV, LCh, HSLuv and HPLuv each expose a To* method per pipeline edge, and
// composing them in the wrong order is a compile error. The full forward
// pipeline is HSLuv -> LCh -> LUV -> XYZ -> RGB.
//
// HSLuv and HPLuv also satisfy image/color.Color and come with color.Model
// values, so they drop into the standard image packages directly.
//
// # Ranges and Validation
//
// No function validates or clamps its inputs. Out-of-range inputs flow
// through the arithmetic and produce out-of-range or meaningless outputs;
// clamping happens only when a color is quantized through the color.Color
// interface.
//
// Based on the HSLuv reference implementation (https://www.hsluv.org)
// with adaptations for Go idioms.
package hsluv

// Version is the current version of the library.
const Version = "0.1.0"
