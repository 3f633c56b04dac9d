package hsluv

import (
	"math"
	"sort"
)

// ExtendMode defines how a gradient extends beyond its [0, 1] domain.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// HueMethod selects the arc hue travels along between two colors.
type HueMethod int

const (
	// HueShorter takes the shorter arc around the hue circle (default).
	HueShorter HueMethod = iota
	// HueLonger takes the longer arc.
	HueLonger
	// HueIncreasing travels with increasing angle, wrapping at 360.
	HueIncreasing
	// HueDecreasing travels with decreasing angle, wrapping at 0.
	HueDecreasing
)

// Stop is a color at a specific position in a gradient.
type Stop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  HSLuv   // Color at this position
}

// Gradient interpolates between color stops in HSLuv space, where equal
// offset steps read as equal steps to the eye. Interpolating the saturation
// channel keeps every in-between color inside the sRGB gamut, which blending
// in RGB or LCh does not guarantee.
type Gradient struct {
	stops  []Stop
	extend ExtendMode
	hue    HueMethod
}

// GradientOption configures a Gradient during creation.
type GradientOption func(*Gradient)

// WithExtendMode sets how the gradient extends beyond its [0, 1] domain.
func WithExtendMode(mode ExtendMode) GradientOption {
	return func(g *Gradient) {
		g.extend = mode
	}
}

// WithHueMethod sets the arc hue travels along between stops.
func WithHueMethod(method HueMethod) GradientOption {
	return func(g *Gradient) {
		g.hue = method
	}
}

// NewGradient builds a gradient from color stops. Stops are sorted by
// offset; the input slice is not modified.
func NewGradient(stops []Stop, opts ...GradientOption) *Gradient {
	g := &Gradient{stops: sortStops(stops)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// At returns the gradient color at offset t.
// Handles edge cases: no stops, a single stop, out-of-domain t.
func (g *Gradient) At(t float64) HSLuv {
	if len(g.stops) == 0 {
		return HSLuv{}
	}
	if len(g.stops) == 1 {
		return g.stops[0].Color
	}

	t = applyExtendMode(t, g.extend)

	// Find the two stops to interpolate between.
	idx := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Offset >= t
	})
	if idx == 0 {
		return g.stops[0].Color
	}
	if idx >= len(g.stops) {
		return g.stops[len(g.stops)-1].Color
	}

	s1 := g.stops[idx-1]
	s2 := g.stops[idx]

	// Coincident stops take the earlier color.
	if s2.Offset == s1.Offset {
		return s1.Color
	}

	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return lerp(s1.Color, s2.Color, localT, g.hue)
}

// Colors returns n colors sampled evenly across the gradient domain,
// endpoints included.
func (g *Gradient) Colors(n int) []HSLuv {
	if n <= 0 {
		return nil
	}
	out := make([]HSLuv, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = g.At(t)
	}
	return out
}

// Lerp interpolates between two colors in HSLuv space, taking the shorter
// hue arc.
func Lerp(a, b HSLuv, t float64) HSLuv {
	return lerp(a, b, t, HueShorter)
}

// Palette returns n evenly spaced hues at the given saturation and
// lightness, starting at hue 0. Neighboring entries are equally
// distinguishable regardless of where they fall on the hue circle.
func Palette(n int, s, l float64) []HSLuv {
	if n <= 0 {
		return nil
	}
	out := make([]HSLuv, n)
	for i := range out {
		out[i] = HSLuv{H: float64(i) * 360 / float64(n), S: s, L: l}
	}
	return out
}

func lerp(a, b HSLuv, t float64, method HueMethod) HSLuv {
	return HSLuv{
		H: lerpHue(a.H, b.H, t, method),
		S: a.S + t*(b.S-a.S),
		L: a.L + t*(b.L-a.L),
	}
}

// lerpHue interpolates a hue angle along the arc chosen by method, wrapping
// the result back into [0, 360).
func lerpHue(h1, h2, t float64, method HueMethod) float64 {
	d := h2 - h1
	switch method {
	case HueLonger:
		if 0 < d && d < 180 {
			h1 += 360
		} else if -180 < d && d <= 0 {
			h2 += 360
		}
	case HueIncreasing:
		if h2 < h1 {
			h2 += 360
		}
	case HueDecreasing:
		if h1 < h2 {
			h1 += 360
		}
	default: // HueShorter
		if d > 180 {
			h1 += 360
		} else if d < -180 {
			h2 += 360
		}
	}

	h := math.Mod(h1+t*(h2-h1), 360)
	if h < 0 {
		h += 360
	}
	return h
}

// sortStops returns the stops sorted by offset, leaving the input unchanged.
func sortStops(stops []Stop) []Stop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]Stop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
