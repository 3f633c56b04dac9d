package hsluv

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares float64 struct fields within an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// --- Lightness Curve Tests ---

func TestLightnessCurve(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"black", 0, 0},
		{"white", 1, 100},
		{"branch point", epsilon, 8}, // epsilon * kappa = 216/24389 * 24389/27
		{"deep shadow", 0.001, 0.001 * kappa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := yToL(tt.y)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("yToL(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestLightnessRoundTrip(t *testing.T) {
	for l := 0.0; l <= 100; l += 0.25 {
		if got := yToL(lToY(l)); math.Abs(got-l) > 1e-9 {
			t.Errorf("yToL(lToY(%v)) = %v", l, got)
		}
	}

	// Straddle the branch point from the luminance side too.
	for _, y := range []float64{0, 1e-7, 1e-4, 0.0088, epsilon, 0.0089, 0.05, 0.18, 0.5, 1} {
		if got := lToY(yToL(y)); math.Abs(got-y) > 1e-12 {
			t.Errorf("lToY(yToL(%v)) = %v", y, got)
		}
	}
}

// --- XYZ <-> LUV Tests ---

func TestXYZToLUV_White(t *testing.T) {
	got := RGB{R: 1, G: 1, B: 1}.ToXYZ().ToLUV()
	want := LUV{L: 100}

	if diff := cmp.Diff(want, got, approx(1e-9)); diff != "" {
		t.Errorf("white mismatch (-want +got):\n%s", diff)
	}
}

func TestLUVToXYZ_White(t *testing.T) {
	got := LUV{L: 100}.ToXYZ()
	want := RGB{R: 1, G: 1, B: 1}.ToXYZ()

	if diff := cmp.Diff(want, got, approx(1e-9)); diff != "" {
		t.Errorf("white mismatch (-want +got):\n%s", diff)
	}
}

func TestXYZToLUV_BlackGuard(t *testing.T) {
	// All-zero XYZ makes the chromaticity 0/0; the guard must keep the
	// result finite and zero.
	got := XYZ{}.ToLUV()
	want := LUV{}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("black mismatch (-want +got):\n%s", diff)
	}
	if math.IsNaN(got.U) || math.IsNaN(got.V) {
		t.Errorf("black leaked NaN: %+v", got)
	}
}

func TestLUVToXYZ_BlackGuard(t *testing.T) {
	// Chroma without lightness is meaningless; it must not divide by zero.
	got := LUV{L: 0, U: 5, V: -3}.ToXYZ()
	want := XYZ{}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("black mismatch (-want +got):\n%s", diff)
	}
}

func TestXYZLUVRoundTrip(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 0.75, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				xyz := RGB{R: r, G: g, B: b}.ToXYZ()
				got := xyz.ToLUV().ToXYZ()
				if math.Abs(got.X-xyz.X) > 1e-10 ||
					math.Abs(got.Y-xyz.Y) > 1e-10 ||
					math.Abs(got.Z-xyz.Z) > 1e-10 {
					t.Errorf("round trip %+v = %+v", xyz, got)
				}
			}
		}
	}
}

// --- LUV <-> LCh Tests ---

func TestLUVToLCh_Quadrants(t *testing.T) {
	tests := []struct {
		name string
		in   LUV
		want LCh
	}{
		{"first quadrant", LUV{L: 50, U: 3, V: 4}, LCh{L: 50, C: 5, H: 53.13010235415598}},
		{"second quadrant", LUV{L: 50, U: -3, V: 4}, LCh{L: 50, C: 5, H: 126.86989764584402}},
		{"third quadrant wraps", LUV{L: 50, U: -3, V: -4}, LCh{L: 50, C: 5, H: 233.13010235415598}},
		{"fourth quadrant wraps", LUV{L: 50, U: 3, V: -4}, LCh{L: 50, C: 5, H: 306.86989764584402}},
		{"achromatic pins hue", LUV{L: 50}, LCh{L: 50}},
		{"near-achromatic pins hue", LUV{L: 50, U: 1e-9, V: -1e-9}, LCh{L: 50, C: math.Sqrt2 * 1e-9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToLCh()
			if diff := cmp.Diff(tt.want, got, approx(1e-9)); diff != "" {
				t.Errorf("%+v mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestLChToLUV(t *testing.T) {
	tests := []struct {
		name string
		in   LCh
		want LUV
	}{
		{"east", LCh{L: 50, C: 5, H: 0}, LUV{L: 50, U: 5}},
		{"north", LCh{L: 50, C: 5, H: 90}, LUV{L: 50, V: 5}},
		{"west", LCh{L: 50, C: 5, H: 180}, LUV{L: 50, U: -5}},
		{"three-four-five", LCh{L: 50, C: 5, H: 53.13010235415598}, LUV{L: 50, U: 3, V: 4}},
		{"zero chroma", LCh{L: 50, C: 0, H: 123}, LUV{L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToLUV()
			if diff := cmp.Diff(tt.want, got, approx(1e-9)); diff != "" {
				t.Errorf("%+v mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestLUVLChRoundTrip(t *testing.T) {
	for _, l := range []float64{5, 35, 65, 95} {
		for _, u := range []float64{-80, -5, 0, 5, 80} {
			for _, v := range []float64{-80, -5, 0, 5, 80} {
				in := LUV{L: l, U: u, V: v}
				got := in.ToLCh().ToLUV()
				if diff := cmp.Diff(in, got, approx(1e-9)); diff != "" {
					t.Errorf("round trip %+v (-want +got):\n%s", in, diff)
				}
			}
		}
	}
}
