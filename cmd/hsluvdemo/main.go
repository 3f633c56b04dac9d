// Command hsluvdemo renders a swatch sheet showing off the hsluv library.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/hsluv"
)

const labelHeight = 14

func main() {
	var (
		width  = flag.Int("width", 720, "image width")
		rowH   = flag.Int("row", 48, "swatch row height")
		l      = flag.Float64("l", 60, "lightness for the hue sweeps")
		s      = flag.Float64("s", 90, "saturation for the hue sweeps")
		output = flag.String("output", "hsluv.png", "output file")
	)
	flag.Parse()

	rows := []struct {
		label string
		color func(t float64) hsluv.HSLuv
	}{
		{
			label: "HSLuv hue sweep",
			color: func(t float64) hsluv.HSLuv {
				return hsluv.HSLuv{H: t * 360, S: *s, L: *l}
			},
		},
		{
			label: "saturation ramp",
			color: func(t float64) hsluv.HSLuv {
				return hsluv.HSLuv{H: 250, S: t * 100, L: *l}
			},
		},
		{
			label: "lightness ramp",
			color: func(t float64) hsluv.HSLuv {
				return hsluv.HSLuv{H: 250, S: *s, L: t * 100}
			},
		},
		{
			label: "gradient, shorter hue arc",
			color: gradientRow(hsluv.HueShorter, *s, *l),
		},
		{
			label: "gradient, longer hue arc",
			color: gradientRow(hsluv.HueLonger, *s, *l),
		},
	}

	height := len(rows)*(*rowH+labelHeight) + *rowH + labelHeight
	img := image.NewRGBA(image.Rect(0, 0, *width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	y := 0
	for _, row := range rows {
		drawLabel(img, 4, y+labelHeight-3, row.label)
		y += labelHeight
		for x := 0; x < *width; x++ {
			t := float64(x) / float64(*width-1)
			c := row.color(t)
			for dy := 0; dy < *rowH; dy++ {
				img.Set(x, y+dy, c)
			}
		}
		y += *rowH
	}

	// The HPLuv sweep goes last so the pastel gamut reads against the
	// saturated HSLuv sweep at the top.
	drawLabel(img, 4, y+labelHeight-3, "HPLuv hue sweep")
	y += labelHeight
	for x := 0; x < *width; x++ {
		t := float64(x) / float64(*width-1)
		c := hsluv.HPLuv{H: t * 360, S: *s, L: *l}
		for dy := 0; dy < *rowH; dy++ {
			img.Set(x, y+dy, c)
		}
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Swatch sheet saved to %s (%dx%d)\n", *output, *width, height)
}

// gradientRow builds a row sampler from a two-stop perceptual gradient.
func gradientRow(method hsluv.HueMethod, s, l float64) func(t float64) hsluv.HSLuv {
	g := hsluv.NewGradient([]hsluv.Stop{
		{Offset: 0, Color: hsluv.HSLuv{H: 30, S: s, L: l}},
		{Offset: 1, Color: hsluv.HSLuv{H: 300, S: s, L: l}},
	}, hsluv.WithHueMethod(method))
	return g.At
}

func drawLabel(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
