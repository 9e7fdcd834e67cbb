package filters

import (
	"testing"

	"github.com/soypat/pixgrid"
)

func TestBrightnessFloorDivision(t *testing.T) {
	cases := []struct {
		p    pixgrid.Pixel
		want int
	}{
		{pixgrid.Pixel{}, 0},
		{pixgrid.Gray(255), 255},
		{pixgrid.Pixel{R: 1, G: 0, B: 0}, 0},   // 1/3 floors to 0
		{pixgrid.Pixel{R: 2, G: 0, B: 0}, 0},   // 2/3 floors to 0
		{pixgrid.Pixel{R: 255, G: 0, B: 0}, 85},
		{pixgrid.Pixel{R: 128, G: 128, B: 129}, 128},
	}
	for _, tc := range cases {
		if got := brightness(tc.p); got != tc.want {
			t.Errorf("brightness(%+v) = %d, want %d", tc.p, got, tc.want)
		}
	}
}

func TestLuminance601(t *testing.T) {
	if got := luminance601(pixgrid.Gray(100)); got != 100 {
		t.Errorf("luminance of neutral gray: got %v, want 100", got)
	}
	got := luminance601(pixgrid.Pixel{R: 255})
	want := 0.299 * 255
	if got != want {
		t.Errorf("luminance of pure red: got %v, want %v", got, want)
	}
}

func TestToChannel(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{254.999, 254}, // truncation toward zero, never rounding up
		{255, 255},
		{275.4, 255}, // sepia worst case clamps
		{-3.7, 0},
	}
	for _, tc := range cases {
		if got := toChannel(tc.in); got != tc.want {
			t.Errorf("toChannel(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestQuadrantMidpoint(t *testing.T) {
	cases := []struct {
		in   uint8
		want uint8
	}{
		{10, 31},
		{63, 31},
		{64, 95}, // boundary falls into the higher bucket
		{127, 95},
		{128, 159},
		{142, 159},
		{191, 159},
		{192, 223},
		{230, 223},
		{255, 223},
	}
	for _, tc := range cases {
		if got := quadrantMidpoint(tc.in); got != tc.want {
			t.Errorf("quadrantMidpoint(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
