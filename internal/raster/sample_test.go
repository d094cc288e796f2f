package raster

import (
	"errors"
	"testing"
)

func TestPixel(t *testing.T) {
	b, err := FromRows(3, [][]uint8{
		{10, 20, 30, 40, 50, 60},
		{70, 80, 90, 100, 110, 120},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	tests := []struct {
		x, y int
		want []uint8
	}{
		{0, 0, []uint8{10, 20, 30}},
		{1, 0, []uint8{40, 50, 60}},
		{0, 1, []uint8{70, 80, 90}},
		{1, 1, []uint8{100, 110, 120}},
	}

	for _, tt := range tests {
		px, err := b.Pixel(tt.x, tt.y)
		if err != nil {
			t.Fatalf("Pixel(%d,%d) failed: %v", tt.x, tt.y, err)
		}
		if len(px) != b.Channels() {
			t.Fatalf("Pixel(%d,%d): got %d samples, want %d", tt.x, tt.y, len(px), b.Channels())
		}
		for n := range px {
			if px[n] != tt.want[n] {
				t.Errorf("Pixel(%d,%d): got %v, want %v", tt.x, tt.y, px, tt.want)
				break
			}
		}
	}
}

func TestPixel_OutOfRange(t *testing.T) {
	b := uniformBuffer(t, 4, 3, 3, 0)

	tests := []struct {
		name string
		x, y int
	}{
		{"x too large", 4, 0},
		{"y too large", 0, 3},
		{"both too large", 10, 10},
		{"negative x", -1, 0},
		{"negative y", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Pixel(tt.x, tt.y); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Pixel(%d,%d): got %v, want ErrOutOfRange", tt.x, tt.y, err)
			}
		})
	}
}

func TestLuminance_Grayscale(t *testing.T) {
	b := grayBuffer(t, [][]uint8{{0, 42, 255}})

	for x, want := range []uint8{0, 42, 255} {
		got, err := b.Luminance(x, 0)
		if err != nil {
			t.Fatalf("Luminance(%d,0) failed: %v", x, err)
		}
		if got != want {
			t.Errorf("Luminance(%d,0): got %d, want %d", x, got, want)
		}
	}
}

func TestLuminance_RGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"gray passthrough", 93, 93, 93, 93},
		// (2*100 + 3*50 + 10) / 6 = 360/6
		{"weighted", 100, 50, 10, 60},
		// (2*255 + 3*0 + 0) / 6 = 85
		{"pure red", 255, 0, 0, 85},
		// (0 + 3*255 + 0) / 6 = 127 (floor)
		{"pure green", 0, 255, 0, 127},
		// (0 + 0 + 255) / 6 = 42 (floor)
		{"pure blue", 0, 0, 255, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := FromRows(3, [][]uint8{{tt.r, tt.g, tt.b}})
			if err != nil {
				t.Fatalf("FromRows failed: %v", err)
			}
			got, err := buf.Luminance(0, 0)
			if err != nil {
				t.Fatalf("Luminance failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Luminance(%d,%d,%d): got %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestLuminance_OutOfRange(t *testing.T) {
	b := uniformBuffer(t, 2, 2, 3, 0)
	if _, err := b.Luminance(2, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}

func TestAverage_Uniform(t *testing.T) {
	b := uniformBuffer(t, 8, 8, 3, 137)

	avg, err := b.Average(2, 2, 4)
	if err != nil {
		t.Fatalf("Average failed: %v", err)
	}
	for n, v := range avg {
		if v != 137 {
			t.Errorf("channel %d: got %d, want 137", n, v)
		}
	}
}

func TestAverage_FloorDivision(t *testing.T) {
	// Top-left 2x2 block sums to 350; 350/4 = 87 floor-truncated.
	b := grayBuffer(t, [][]uint8{
		{200, 50, 200},
		{50, 50, 50},
		{200, 50, 200},
	})

	avg, err := b.Average(0, 0, 2)
	if err != nil {
		t.Fatalf("Average failed: %v", err)
	}
	if len(avg) != 1 || avg[0] != 87 {
		t.Errorf("got %v, want [87]", avg)
	}
}

func TestAverage_ClampedWindow(t *testing.T) {
	// Requesting a window that overruns the edge silently relocates it so
	// it stays inside the buffer: origin (2,2) for a 2x2 box on 3x3 data
	// becomes (1,1).
	b := grayBuffer(t, [][]uint8{
		{0, 0, 0},
		{0, 100, 200},
		{0, 100, 200},
	})

	avg, err := b.Average(2, 2, 2)
	if err != nil {
		t.Fatalf("Average failed: %v", err)
	}
	if avg[0] != 150 {
		t.Errorf("clamped window average: got %d, want 150", avg[0])
	}
}

func TestAverage_BoxTooLarge(t *testing.T) {
	b := uniformBuffer(t, 4, 3, 1, 0)

	tests := []struct {
		name string
		box  int
	}{
		{"wider than buffer", 5},
		{"taller than buffer", 4},
		{"zero box", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Average(0, 0, tt.box); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("box %d: got %v, want ErrOutOfRange", tt.box, err)
			}
		})
	}
}
