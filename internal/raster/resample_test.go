package raster

import (
	"errors"
	"testing"
)

func TestResize_SameWidthIsNoop(t *testing.T) {
	b := uniformBuffer(t, 4, 4, 3, 77)

	out, err := b.Resize(4)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if out != b {
		t.Error("Resize to current width should return the buffer unchanged")
	}
}

func TestResize_DispatchesToShrinkAndExpand(t *testing.T) {
	b := uniformBuffer(t, 4, 4, 3, 77)

	smaller, err := b.Resize(2)
	if err != nil {
		t.Fatalf("Resize(2) failed: %v", err)
	}
	if smaller.Width() != 2 {
		t.Errorf("Resize(2) width: got %d, want 2", smaller.Width())
	}

	larger, err := b.Resize(8)
	if err != nil {
		t.Fatalf("Resize(8) failed: %v", err)
	}
	if larger.Width() != 8 {
		t.Errorf("Resize(8) width: got %d, want 8", larger.Width())
	}
}

func TestShrink_UniformWhite(t *testing.T) {
	b := uniformBuffer(t, 4, 4, 3, 255)

	out, err := b.Resize(2)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if out.Width() != 2 || out.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 2x2", out.Width(), out.Height())
	}
	for y := 0; y < out.Height(); y++ {
		for _, v := range out.Row(y) {
			if v != 255 {
				t.Fatalf("row %d: got sample %d, want 255", y, v)
			}
		}
	}
}

func TestShrink_AccumulatorValues(t *testing.T) {
	// Single row, 1 channel: columns 0,1 pool into output 0 and columns
	// 2,3 into output 1 via the streaming accumulators.
	b := grayBuffer(t, [][]uint8{{10, 20, 30, 40}})

	out, err := b.Shrink(2)
	if err != nil {
		t.Fatalf("Shrink failed: %v", err)
	}
	if out.Width() != 2 || out.Height() != 1 {
		t.Fatalf("dimensions: got %dx%d, want 2x1", out.Width(), out.Height())
	}
	if out.Row(0)[0] != 15 || out.Row(0)[1] != 35 {
		t.Errorf("got %v, want [15 35]", out.Row(0))
	}
}

func TestShrink_DoesNotAliasSource(t *testing.T) {
	b := uniformBuffer(t, 4, 4, 1, 100)

	out, err := b.Shrink(2)
	if err != nil {
		t.Fatalf("Shrink failed: %v", err)
	}
	out.Row(0)[0] = 0
	if b.Row(0)[0] != 100 {
		t.Error("shrunk buffer aliases source rows")
	}
}

func TestShrink_Invalid(t *testing.T) {
	b := uniformBuffer(t, 4, 4, 1, 0)

	for _, w := range []int{0, -3} {
		if _, err := b.Shrink(w); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Shrink(%d): got %v, want ErrOutOfRange", w, err)
		}
	}
}

func TestShrink_NoopWhenNotSmaller(t *testing.T) {
	b := uniformBuffer(t, 4, 4, 1, 0)

	for _, w := range []int{4, 5, 100} {
		out, err := b.Shrink(w)
		if err != nil {
			t.Fatalf("Shrink(%d) failed: %v", w, err)
		}
		if out != b {
			t.Errorf("Shrink(%d) should be a no-op", w)
		}
	}
}

func TestExpand_UniformNearestNeighbor(t *testing.T) {
	b := uniformBuffer(t, 2, 2, 3, 42)

	out, err := b.Expand(4)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x4", out.Width(), out.Height())
	}
	for y := 0; y < 4; y++ {
		for _, v := range out.Row(y) {
			if v != 42 {
				t.Fatalf("row %d: got sample %d, want 42", y, v)
			}
		}
	}
}

func TestExpand_CopiesSourcePixels(t *testing.T) {
	b := grayBuffer(t, [][]uint8{
		{1, 2},
		{3, 4},
	})

	out, err := b.Expand(4)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	want := [][]uint8{
		{1, 1, 2, 2},
		{1, 1, 2, 2},
		{3, 3, 4, 4},
		{3, 3, 4, 4},
	}
	for y := range want {
		for x := range want[y] {
			if out.Row(y)[x] != want[y][x] {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, out.Row(y)[x], want[y][x])
			}
		}
	}
}

func TestExpand_NoopWhenNotLarger(t *testing.T) {
	b := uniformBuffer(t, 4, 4, 1, 0)

	for _, w := range []int{4, 3, 1} {
		out, err := b.Expand(w)
		if err != nil {
			t.Fatalf("Expand(%d) failed: %v", w, err)
		}
		if out != b {
			t.Errorf("Expand(%d) should be a no-op", w)
		}
	}
}

func TestShrinkThenExpand_IsLossyButDimensionallyConsistent(t *testing.T) {
	b := uniformBuffer(t, 8, 8, 3, 0)
	for y := 0; y < 8; y++ {
		row := b.Row(y)
		for i := range row {
			row[i] = uint8((y*31 + i*17) % 251)
		}
	}

	small, err := b.Shrink(4)
	if err != nil {
		t.Fatalf("Shrink failed: %v", err)
	}
	if small.Width() != 4 || small.Height() != 4 {
		t.Fatalf("shrunk dimensions: got %dx%d, want 4x4", small.Width(), small.Height())
	}

	back, err := small.Expand(8)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	// Round-tripping restores the shape, not the pixels.
	if back.Width() != 8 || back.Height() != 8 {
		t.Errorf("round-trip dimensions: got %dx%d, want 8x8", back.Width(), back.Height())
	}
}
