package album

import (
	"image"
	"testing"
)

func TestLayoutDeterministic(t *testing.T) {
	first := Layout(6)
	second := Layout(6)
	if len(first) != 6 || len(second) != 6 {
		t.Fatalf("Layout(6) returned %d and %d cells", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cell %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestLayoutCellsDisjointAndOnCanvas(t *testing.T) {
	for _, n := range []int{1, 2, 4, 6, 9} {
		cells := Layout(n)
		if len(cells) != n {
			t.Fatalf("Layout(%d) returned %d cells", n, len(cells))
		}
		canvas := image.Rect(0, 0, CanvasWidth, CanvasHeight)
		for i, cell := range cells {
			if cell.Empty() {
				t.Fatalf("Layout(%d): cell %d is empty", n, i)
			}
			if !cell.In(canvas) {
				t.Fatalf("Layout(%d): cell %d %v escapes the canvas", n, i, cell)
			}
			for j := i + 1; j < len(cells); j++ {
				if cell.Overlaps(cells[j]) {
					t.Fatalf("Layout(%d): cells %d and %d overlap", n, i, j)
				}
			}
		}
	}
}

func TestLayoutSixIsTwoByThree(t *testing.T) {
	cells := Layout(6)
	// The 1200x1800 canvas balances six cells as two columns by three rows.
	if cells[0].Min.Y != cells[1].Min.Y {
		t.Fatal("cells 0 and 1 should share a row")
	}
	if cells[1].Min.Y == cells[2].Min.Y {
		t.Fatal("cell 2 should start a new row")
	}
}

func TestCoverCropMatchesTargetAspect(t *testing.T) {
	src := image.Rect(0, 0, 800, 600)
	dst := image.Rect(0, 0, 500, 700)

	crop := coverCrop(src, dst)
	if !crop.In(src) {
		t.Fatalf("crop %v escapes the source bounds", crop)
	}
	// Width-to-height ratio of the crop must match the destination's.
	if crop.Dx()*dst.Dy() != dst.Dx()*crop.Dy() {
		t.Fatalf("crop %v does not match target aspect %dx%d", crop, dst.Dx(), dst.Dy())
	}
}

func TestCoverCropWideSourceCropsSides(t *testing.T) {
	src := image.Rect(0, 0, 1600, 400)
	dst := image.Rect(0, 0, 400, 400)

	crop := coverCrop(src, dst)
	if crop.Dy() != src.Dy() {
		t.Fatalf("wide source should keep full height, got %v", crop)
	}
	if crop.Min.X == src.Min.X || crop.Max.X == src.Max.X {
		t.Fatalf("crop should be centered, got %v", crop)
	}
}
