package album

import (
	"image"
	"math"
)

// Canvas dimensions are fixed; the grid adapts to the item count, not the
// other way around.
const (
	CanvasWidth  = 1200
	CanvasHeight = 1800

	cellMargin    = 24
	framePadding  = 12
	captionHeight = 56
)

// Layout assigns one cell rectangle per item on the fixed canvas, row-major
// in item order. Columns are chosen so the grid's shape approximately matches
// the canvas aspect ratio. The result is a pure function of n: identical
// inputs always yield identical cells.
func Layout(n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}

	cols := int(math.Ceil(math.Sqrt(float64(n) * CanvasWidth / CanvasHeight)))
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols

	cellW := (CanvasWidth - cellMargin*(cols+1)) / cols
	cellH := (CanvasHeight - cellMargin*(rows+1)) / rows

	cells := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		col := i % cols
		row := i / cols
		x0 := cellMargin + col*(cellW+cellMargin)
		y0 := cellMargin + row*(cellH+cellMargin)
		cells = append(cells, image.Rect(x0, y0, x0+cellW, y0+cellH))
	}
	return cells
}

// photoArea is the region of a cell that receives the cropped image; the
// remainder is the frame and the caption strip.
func photoArea(cell image.Rectangle) image.Rectangle {
	return image.Rect(
		cell.Min.X+framePadding,
		cell.Min.Y+framePadding,
		cell.Max.X-framePadding,
		cell.Max.Y-captionHeight,
	)
}

// captionArea is the strip below the photo reserved for the era label.
func captionArea(cell image.Rectangle) image.Rectangle {
	return image.Rect(cell.Min.X, cell.Max.Y-captionHeight, cell.Max.X, cell.Max.Y)
}

// coverCrop selects the centered sub-rectangle of src whose aspect ratio
// matches dst, so scaling preserves aspect and overflow is cropped instead of
// letterboxed.
func coverCrop(src, dst image.Rectangle) image.Rectangle {
	srcW, srcH := src.Dx(), src.Dy()
	dstW, dstH := dst.Dx(), dst.Dy()
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return src
	}

	// Compare aspect ratios without floating point: srcW/srcH vs dstW/dstH.
	if srcW*dstH > dstW*srcH {
		// Source is wider than the cell; crop the sides.
		cropW := dstW * srcH / dstH
		x0 := src.Min.X + (srcW-cropW)/2
		return image.Rect(x0, src.Min.Y, x0+cropW, src.Max.Y)
	}
	// Source is taller than the cell; crop top and bottom.
	cropH := dstH * srcW / dstW
	y0 := src.Min.Y + (srcH-cropH)/2
	return image.Rect(src.Min.X, y0, src.Max.X, y0+cropH)
}
