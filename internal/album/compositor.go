// Package album assembles the set of restyled era images into one composite
// album page.
package album

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"retrobooth/internal/domain"
	"retrobooth/internal/infra"
)

// jpegQuality is fixed so identical inputs always encode to identical bytes.
const jpegQuality = 90

var (
	canvasBackground = color.RGBA{R: 0xf5, G: 0xf0, B: 0xe6, A: 0xff}
	cellBackground   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	captionInk       = color.RGBA{R: 0x33, G: 0x2e, B: 0x28, A: 0xff}
)

// Compositor lays out a complete set of era images on the fixed canvas and
// encodes the result as a single JPEG.
type Compositor struct {
	logger infra.Logger
}

func NewCompositor(logger infra.Logger) *Compositor {
	return &Compositor{logger: logger}
}

// Compose validates that every required era has an image, draws each one into
// its deterministic grid cell (cover-cropped, captioned with the era label)
// and returns the encoded canvas. It never returns a partial album: a missing
// era fails with ErrIncompleteSet before any drawing, and a single undecodable
// image aborts the whole composition with ErrAssetLoad naming the era.
//
// The output is byte-identical for identical inputs.
func (c *Compositor) Compose(ctx context.Context, images map[domain.Era][]byte, required []domain.Era) ([]byte, error) {
	var missing []domain.Era
	for _, era := range required {
		if len(images[era]) == 0 {
			missing = append(missing, era)
		}
	}
	if len(missing) > 0 {
		return nil, domain.IncompleteSetError(missing)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	xdraw.Draw(canvas, canvas.Bounds(), &image.Uniform{canvasBackground}, image.Point{}, xdraw.Src)

	cells := Layout(len(required))

	// Cells are disjoint, so each goroutine writes its own pixel region of the
	// shared canvas. Clipping via SubImage keeps every draw inside its cell.
	g, ctx := errgroup.WithContext(ctx)
	for i, era := range required {
		cell := cells[i]
		era := era
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.drawCell(canvas, cell, era, images[era])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("eras", len(required)).
		Int("bytes", buf.Len()).
		Msg("album: composite encoded")
	return buf.Bytes(), nil
}

func (c *Compositor) drawCell(canvas *image.RGBA, cell image.Rectangle, era domain.Era, encoded []byte) error {
	src, _, err := image.Decode(bytes.NewReader(encoded))
	if err != nil {
		return domain.AssetLoadError(era, err)
	}

	target := canvas.SubImage(cell).(*image.RGBA)
	xdraw.Draw(target, cell, &image.Uniform{cellBackground}, image.Point{}, xdraw.Src)

	photo := photoArea(cell)
	crop := coverCrop(src.Bounds(), photo)
	xdraw.CatmullRom.Scale(target, photo, src, crop, xdraw.Src, nil)

	drawCaption(target, captionArea(cell), era.DisplayName())
	return nil
}

func drawCaption(dst *image.RGBA, strip image.Rectangle, label string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	x := strip.Min.X + (strip.Dx()-width)/2
	y := strip.Min.Y + (strip.Dy()+face.Ascent)/2 - 2

	drawer := font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{captionInk},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(label)
}
