package style

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"retrobooth/internal/domain"
)

const jpegQuality = 90

// NormalizeJPEG re-encodes an asset as JPEG so every downloadable artifact
// shares one format regardless of what the collaborator returned. Assets that
// are already JPEG pass through untouched; re-encoding is deterministic.
func NormalizeJPEG(asset *domain.ImageAsset) (*domain.ImageAsset, error) {
	if asset == nil {
		return nil, fmt.Errorf("%w: nil asset", domain.ErrProviderFailure)
	}
	if asset.Format == "image/jpeg" || asset.Format == "image/jpg" {
		return asset, nil
	}

	img, _, err := image.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s asset: %v", domain.ErrProviderFailure, asset.Format, err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("re-encode asset: %w", err)
	}
	return &domain.ImageAsset{
		Data:   buf.Bytes(),
		Format: "image/jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}
