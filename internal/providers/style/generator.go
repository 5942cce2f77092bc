package style

import (
	"context"

	"retrobooth/internal/domain"
	"retrobooth/internal/providers/genai"
)

// Generator is the contract the scheduler drives: one async restyle request
// per era against an opaque collaborator.
type Generator interface {
	Generate(ctx context.Context, source domain.SourceImage, era domain.Era) (*domain.ImageAsset, error)
}

// GeminiStylist adapts the Gemini client to the Generator contract, attaching
// the per-era style descriptor.
type GeminiStylist struct {
	client *genai.Client
}

func NewGeminiStylist(client *genai.Client) *GeminiStylist {
	return &GeminiStylist{client: client}
}

func (g *GeminiStylist) Generate(ctx context.Context, source domain.SourceImage, era domain.Era) (*domain.ImageAsset, error) {
	asset, err := g.client.RestyleImage(ctx, genai.StyleRequest{
		Source:    source,
		Prompt:    BuildEraPrompt(era),
		RequestID: string(era),
	})
	if err != nil {
		return nil, err
	}
	return NormalizeJPEG(asset)
}

var _ Generator = (*GeminiStylist)(nil)
