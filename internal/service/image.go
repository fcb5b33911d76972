package service

import (
	"context"

	"github.com/lazygpt/gateway/internal/llm"
)

// ImageService orchestrates the pro-only /analyze-image request: one
// multimodal call combining the recipe prompt with the uploaded photo.
type ImageService struct {
	llm       llm.Client
	maxTokens int
}

func NewImageService(client llm.Client, maxTokens int) *ImageService {
	return &ImageService{
		llm:       client,
		maxTokens: maxTokens,
	}
}

// Analyze returns the model's free-text recipe for the image.
func (s *ImageService) Analyze(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", ErrNoImage
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	recipe, err := s.llm.CompleteVision(ctx, recipePrompt, image, mimeType, s.maxTokens)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	return recipe, nil
}
