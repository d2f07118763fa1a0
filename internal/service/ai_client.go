package service

import (
	"context"
)

// TextGenerator is the interface for the external text-generation service
type TextGenerator interface {
	// GenerateContent sends a single prompt and returns the raw response text
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// IsEnabled returns whether the client is configured and ready
	IsEnabled() bool
}

// Embedder is the interface for text embedding providers
type Embedder interface {
	// CreateEmbeddings generates embeddings for texts
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// Ensure GeminiClient implements both interfaces
var (
	_ TextGenerator = (*GeminiClient)(nil)
	_ Embedder      = (*GeminiClient)(nil)
)
