package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// TextGeneratorInterface turns a prompt into free text.
type TextGeneratorInterface interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EmbeddingClientInterface turns text into vectors for similarity search.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
}

// NewTextGenerator builds the generation client for provider.
func NewTextGenerator(provider, apiKey, model string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model, ""), nil
	case "gemini":
		return NewGeminiClient(apiKey, model, "")
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// NewEmbeddingClient builds the embedding client for provider.
func NewEmbeddingClient(provider, apiKey, model string) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, "", model), nil
	case "gemini":
		return NewGeminiClient(apiKey, "", model)
	case "hash":
		return NewHashEmbeddingClient(HashEmbeddingDimensions), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
