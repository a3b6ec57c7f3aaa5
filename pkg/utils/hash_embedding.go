package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

const HashEmbeddingDimensions = 1536

// HashEmbeddingClient derives vectors from word hashes. It needs no provider
// and is meant for local development and tests, not for ranking quality.
type HashEmbeddingClient struct {
	dimensions int
}

func NewHashEmbeddingClient(dimensions int) *HashEmbeddingClient {
	if dimensions <= 0 {
		dimensions = HashEmbeddingDimensions
	}
	return &HashEmbeddingClient{dimensions: dimensions}
}

func (c *HashEmbeddingClient) GetEmbedding(_ context.Context, text string) (pgvector.Vector, error) {
	return c.textToVector(text), nil
}

func (c *HashEmbeddingClient) GetEmbeddings(_ context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no input texts provided")
	}
	vectors := make([]pgvector.Vector, len(texts))
	for i, text := range texts {
		vectors[i] = c.textToVector(text)
	}
	return vectors, nil
}

func (c *HashEmbeddingClient) textToVector(text string) pgvector.Vector {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	vector := make([]float32, c.dimensions)

	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		hash := h.Sum32()
		for i := range vector {
			vector[i] += float32(math.Sin(float64(hash+uint32(i))) * 0.1)
		}
	}

	var magnitude float64
	for _, v := range vector {
		magnitude += float64(v) * float64(v)
	}
	if magnitude > 0 {
		norm := float32(math.Sqrt(magnitude))
		for i := range vector {
			vector[i] /= norm
		}
	}
	return pgvector.NewVector(vector)
}
