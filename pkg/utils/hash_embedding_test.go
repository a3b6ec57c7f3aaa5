package utils

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbeddingClient(t *testing.T) {
	c := NewHashEmbeddingClient(64)
	ctx := context.Background()

	a, err := c.GetEmbedding(ctx, "Jardin Majorelle Marrakech")
	require.NoError(t, err)
	b, err := c.GetEmbedding(ctx, "  jardin majorelle   marrakech ")
	require.NoError(t, err)
	assert.Equal(t, a.Slice(), b.Slice(), "case and spacing do not matter")
	assert.Len(t, a.Slice(), 64)

	var norm float64
	for _, v := range a.Slice() {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-4)

	empty, err := c.GetEmbedding(ctx, "")
	require.NoError(t, err)
	for _, v := range empty.Slice() {
		assert.Zero(t, v)
	}

	_, err = c.GetEmbeddings(ctx, nil)
	assert.Error(t, err)

	batch, err := c.GetEmbeddings(ctx, []string{"Fes", "Rabat"})
	require.NoError(t, err)
	assert.Len(t, batch, 2)
}
