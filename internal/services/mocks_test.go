package services

import (
	"context"

	"itinera/internal/itinerary"
	"itinera/internal/models/db_models"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/mock"
)

type MockRetrieval struct {
	mock.Mock
}

func (m *MockRetrieval) Retrieve(ctx context.Context, query string, k int) ([]itinerary.CandidateItem, error) {
	args := m.Called(ctx, query, k)
	items, _ := args.Get(0).([]itinerary.CandidateItem)
	return items, args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	v, _ := args.Get(0).(pgvector.Vector)
	return v, args.Error(1)
}

func (m *MockEmbedder) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	args := m.Called(ctx, texts)
	v, _ := args.Get(0).([]pgvector.Vector)
	return v, args.Error(1)
}

type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) Upsert(ctx context.Context, place *db_models.Place) error {
	return m.Called(ctx, place).Error(0)
}

func (m *MockPlaceRepository) ListPlacesByIds(ctx context.Context, ids []string) ([]db_models.Place, error) {
	args := m.Called(ctx, ids)
	places, _ := args.Get(0).([]db_models.Place)
	return places, args.Error(1)
}

func (m *MockPlaceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPlaceEmbeddingRepository struct {
	mock.Mock
}

func (m *MockPlaceEmbeddingRepository) Upsert(ctx context.Context, e *db_models.PlaceEmbedding) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockPlaceEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, k int) ([]db_models.PlaceEmbedding, error) {
	args := m.Called(ctx, vector, k)
	rows, _ := args.Get(0).([]db_models.PlaceEmbedding)
	return rows, args.Error(1)
}
