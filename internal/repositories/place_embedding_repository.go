package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"itinera/internal/models/db_models"
)

type PlaceEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.PlaceEmbedding) error
	// SearchByVector returns the k nearest rows by cosine distance, closest first.
	SearchByVector(ctx context.Context, vector pgvector.Vector, k int) ([]db_models.PlaceEmbedding, error)
}

type placeEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) PlaceEmbeddingRepository {
	return &placeEmbeddingRepository{db: db}
}

func (r *placeEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.PlaceEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "city", "category", "tags", "content", "embedding"}),
		}).
		Create(embedding).Error
}

func (r *placeEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, k int) ([]db_models.PlaceEmbedding, error) {
	if k <= 0 {
		return nil, nil
	}

	var results []db_models.PlaceEmbedding

	query := `
        SELECT place_id, name, city, category, tags, content, created_at,
               1 - (embedding <=> ?) AS similarity
        FROM place_embeddings
        ORDER BY embedding <=> ?  -- cosine distance, closest first
        LIMIT ?
    `

	err := r.db.WithContext(ctx).Raw(query, vector, vector, k).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
