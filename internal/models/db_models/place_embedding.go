package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type PlaceEmbedding struct {
	PlaceID   string `gorm:"primaryKey;column:place_id"`
	Name      string
	City      string
	Category  string
	Tags      pq.StringArray  `gorm:"type:text[]"`
	Content   string          // text the embedding was computed from
	Embedding pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`

	Similarity float64 `gorm:"->;-:migration"`
}
