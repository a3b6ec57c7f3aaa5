package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"itinera/internal/models/db_models"
)

type PlaceRepository interface {
	Upsert(ctx context.Context, place *db_models.Place) error
	// ListPlacesByIds returns the places in the order of ids. Unknown ids are skipped.
	ListPlacesByIds(ctx context.Context, ids []string) ([]db_models.Place, error)
	Count(ctx context.Context) (int64, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Upsert(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(place).Error
}

func (r *placeRepository) ListPlacesByIds(ctx context.Context, ids []string) ([]db_models.Place, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var places []db_models.Place
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&places).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]db_models.Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}
	ordered := make([]db_models.Place, 0, len(places))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
			delete(byID, id)
		}
	}
	return ordered, nil
}

func (r *placeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Place{}).Count(&n).Error
	return n, err
}
