package services

import (
	"context"
	"fmt"
	"math"

	"itinera/internal/itinerary"
	"itinera/internal/models/db_models"
	"itinera/internal/repositories"
	"itinera/pkg/logger"
	"itinera/pkg/utils"
)

type RetrievalServiceInterface interface {
	// Retrieve returns up to k candidates for query, most similar first.
	Retrieve(ctx context.Context, query string, k int) ([]itinerary.CandidateItem, error)
}

type RetrievalService struct {
	embedder      utils.EmbeddingClientInterface
	embeddingRepo repositories.PlaceEmbeddingRepository
	placeRepo     repositories.PlaceRepository
}

func NewRetrievalService(
	embedder utils.EmbeddingClientInterface,
	embeddingRepo repositories.PlaceEmbeddingRepository,
	placeRepo repositories.PlaceRepository,
) RetrievalServiceInterface {
	return &RetrievalService{
		embedder:      embedder,
		embeddingRepo: embeddingRepo,
		placeRepo:     placeRepo,
	}
}

func (s *RetrievalService) Retrieve(ctx context.Context, query string, k int) ([]itinerary.CandidateItem, error) {
	vector, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", utils.ErrRetrievalFailed, err)
	}

	hits, err := s.embeddingRepo.SearchByVector(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("%w: vector search: %v", utils.ErrDatabaseError, err)
	}
	if len(hits) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.PlaceID)
	}
	places, err := s.placeRepo.ListPlacesByIds(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: load places: %v", utils.ErrDatabaseError, err)
	}
	byID := make(map[string]db_models.Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}

	candidates := make([]itinerary.CandidateItem, 0, len(hits))
	for _, h := range hits {
		p, ok := byID[h.PlaceID]
		if !ok {
			retrievalLog := logger.Component("retrieval")
			retrievalLog.Debug().Str("place_id", h.PlaceID).Msg("embedding without place row, using indexed metadata")
			candidates = append(candidates, itinerary.CandidateItem{
				ID:            h.PlaceID,
				Name:          h.Name,
				City:          h.City,
				Category:      h.Category,
				DurationHours: itinerary.DefaultDurationHours,
			})
			continue
		}
		candidates = append(candidates, CandidateFromPlace(p, h.City))
	}
	return candidates, nil
}

// CandidateFromPlace maps a stored place to a scheduler candidate. The city is
// the first non-empty of the place city, its location and the indexed city.
func CandidateFromPlace(p db_models.Place, indexedCity string) itinerary.CandidateItem {
	hours := itinerary.DefaultDurationHours
	if d := p.DurationHours; d != nil && *d > 0 && !math.IsInf(*d, 1) {
		hours = *d
	}
	return itinerary.CandidateItem{
		ID:            p.ID,
		Name:          p.Name,
		City:          itinerary.FirstLocale(p.City, p.Location, indexedCity),
		Category:      p.Category,
		BudgetTier:    p.Budget,
		BestTime:      p.BestTime,
		PreferredSlot: itinerary.ParseSlot(p.BestTime),
		DurationHours: hours,
		Description:   p.Description,
		Tips:          p.Tips,
	}
}
