package services

import (
	"context"
	"fmt"
	"strings"

	"itinera/internal/itinerary"
	"itinera/internal/models/response_models"
)

const DefaultRecommendationCount = 10

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, city string, interests []string, k int) ([]response_models.Recommendation, error)
}

type RecommendationService struct {
	retrieval RetrievalServiceInterface
}

func NewRecommendationService(retrieval RetrievalServiceInterface) RecommendationServiceInterface {
	return &RecommendationService{retrieval: retrieval}
}

func (s *RecommendationService) Recommend(ctx context.Context, city string, interests []string, k int) ([]response_models.Recommendation, error) {
	if k <= 0 {
		k = DefaultRecommendationCount
	}
	city = strings.TrimSpace(city)

	query := fmt.Sprintf("City: %s. Interests: %s.", city, strings.Join(interests, ", "))
	if len(interests) == 0 {
		query = fmt.Sprintf("City: %s. Interests: general.", city)
	}

	// Over-fetch so the city filter still leaves k results.
	retrieved, err := s.retrieval.Retrieve(ctx, query, k*3)
	if err != nil {
		return nil, err
	}
	selected := itinerary.SelectCandidates(city, retrieved)
	if len(selected) > k {
		selected = selected[:k]
	}

	out := make([]response_models.Recommendation, 0, len(selected))
	for _, c := range selected {
		out = append(out, response_models.Recommendation{
			ID:          c.ID,
			Name:        c.Name,
			City:        c.City,
			Category:    c.Category,
			Budget:      c.BudgetTier,
			BestTime:    c.BestTime,
			Duration:    c.DurationHours,
			Description: c.Description,
			MapsURL:     itinerary.MapsURL(c.Name, c.City),
		})
	}
	return out, nil
}
