package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itinera/internal/config"
	"itinera/internal/itinerary"
	"itinera/internal/models/request_models"
	"itinera/pkg/metrics"
	"itinera/pkg/utils"

	"github.com/rs/zerolog/log"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, profile request_models.TravelProfile) (*itinerary.TripPlan, error)
}

type ItineraryService struct {
	retrieval RetrievalServiceInterface
	generator utils.TextGeneratorInterface
	metrics   *metrics.PlannerMetrics
	cfg       *config.Config
}

func NewItineraryService(
	retrieval RetrievalServiceInterface,
	generator utils.TextGeneratorInterface,
	plannerMetrics *metrics.PlannerMetrics,
	cfg *config.Config,
) ItineraryServiceInterface {
	return &ItineraryService{
		retrieval: retrieval,
		generator: generator,
		metrics:   plannerMetrics,
		cfg:       cfg,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, profile request_models.TravelProfile) (*itinerary.TripPlan, error) {
	plan, err := s.generate(ctx, profile)
	if err != nil {
		s.metrics.PlanFailed(failureReason(err))
		return nil, err
	}
	s.metrics.PlanGenerated()
	return plan, nil
}

func (s *ItineraryService) generate(ctx context.Context, profile request_models.TravelProfile) (*itinerary.TripPlan, error) {
	profile.Normalize()
	if profile.DurationDays < 1 {
		return nil, fmt.Errorf("%w: duration_days must be positive, got %d", itinerary.ErrInvalidTripParameters, profile.DurationDays)
	}
	if err := profile.ValidateBudget(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	logger := log.Ctx(ctx).With().Str("city", profile.City).Int("days", profile.DurationDays).Logger()

	query := BuildRetrievalQuery(profile)
	retrieved, err := s.retrieval.Retrieve(ctx, query, s.cfg.MaxCandidates)
	if err != nil {
		return nil, err
	}

	candidates := itinerary.SelectCandidates(profile.City, retrieved)
	if len(candidates) > s.cfg.MaxCandidates {
		candidates = candidates[:s.cfg.MaxCandidates]
	}
	logger.Debug().Int("retrieved", len(retrieved)).Int("selected", len(candidates)).Msg("candidates selected")

	result, err := itinerary.Schedule(candidates, profile.DurationDays)
	if err != nil {
		return nil, err
	}
	s.metrics.ScheduleOutcome(result.Placed(), len(result.Dropped), len(result.Skipped))
	if len(result.Dropped) > 0 {
		logger.Info().
			Str("dropped", result.Dropped[0].Name).
			Int("skipped", len(result.Skipped)).
			Msg("schedule full, remaining candidates left out")
	}

	days := itinerary.AllocateTimes(result.Days)

	prompt, err := BuildItineraryPrompt(profile, candidates, days, s.cfg.PromptMaxChars)
	if err != nil {
		return nil, err
	}

	raw, err := s.callGenerator(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("text generation failed")
		return nil, itinerary.WrapGenerationError(err)
	}

	extract := itinerary.ExtractBlock
	if s.cfg.StringAwareExtraction {
		extract = itinerary.ExtractBlockQuoted
	}
	block, err := extract(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("no usable block in generated text")
		return nil, err
	}

	plan, err := itinerary.ParsePlan(block, profile.City, profile.DurationDays)
	if err != nil {
		logger.Warn().Err(err).Msg("generated plan rejected")
		return nil, err
	}

	switch {
	case s.cfg.LockSchedule:
		plan = itinerary.LockSchedule(days, plan)
	case !itinerary.DaysInOrder(plan, profile.DurationDays):
		logger.Warn().Int("generated_days", len(plan.Days)).Msg("generated days out of sequence, keeping the schedule")
		plan = itinerary.LockSchedule(days, plan)
	}
	return &plan, nil
}

func (s *ItineraryService) callGenerator(ctx context.Context, prompt string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.cfg.LLMTimeout)
	defer cancel()

	start := time.Now()
	raw, err := s.generator.Generate(genCtx, prompt)
	s.metrics.ObserveGeneration(time.Since(start))
	return raw, err
}

// failureReason is the metrics label for a failed plan.
func failureReason(err error) string {
	switch {
	case errors.Is(err, itinerary.ErrInvalidTripParameters), errors.Is(err, utils.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, itinerary.ErrNoCandidates):
		return "no_candidates"
	case errors.Is(err, itinerary.ErrGeneration):
		return "generation"
	case errors.Is(err, itinerary.ErrNoStructuredBlock):
		return "no_structured_block"
	case errors.Is(err, itinerary.ErrUnbalancedBlock):
		return "unbalanced_block"
	case errors.Is(err, itinerary.ErrSchema):
		return "schema"
	case errors.Is(err, utils.ErrRetrievalFailed), errors.Is(err, utils.ErrDatabaseError):
		return "retrieval"
	default:
		return "internal"
	}
}
