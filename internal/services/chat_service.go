package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"itinera/internal/config"
	"itinera/internal/itinerary"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	mem "itinera/pkg/memcache"
	"itinera/pkg/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const chatContextPlaces = 5

type ChatServiceInterface interface {
	Ask(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)
}

type ChatService struct {
	retrieval RetrievalServiceInterface
	generator utils.TextGeneratorInterface
	sessions  mem.SessionStore
	cfg       *config.Config
	now       func() time.Time
}

func NewChatService(
	retrieval RetrievalServiceInterface,
	generator utils.TextGeneratorInterface,
	sessions mem.SessionStore,
	cfg *config.Config,
) ChatServiceInterface {
	return &ChatService{
		retrieval: retrieval,
		generator: generator,
		sessions:  sessions,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *ChatService) Ask(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	question := strings.TrimSpace(req.Message)
	if question == "" {
		return nil, fmt.Errorf("%w: message is empty", utils.ErrInvalidInput)
	}

	session, err := s.loadSession(ctx, strings.TrimSpace(req.SessionID))
	if err != nil {
		return nil, err
	}

	places, err := s.retrieval.Retrieve(ctx, question, chatContextPlaces)
	if err != nil {
		return nil, err
	}
	prompt := BuildChatPrompt(question, places, session.History, s.cfg.PromptMaxChars)

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.LLMTimeout)
	defer cancel()
	answer, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("session_id", session.ID).Msg("chat generation failed")
		return nil, itinerary.WrapGenerationError(err)
	}
	answer = strings.TrimSpace(answer)

	session.History = append(session.History, mem.Turn{User: question, Assistant: answer})
	session.UpdatedAt = s.now()
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}

	return &response_models.ChatResponse{SessionID: session.ID, Answer: answer}, nil
}

// loadSession returns the stored session, or a new one when id is empty or unknown.
func (s *ChatService) loadSession(ctx context.Context, id string) (*mem.Session, error) {
	if id != "" {
		session, ok, err := s.sessions.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
		}
		if ok {
			return session, nil
		}
	}
	return &mem.Session{ID: uuid.New().String(), UpdatedAt: s.now()}, nil
}
