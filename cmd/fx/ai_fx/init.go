package ai_fx

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"itinera/internal/config"
	"itinera/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClient,
	ProvideTextGenerator)

func ProvideEmbeddingClient(lc fx.Lifecycle, cfg *config.Config) (utils.EmbeddingClientInterface, error) {
	log.Info().
		Str("provider", cfg.EmbeddingProvider).
		Str("model", cfg.EmbeddingModel).
		Msg("Initializing embedding client")
	client, err := utils.NewEmbeddingClient(cfg.EmbeddingProvider, cfg.APIKey(cfg.EmbeddingProvider), cfg.EmbeddingModel)
	if err != nil {
		return nil, err
	}
	closeOnStop(lc, client)
	return client, nil
}

func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config) (utils.TextGeneratorInterface, error) {
	log.Info().
		Str("provider", cfg.LLMProvider).
		Str("model", cfg.LLMModel).
		Msg("Initializing text generator")
	client, err := utils.NewTextGenerator(cfg.LLMProvider, cfg.APIKey(cfg.LLMProvider), cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	closeOnStop(lc, client)
	return client, nil
}

func closeOnStop(lc fx.Lifecycle, client any) {
	if c, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return c.Close() },
		})
	}
}
