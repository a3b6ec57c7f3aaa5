package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"itinera/cmd/fx/ai_fx"
	"itinera/cmd/fx/chat_fx"
	"itinera/cmd/fx/config_fx"
	"itinera/cmd/fx/controllers_fx"
	"itinera/cmd/fx/db_fx"
	"itinera/cmd/fx/itinerary_fx"
	"itinera/cmd/fx/memcache_fx"
	"itinera/cmd/fx/places_fx"
	"itinera/internal/api/controllers"
	"itinera/internal/config"
	"itinera/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		ai_fx.Module,
		places_fx.Module,
		itinerary_fx.Module,
		memcache_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config                   *config.Config
	Registry                 *prometheus.Registry
	ItineraryController      *controllers.ItineraryController
	RecommendationController *controllers.RecommendationController
	ChatController           *controllers.ChatController
	HealthController         *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/health", p.HealthController.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))

	r.POST("/itinerary", p.ItineraryController.GenerateItineraryHandler)
	r.GET("/recommendations", p.RecommendationController.ListRecommendationsHandler)
	r.POST("/chat", p.ChatController.ChatHandler)
}
