package controllers_fx

import (
	"go.uber.org/fx"
	"itinera/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewHealthController))
