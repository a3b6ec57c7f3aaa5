package chat_fx

import (
	"go.uber.org/fx"
	"itinera/internal/services"
)

var Module = fx.Provide(
	services.NewChatService)
