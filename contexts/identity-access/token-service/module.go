package tokenservice

import (
	"log/slog"
	"time"

	httpadapter "toolhub/contexts/identity-access/token-service/adapters/http"
	"toolhub/contexts/identity-access/token-service/application"
	"toolhub/contexts/identity-access/token-service/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
}

type Dependencies struct {
	Secret   []byte
	TokenTTL time.Duration
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Secret:   deps.Secret,
		TokenTTL: deps.TokenTTL,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}
