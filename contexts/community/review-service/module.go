package reviewservice

import (
	"log/slog"

	httpadapter "toolhub/contexts/community/review-service/adapters/http"
	"toolhub/contexts/community/review-service/adapters/memory"
	"toolhub/contexts/community/review-service/application"
	"toolhub/contexts/community/review-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	IDGenerator ports.IDGenerator
	Clock       ports.Clock
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Repo:   deps.Repository,
				IDGen:  deps.IDGenerator,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		IDGenerator: store,
		Clock:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
