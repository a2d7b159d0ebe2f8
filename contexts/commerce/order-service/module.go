package orderservice

import (
	"log/slog"
	"time"

	httpadapter "toolhub/contexts/commerce/order-service/adapters/http"
	"toolhub/contexts/commerce/order-service/adapters/memory"
	"toolhub/contexts/commerce/order-service/application"
	"toolhub/contexts/commerce/order-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository   ports.Repository
	IDGenerator  ports.IDGenerator
	Clock        ports.Clock
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:         deps.Repository,
		IDGen:        deps.IDGenerator,
		Clock:        deps.Clock,
		StoreTimeout: deps.StoreTimeout,
		Logger:       deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:   store,
		IDGenerator:  store,
		Clock:        store,
		StoreTimeout: 5 * time.Second,
		Logger:       logger,
	})
	module.Store = store
	return module
}
