// internal/wire/wire.go
package wire

import (
	"slot-booking/internal/data/store"
	"slot-booking/internal/usecase"
	"slot-booking/pkg/utils"

	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Services *usecase.Service
	Store    store.Store
}

// Wiring menginisialisasi semua dependencies. Both flows share the one
// injected store; cross-flow synchronization goes through its broadcast.
func Wiring(st store.Store, config *utils.Config, confirm usecase.ConfirmFunc, logger *zap.Logger) *App {
	service := usecase.NewService(st, confirm, config, logger)

	return &App{
		Services: service,
		Store:    st,
	}
}
