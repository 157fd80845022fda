// main.go
package main

import (
	"log"

	"slot-booking/internal/data/store"
	"slot-booking/internal/dto/request"
	"slot-booking/internal/wire"
	"slot-booking/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("store", config.Store.Path),
		zap.Bool("debug", config.App.Debug),
	)

	// Open the booking store
	st, err := store.NewFileStore(afero.NewOsFs(), config.Store.Path, logger)
	if err != nil {
		logger.Fatal("Failed to open booking store", zap.Error(err))
	}
	defer st.Close()

	// Embedding applications supply their own prompt; this harness approves
	// destructive actions and logs them.
	confirm := func(prompt string) bool {
		logger.Info("Confirmation auto-approved", zap.String("prompt", prompt))
		return true
	}

	// Wire all dependencies
	app := wire.Wiring(st, config, confirm, logger)

	dashboard := app.Services.Business.Dashboard(&request.DashboardQuery{Filter: request.FilterAll})
	logger.Info("Dashboard snapshot",
		zap.Int("total", dashboard.Stats.Total),
		zap.Int("today", dashboard.Stats.Today),
		zap.Int("upcoming", dashboard.Stats.Upcoming),
		zap.Int("confirmed", dashboard.Stats.Confirmed),
	)
}
