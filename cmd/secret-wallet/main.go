package main

import (
	"log"
	"runtime"

	fyneapp "fyne.io/fyne/v2/app"

	"secret-wallet/internal/app"
	"secret-wallet/internal/config"
	"secret-wallet/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	appLogger := logger.New(level, cfg.Log.JSON)

	appLogger.Info("Main", "application starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  level.String(),
	})

	application, err := app.NewApplication(fyneapp.NewWithID(cfg.App.ID), cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", err, map[string]interface{}{"stage": "init"})
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, map[string]interface{}{"stage": "run"})
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("Main", "application terminated", nil)
}
