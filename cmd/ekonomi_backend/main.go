package main

import (
	"log/slog"
	"os"

	"github.com/blackbox-se/obsidian_ekonomi/internal/adapters/vault/markdown"
	"github.com/blackbox-se/obsidian_ekonomi/internal/core/services"
	"github.com/blackbox-se/obsidian_ekonomi/internal/handlers"
	"github.com/blackbox-se/obsidian_ekonomi/internal/middleware"
	"github.com/blackbox-se/obsidian_ekonomi/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Obsidian Ekonomi API
// @version 1.0
// @description Markdown vault transaction store for the Obsidian Ekonomi app.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Vault.VaultPath == "" {
		// The store fails fast per operation; warn once at startup too.
		logger.Warn("No vault path configured; vault operations will fail until VAULT_PATH is set")
	}

	// The vault repository is built once from the immutable settings. A config
	// change means restarting with a fresh store, never mutating this one.
	vaultRepo := markdown.NewVaultRepository(cfg.Vault, logger)
	transactionService := services.NewTransactionService(vaultRepo, cfg.Vault.Categories, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, transactionService, transactionService)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
