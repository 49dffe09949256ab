package handler

import (
	"context"
	"net/http"
	"os"

	"github.com/arnavshah/shift-admin-go/pkg/app"
	"github.com/arnavshah/shift-admin-go/pkg/config"
	"github.com/arnavshah/shift-admin-go/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := app.NewLogger(cfg, os.Stderr)

	svc, err := app.NewServices(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}

	gin.SetMode(gin.ReleaseMode)
	r = handlers.NewRouter(svc.Handler, cfg.AllowedOrigins)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
