package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bookscout/internal/config"
	"bookscout/internal/llm/gemini"
	"bookscout/internal/recommend"
	"bookscout/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	h := recommend.NewHandler(cfg, gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel), logger)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Bool("mock_mode", cfg.MockMode).Msg("bookscout listening")
	if err := http.ListenAndServe(addr, server.New(h)); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
