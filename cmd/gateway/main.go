package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lazygpt/gateway/internal/config"
	"github.com/lazygpt/gateway/internal/llm"
	"github.com/lazygpt/gateway/internal/server"
	"github.com/lazygpt/gateway/internal/storage"
)

func main() {
	// Load env if it exists
	godotenv.Load()

	logger := setupLogger()

	cfg, err := config.Load("config.json")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.OpenAI.APIKey == "" {
		logger.Fatal().Msg("OPENAI_API_KEY is not set")
	}

	// Redis is optional: without it the per-minute limiter runs in-process.
	var redis *storage.RedisClient
	if addr := cfg.Redis.GetRedisAddr(); addr != "" {
		redis, err = storage.NewRedis(addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Str("addr", addr).Msg("failed to connect to redis")
		}
		defer redis.Close()
		logger.Info().Str("addr", addr).Msg("connected to redis")
	} else {
		logger.Info().Msg("no redis configured, using in-memory rate limiting")
	}

	llmClient := llm.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel, cfg.OpenAI.VisionModel)

	srv := server.New(cfg, redis, llmClient, logger)

	go func() {
		addr := ":" + cfg.Server.Port
		if err := srv.Run(addr); err != nil {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}

func setupLogger() zerolog.Logger {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("LOG_FORMAT") == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
