package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lazygpt/gateway/internal/config"
	"github.com/lazygpt/gateway/internal/handler"
	"github.com/lazygpt/gateway/internal/llm"
	"github.com/lazygpt/gateway/internal/middleware"
	"github.com/lazygpt/gateway/internal/ratelimit"
	"github.com/lazygpt/gateway/internal/service"
	"github.com/lazygpt/gateway/internal/storage"
	"github.com/lazygpt/gateway/internal/usage"
)

type Server struct {
	router         *gin.Engine
	config         *config.Config
	redis          *storage.RedisClient // nil when running without redis
	ledger         *usage.Ledger
	logger         zerolog.Logger
	chatHandler    *handler.ChatHandler
	imageHandler   *handler.ImageHandler
	sessionHandler *handler.SessionHandler
	httpServer     *http.Server
}

func New(cfg *config.Config, redis *storage.RedisClient, llmClient llm.Client, logger zerolog.Logger) *Server {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	ledger := usage.NewLedger(cfg.Quota.FreeLimit)
	chatService := service.NewChatService(llmClient)
	imageService := service.NewImageService(llmClient, cfg.OpenAI.VisionMaxTokens)

	s := &Server{
		router:         router,
		config:         cfg,
		redis:          redis,
		ledger:         ledger,
		logger:         logger,
		chatHandler:    handler.NewChatHandler(chatService, ledger, logger),
		imageHandler:   handler.NewImageHandler(imageService, logger),
		sessionHandler: handler.NewSessionHandler(ledger, logger),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery(s.logger))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.CORS(s.config.Gate.AllowedOrigin))
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.index)
	s.router.POST("/reset", s.sessionHandler.Reset)
	s.router.GET("/stats", s.sessionHandler.Stats)

	freeLimiter := ratelimit.NewLimiter(s.redis, s.config.Quota.FreePerMinute, time.Minute)
	proLimiter := ratelimit.NewLimiter(s.redis, s.config.Quota.ProPerMinute, time.Minute)

	gated := s.router.Group("/",
		middleware.Gate(s.config.Gate, s.logger),
		middleware.RateLimitBySession(freeLimiter, proLimiter, s.logger),
	)
	gated.POST("/ask", s.chatHandler.Ask)
	gated.POST("/analyze-image", s.imageHandler.Analyze)
}

func (s *Server) index(c *gin.Context) {
	status := "ok"
	statusCode := http.StatusOK

	checks := gin.H{}
	if s.redis != nil {
		redisHealthy := true
		if err := s.redis.Ping(c.Request.Context()); err != nil {
			redisHealthy = false
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
			s.logger.Warn().Err(err).Msg("redis health check failed")
		}
		checks["redis"] = redisHealthy
	}

	c.JSON(statusCode, gin.H{
		"status":    status,
		"service":   "lazygpt-gateway",
		"timestamp": time.Now().Unix(),
		"checks":    checks,
	})
}

func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	s.logger.Info().
		Str("addr", addr).
		Str("environment", s.config.Server.Environment).
		Msg("starting gateway")

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down server")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
