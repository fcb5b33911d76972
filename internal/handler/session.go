package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lazygpt/gateway/internal/session"
	"github.com/lazygpt/gateway/internal/usage"
)

type SessionHandler struct {
	ledger *usage.Ledger
	logger zerolog.Logger
}

func NewSessionHandler(ledger *usage.Ledger, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Reset handles POST /reset. Idempotent: unknown sessions still get a
// success response.
func (h *SessionHandler) Reset(c *gin.Context) {
	key := session.FromRequest(c.Request)
	h.ledger.Reset(key)

	h.logger.Info().Str("session_id", key).Msg("session usage reset")

	c.JSON(http.StatusOK, gin.H{
		"message":    "Session usage reset",
		"session_id": key,
	})
}

// Stats handles GET /stats.
func (h *SessionHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Stats())
}
