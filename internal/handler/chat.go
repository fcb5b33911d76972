package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lazygpt/gateway/internal/service"
	"github.com/lazygpt/gateway/internal/session"
	"github.com/lazygpt/gateway/internal/usage"
)

type ChatHandler struct {
	chat   *service.ChatService
	ledger *usage.Ledger
	logger zerolog.Logger
}

func NewChatHandler(chat *service.ChatService, ledger *usage.Ledger, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		ledger: ledger,
		logger: logger,
	}
}

type askRequest struct {
	Message string   `json:"message"`
	Lang    string   `json:"lang"`
	JSToken string   `json:"js_token"`
	Phone   string   `json:"phone"`
	Allowed []string `json:"allowed"`
}

// Ask handles POST /ask. The gate has already validated the request; here
// the free-tier quota is charged, then the two model calls run.
func (h *ChatHandler) Ask(c *gin.Context) {
	key := session.FromRequest(c.Request)
	isPro := session.IsPro(key)

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if !isPro {
		allowed, count := h.ledger.IncrementAndCheck(key)
		if !allowed {
			h.logger.Warn().Str("session_id", key).Int("count", count).Msg("free limit reached")
			c.JSON(http.StatusForbidden, gin.H{
				"error":      "Free limit reached",
				"pro":        false,
				"session_id": key,
			})
			return
		}
	}

	answer, suggestions, err := h.chat.Ask(c.Request.Context(), req.Message, req.Lang, req.Allowed)
	if err != nil {
		h.askError(c, key, isPro, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":    answer,
		"suggestions": suggestions,
		"pro":         isPro,
	})
}

func (h *ChatHandler) askError(c *gin.Context, key string, isPro bool, err error) {
	if errors.Is(err, service.ErrNoMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	h.logger.Error().Err(err).Str("session_id", key).Msg("ask failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
		"pro":   isPro,
	})
}
