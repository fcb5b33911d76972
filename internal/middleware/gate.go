package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lazygpt/gateway/internal/config"
)

// humanToken is set by a script on the web page; naive bots post without it.
const humanToken = "genuine-human"

const maxMultipartMemory = 32 << 20

// Gate is the anti-bot pre-handler check for the two mutable-state POST
// routes. Checks run in a fixed order - referer, user-agent, body
// parseability, js_token, honeypot - and the first failure aborts with 403.
func Gate(cfg config.GateConfig, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		referer := c.GetHeader("Referer")
		if !strings.HasPrefix(referer, cfg.AllowedOrigin) {
			reject(c, logger, "Invalid referer")
			return
		}

		ua := strings.ToLower(c.GetHeader("User-Agent"))
		for _, sig := range cfg.BlockedAgents {
			if strings.Contains(ua, sig) {
				logger.Warn().Str("user_agent", ua).Msg("blocked suspicious user-agent")
				reject(c, logger, "Bot detected — invalid user-agent")
				return
			}
		}

		token, honeypot, ok := gateFields(c)
		if !ok {
			reject(c, logger, "Malformed request")
			return
		}

		if token != humanToken {
			reject(c, logger, "Bot detected — invalid token")
			return
		}

		if honeypot {
			reject(c, logger, "Bot detected — honeypot filled")
			return
		}

		c.Next()
	}
}

// gateFields extracts js_token and the honeypot flag from either a JSON or
// a multipart body. The JSON body is restored afterwards so the handler can
// bind it again; multipart parsing is cached by net/http.
func gateFields(c *gin.Context) (token string, honeypot bool, ok bool) {
	if c.ContentType() == "multipart/form-data" {
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return "", false, false
		}
		return c.Request.FormValue("js_token"), c.Request.FormValue("phone") != "", true
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", false, false
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false, false
	}

	token, _ = payload["js_token"].(string)
	return token, truthy(payload["phone"]), true
}

// truthy mirrors the honeypot rule: any non-empty value in the phone field
// means a bot filled a field no real user ever sees.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

func reject(c *gin.Context, logger zerolog.Logger, reason string) {
	logger.Warn().
		Str("reason", reason).
		Str("path", c.Request.URL.Path).
		Str("client_ip", c.ClientIP()).
		Msg("request blocked by gate")

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error": reason,
	})
}
