package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/massage-bot/internal/bot"
	"github.com/BruksfildServices01/massage-bot/internal/config"
)

// New builds the HTTP surface: a health probe, plus the Telegram webhook
// receiver in webhook mode. The token path segment keeps strangers from
// injecting updates.
func New(cfg *config.Config, b *bot.Bot, log *zap.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.WebhookURL != "" {
		r.POST("/webhook/:token", func(c *gin.Context) {
			if c.Param("token") != cfg.BotToken {
				c.Status(http.StatusNotFound)
				return
			}

			var update tgbotapi.Update
			if err := c.ShouldBindJSON(&update); err != nil {
				log.Warn("bad webhook payload", zap.Error(err))
				c.Status(http.StatusBadRequest)
				return
			}

			b.HandleUpdate(c.Request.Context(), update)
			c.Status(http.StatusOK)
		})
	}

	return r
}
