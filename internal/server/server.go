package server

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Bot is the slice of the telegram side the HTTP surface needs.
type Bot interface {
	HandleUpdate(ctx context.Context, upd tgbotapi.Update) error
	RefreshLive(ctx context.Context) (int, error)
	NotifyAll(ctx context.Context) (int, error)
}

// New builds the HTTP server exposing the Telegram webhook, the
// scheduler trigger and a health probe.
func New(addr string, log *zap.Logger, bot Bot) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      newEngine(log, bot),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func newEngine(log *zap.Logger, bot Bot) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	eng := gin.New()
	eng.Use(gin.Recovery())

	eng.HandleMethodNotAllowed = true
	eng.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	h := &handler{log: log, bot: bot}
	eng.POST("/webhook", h.webhook)
	eng.OPTIONS("/webhook", preflight("POST, OPTIONS"))
	eng.GET("/scheduler", h.scheduler)
	eng.OPTIONS("/scheduler", preflight("GET, OPTIONS"))
	eng.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	return eng
}

func preflight(methods string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Max-Age", "86400")
		c.Status(http.StatusOK)
	}
}
