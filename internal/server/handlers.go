package server

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Scheduler trigger actions.
const (
	actionUpdateRealtime     = "update_realtime"
	actionDailyNotifications = "daily_notifications"
)

type handler struct {
	log *zap.Logger
	bot Bot
}

// webhook accepts a Telegram update and runs it through the router.
// Telegram expects 200 OK; handler failures surface as opaque JSON.
func (h *handler) webhook(c *gin.Context) {
	var upd tgbotapi.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.log.Error("bad webhook payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.bot.HandleUpdate(c.Request.Context(), upd); err != nil {
		h.log.Error("webhook update failed",
			zap.Int("update_id", upd.UpdateID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process update"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// scheduler runs one broadcast pass, selected by the action query
// parameter. An external timer supplies the cadence.
func (h *handler) scheduler(c *gin.Context) {
	switch c.DefaultQuery("action", actionUpdateRealtime) {
	case actionUpdateRealtime:
		n, err := h.bot.RefreshLive(c.Request.Context())
		if err != nil {
			h.log.Error("live refresh failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": n})

	case actionDailyNotifications:
		n, err := h.bot.NotifyAll(c.Request.Context())
		if err != nil {
			h.log.Error("daily notifications failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "notify failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sent": n})

	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
}
