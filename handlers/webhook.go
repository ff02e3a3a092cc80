package handlers

import (
	"net/http"

	"labline/models"
	"labline/services/dispatch"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler bridges the messaging gateway into the dispatcher.
type WebhookHandler struct {
	Dispatcher *dispatch.Dispatcher
	Logger     *zap.Logger
}

func NewWebhookHandler(dispatcher *dispatch.Dispatcher, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Dispatcher: dispatcher, Logger: logger}
}

// HandleInboundEvent handles POST /api/webhook/events. The gateway posts one
// inbound event and receives back the commands that were executed for it, so
// it can mirror them even when it runs without a callback transport.
func (h *WebhookHandler) HandleInboundEvent(c *gin.Context) {
	var ev models.InboundEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if ev.Kind == "" {
		ev.Kind = models.EventKindText
	}

	res, err := h.Dispatcher.Dispatch(c.Request.Context(), ev)
	if err != nil {
		h.Logger.Error("HandleInboundEvent: dispatch failed",
			zap.String("senderId", ev.SenderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"commands":     res.Commands,
		"sessionEnded": res.SessionEnded,
	})
}
