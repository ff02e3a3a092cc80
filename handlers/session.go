package handlers

import (
	"net/http"

	"labline/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes ops controls over live conversation sessions.
type SessionHandler struct {
	Store  session.Store
	Logger *zap.Logger
}

func NewSessionHandler(store session.Store, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Store: store, Logger: logger}
}

// ResetSession handles DELETE /api/admin/sessions/:userId. Deleting is
// idempotent; the user's next message starts a fresh dialogue.
func (h *SessionHandler) ResetSession(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user ID"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), userID); err != nil {
		h.Logger.Error("ResetSession: failed to delete session",
			zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset session"})
		return
	}

	h.Logger.Info("session reset by admin", zap.String("userId", userID))
	c.JSON(http.StatusOK, gin.H{"status": "reset", "userId": userID})
}
