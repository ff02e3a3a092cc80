package handlers

import (
	"net/http"
	"strconv"

	bookingRepo "labline/database/repository/booking"
	"labline/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking records and the service catalog.
type BookingHandler struct {
	Repo    bookingRepo.BookingRepository
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

func NewBookingHandler(repo bookingRepo.BookingRepository, cat *catalog.Catalog, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Repo: repo, Catalog: cat, Logger: logger}
}

// GetAvailableServices handles GET /api/booking/services.
func (h *BookingHandler) GetAvailableServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.List())
}

// ListBookings handles GET /api/admin/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	bookings, err := h.Repo.List(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("ListBookings: failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch bookings",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetUserBookings handles GET /api/admin/bookings/user/:userId.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user ID"})
		return
	}

	bookings, err := h.Repo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("GetUserBookings: failed to fetch bookings",
			zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch bookings",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
