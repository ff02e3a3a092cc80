package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handler funcs the route registry wires up.
type HandlerBundle struct {
	// Webhook endpoints.
	HandleInboundEvent gin.HandlerFunc

	// Catalog endpoints.
	GetAvailableServices gin.HandlerFunc

	// Admin endpoints.
	ListBookings    gin.HandlerFunc
	GetUserBookings gin.HandlerFunc
	ResetSession    gin.HandlerFunc
}
