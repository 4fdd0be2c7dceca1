package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listTicketsHandler(svc TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List(c.Request.Context()))
	}
}

func createTicketHandler(svc TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Arbitrary payload, acknowledged without persistence.
		var payload map[string]any
		_ = c.ShouldBindJSON(&payload)
		svc.Create(c.Request.Context(), payload)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
