package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "Cardaris Portal API"

// rootHandler serves the service descriptor with config-presence flags.
func rootHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":                   serviceName,
			"status":                 "ok",
			"shopifyConfigured":      deps.ShopifyConfigured,
			"testCustomerConfigured": deps.TestCustomerID != "",
		})
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":      serviceName,
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
