package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardaris-portal/internal/domain"
)

// Client-facing messages, kept byte-identical to what the portal frontend
// already displays.
const (
	msgNotConfigured = "Shopify non configuré (domaine ou token manquant)."
	msgNoCustomerID  = "Aucun customerId fourni. Utilise ?customerId=ID dans l'URL ou configure SHOPIFY_TEST_CUSTOMER_ID."
	msgNotOrderOwner = "Cette commande n'appartient pas à ce client."
)

// respondError is the single error-to-HTTP translation point. routeMsg is the
// generic message for this route; upstream diagnostics go into "details".
func respondError(c *gin.Context, routeMsg string, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgNotConfigured})
	case errors.Is(err, domain.ErrNoCustomerID):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoCustomerID})
	case errors.Is(err, domain.ErrNotOrderOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": msgNotOrderOwner})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": routeMsg, "details": err.Error()})
	}
}
