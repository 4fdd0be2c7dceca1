package httpserver

import (
	"github.com/gin-gonic/gin"

	"cardaris-portal/internal/domain"
)

// requestGate front-runs every route that talks to the upstream API.
// The configured check comes first, then the customer identifier:
// explicit ?customerId= wins, else the configured fallback, else none.
type requestGate struct {
	configured bool
	fallback   string
}

func (g requestGate) customerID(c *gin.Context) (string, error) {
	if !g.configured {
		return "", domain.ErrNotConfigured
	}
	if id := c.Query("customerId"); id != "" {
		return id, nil
	}
	if g.fallback != "" {
		return g.fallback, nil
	}
	return "", domain.ErrNoCustomerID
}
