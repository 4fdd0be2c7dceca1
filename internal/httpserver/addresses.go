package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listAddressesHandler(svc AddressService, ids requestGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := ids.customerID(c)
		if err != nil {
			respondError(c, "Erreur chargement adresses", err)
			return
		}

		addresses, err := svc.List(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, "Erreur chargement adresses", err)
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}
