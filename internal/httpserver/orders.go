package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listOrdersHandler(svc OrderService, ids requestGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := ids.customerID(c)
		if err != nil {
			respondError(c, "Erreur chargement commandes", err)
			return
		}

		orders, err := svc.List(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, "Erreur chargement commandes", err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(svc OrderService, ids requestGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := ids.customerID(c)
		if err != nil {
			respondError(c, "Erreur chargement détail commande", err)
			return
		}

		detail, err := svc.Get(c.Request.Context(), customerID, c.Param("orderId"))
		if err != nil {
			respondError(c, "Erreur chargement détail commande", err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
