package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profilesvc "cardaris-portal/internal/service/profile"
)

func getProfileHandler(svc ProfileService, ids requestGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := ids.customerID(c)
		if err != nil {
			respondError(c, "Erreur serveur /profile", err)
			return
		}

		profile, err := svc.Get(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, "Erreur serveur /profile", err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func updateProfileHandler(svc ProfileService, ids requestGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := ids.customerID(c)
		if err != nil {
			respondError(c, "Erreur update profile", err)
			return
		}

		// An absent or unreadable body updates with empty fields, like the
		// portal has always done; binding errors are not fatal here.
		var in profilesvc.UpdateInput
		_ = c.ShouldBindJSON(&in)

		profile, err := svc.Update(c.Request.Context(), customerID, in)
		if err != nil {
			respondError(c, "Erreur update profile", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "profile": profile})
	}
}
