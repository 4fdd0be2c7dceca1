package httpserver

import (
	"context"
	"encoding/json"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cardaris-portal/internal/domain"
	"cardaris-portal/internal/logger"
	profilesvc "cardaris-portal/internal/service/profile"
)

// ProfileService reads and writes portal profiles.
type ProfileService interface {
	Get(ctx context.Context, customerID string) (domain.Profile, error)
	Update(ctx context.Context, customerID string, in profilesvc.UpdateInput) (domain.Profile, error)
}

// OrderService lists orders and serves order details.
type OrderService interface {
	List(ctx context.Context, customerID string) ([]domain.OrderSummary, error)
	Get(ctx context.Context, customerID, orderID string) (*domain.OrderDetail, error)
}

// AddressService lists customer addresses.
type AddressService interface {
	List(ctx context.Context, customerID string) ([]json.RawMessage, error)
}

// TicketService handles the ticket mock-up.
type TicketService interface {
	List(ctx context.Context) []domain.Ticket
	Create(ctx context.Context, payload map[string]any)
}

// Deps bundles everything the routes need.
type Deps struct {
	ProfileSvc ProfileService
	OrderSvc   OrderService
	AddressSvc AddressService
	TicketSvc  TicketService

	// TestCustomerID is the fallback identifier for single-tenant staging.
	TestCustomerID string
	// ShopifyConfigured feeds the service descriptor on GET /.
	ShopifyConfigured bool
}

// buildRouter wires the portal routes.
func buildRouter(log *zap.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(logger.GinMiddleware(log), logger.Recovery(log), cors.Default())

	ids := requestGate{configured: deps.ShopifyConfigured, fallback: deps.TestCustomerID}

	router.GET("/", rootHandler(deps))
	router.GET("/health", healthHandler)

	router.GET("/profile", getProfileHandler(deps.ProfileSvc, ids))
	router.POST("/profile/update", updateProfileHandler(deps.ProfileSvc, ids))

	router.GET("/orders", listOrdersHandler(deps.OrderSvc, ids))
	router.GET("/orders/:orderId", getOrderHandler(deps.OrderSvc, ids))

	router.GET("/addresses", listAddressesHandler(deps.AddressSvc, ids))

	router.GET("/tickets", listTicketsHandler(deps.TicketSvc))
	router.POST("/tickets/new", createTicketHandler(deps.TicketSvc))

	return router
}
