package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/middleware"
	"github.com/vendaflow/pos-api/internal/service"
	"github.com/vendaflow/pos-api/internal/service/pubsub"
	"github.com/vendaflow/pos-api/pkg/logger"
)

type Server struct {
	bootstrap     *BootstrapHandler
	passwordReset *PasswordResetHandler
	commission    *CommissionHandler
	order         *OrderHandler
	receivable    *ReceivableHandler
	settings      *SettingsHandler
	customer      *CustomerHandler
	product       *ProductHandler
	websocket     *WebSocketHandler
	auth          *middleware.AuthMiddleware
	rateLimit     *middleware.RateLimitMiddleware
	validation    *middleware.ValidationMiddleware
}

func NewServer(
	bootstrapService *service.BootstrapService,
	passwordResetService *service.PasswordResetService,
	commissionService *service.CommissionService,
	orderService *service.OrderService,
	receivableService *service.ReceivableService,
	settingsService *service.SettingsService,
	customerService *service.CustomerService,
	productService *service.ProductService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		bootstrap:     NewBootstrapHandler(bootstrapService),
		passwordReset: NewPasswordResetHandler(passwordResetService),
		commission:    NewCommissionHandler(commissionService),
		order:         NewOrderHandler(orderService),
		receivable:    NewReceivableHandler(receivableService),
		settings:      NewSettingsHandler(settingsService),
		customer:      NewCustomerHandler(customerService),
		product:       NewProductHandler(productService),
		websocket:     NewWebSocketHandler(logger, pubsub),
		auth:          auth,
		rateLimit:     rateLimit,
		validation:    validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Security middleware runs before anything else
	api.Use(middleware.CORS())
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max, imports included
	api.Use(s.validation.ValidateContentType("application/json", "multipart/form-data"))

	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	adminOrManager := s.auth.RequireAnyRole(string(domain.RoleAdmin), string(domain.RoleManager))

	{
		auth := api.Group("/auth")
		{
			// Public: called before the account is provisioned
			auth.POST("/password-reset", s.passwordReset.RequestReset)
			// Authenticated but not yet tenant-scoped
			auth.POST("/ensure", s.auth.JWTAuth(), s.bootstrap.EnsureUser)
		}

		commissions := api.Group("/commissions", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			commissions.GET("", s.commission.GetReport)
		}

		orders := api.Group("/orders", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			orders.GET("", s.order.ListOrders)
		}

		receivables := api.Group("/receivables", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			receivables.POST("", s.receivable.CreateReceivable)
			receivables.POST("/bulk", s.receivable.BulkCreateReceivables)
			receivables.GET("", s.receivable.ListReceivables)
			receivables.GET("/search", s.receivable.SearchReceivables)
			receivables.PUT("/:id/pay", s.receivable.MarkPaid)
			receivables.DELETE("/:id", s.receivable.DeleteReceivable)
			receivables.POST("/archive", adminOrManager, s.receivable.ScheduleArchive)
			receivables.GET("/stream", s.websocket.HandleWebSocket)
		}

		settings := api.Group("/settings", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			settings.GET("", s.settings.GetSettings)
			settings.PUT("", adminOrManager, s.settings.UpdateSettings)
			settings.POST("/resolve", s.settings.ResolveSettings)
		}

		customers := api.Group("/customers", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			customers.POST("", s.customer.CreateCustomer)
			customers.GET("", s.customer.ListCustomers)
			customers.POST("/import", s.customer.ImportCustomers)
			customers.GET("/export", s.customer.ExportCustomers)
			customers.GET("/template", s.customer.CustomerTemplate)
		}

		products := api.Group("/products", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			products.POST("", s.product.CreateProduct)
			products.GET("", s.product.ListProducts)
			products.POST("/import", s.product.ImportProducts)
			products.GET("/export", s.product.ExportProducts)
			products.GET("/template", s.product.ProductTemplate)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting events
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
