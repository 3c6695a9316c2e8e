// Package routes wires services, controllers and middleware into the restaurant gin router.
package routes

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/tablekeeper/docs" // Import generated docs
	"github.com/franciscosanchezn/tablekeeper/internal/auth"
	"github.com/franciscosanchezn/tablekeeper/internal/config"
	"github.com/franciscosanchezn/tablekeeper/internal/controllers"
	"github.com/franciscosanchezn/tablekeeper/internal/middleware"
	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/realtime"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/franciscosanchezn/tablekeeper/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the long lived objects the router is built from.
// Publisher and Hub are optional.
type Dependencies struct {
	DB        *gorm.DB
	Config    *config.Config
	Logger    *logrus.Logger
	Publisher services.EventPublisher
	Hub       *realtime.Hub
	Clock     func() time.Time
}

// Services exposes the services built for the router, used by main for seeding
type Services struct {
	Menu         services.MenuService
	Orders       services.OrderService
	Reservations services.ReservationService
	Staff        services.StaffService
	Users        services.UserService
	Clients      services.ClientService
}

func NewServices(deps Dependencies) Services {
	notifiers := services.Notifiers{services.BrokerNotifier{Publisher: deps.Publisher}}
	if deps.Hub != nil {
		notifiers = append(notifiers, deps.Hub)
	}
	return Services{
		Menu:         services.NewMenuService(deps.DB),
		Orders:       services.NewOrderService(deps.DB, notifiers, deps.Clock),
		Reservations: services.NewReservationService(deps.DB, deps.Publisher, deps.Config.TablePoolSize),
		Staff:        services.NewStaffService(deps.DB),
		Users:        services.NewUserService(deps.DB),
		Clients:      services.NewClientService(deps.DB),
	}
}

// NewRouter builds the gin engine with every restaurant route
func NewRouter(deps Dependencies, svc Services) (*gin.Engine, error) {
	if err := validation.RegisterGin(); err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(deps.Config.CORSOrigins))

	tokens := auth.NewTokenIssuer(deps.Config.JWTSecret, deps.Config.TokenTTL)
	oauth := auth.NewOAuthService(deps.DB, deps.Config.JWTSecret, deps.Config.TokenTTL)

	menu := controllers.NewMenuController(svc.Menu)
	orders := controllers.NewOrderController(svc.Orders)
	reservations := controllers.NewReservationController(svc.Reservations)
	staff := controllers.NewStaffController(svc.Staff)
	authController := controllers.NewAuthController(svc.Users, tokens)
	clients := controllers.NewClientController(svc.Clients)

	requireAuth := middleware.JWTAuth([]byte(deps.Config.JWTSecret))
	staffOrOwner := middleware.RequireRole(models.RoleStaff, models.RoleOwner)
	ownerOnly := middleware.RequireRole(models.RoleOwner)

	router.GET("/health", healthCheckHandler(deps.Hub))

	api := router.Group("/api")
	{
		authApi := api.Group("/auth")
		{
			authApi.POST("/login", authController.Login)
			authApi.POST("/register", authController.Register)
			authApi.GET("/me", requireAuth, authController.Me)
			authApi.GET("/logout", requireAuth, authController.Logout)
		}

		api.POST("/oauth/token", oauth.HandleToken)

		clientsApi := api.Group("/clients", requireAuth, ownerOnly)
		{
			clientsApi.POST("", clients.CreateClient)
			clientsApi.GET("", clients.ListClients)
			clientsApi.DELETE("/:id", clients.DeleteClient)
		}

		menuApi := api.Group("/menu")
		{
			menuApi.GET("", menu.List)
			menuApi.GET("/featured", menu.Featured)
			menuApi.GET("/:id", menu.Get)
			menuApi.POST("", requireAuth, staffOrOwner, menu.Create)
			menuApi.PUT("/:id", requireAuth, staffOrOwner, menu.Replace)
			menuApi.PATCH("/:id/status", requireAuth, staffOrOwner, menu.SetStatus)
			menuApi.DELETE("/:id", requireAuth, ownerOnly, menu.Delete)
		}

		ordersApi := api.Group("/orders")
		{
			ordersApi.POST("", orders.Create)
			ordersApi.GET("", requireAuth, staffOrOwner, orders.List)
			ordersApi.GET("/:id", requireAuth, staffOrOwner, orders.Get)
			ordersApi.PATCH("/:id", requireAuth, staffOrOwner, orders.Update)
			ordersApi.PATCH("/:id/status", requireAuth, staffOrOwner, orders.SetStatus)
			ordersApi.DELETE("/:id", requireAuth, ownerOnly, orders.Delete)
		}

		reservationsApi := api.Group("/reservations")
		{
			reservationsApi.POST("", reservations.Create)
			reservationsApi.GET("", requireAuth, staffOrOwner, reservations.List)
			reservationsApi.PATCH("/:id/status", requireAuth, staffOrOwner, reservations.SetStatus)
			reservationsApi.DELETE("/:id", requireAuth, staffOrOwner, reservations.Delete)
		}
		api.GET("/available-tables", reservations.AvailableTables)

		staffApi := api.Group("/staff", requireAuth, ownerOnly)
		{
			staffApi.GET("", staff.List)
			staffApi.GET("/:id", staff.Get)
			staffApi.POST("", staff.Create)
			staffApi.PUT("/:id", staff.Replace)
			staffApi.DELETE("/:id", staff.Delete)
			staffApi.PATCH("/:id/status", staff.SetStatus)
		}
	}

	if deps.Hub != nil {
		router.GET("/ws/orders", deps.Hub.HandleWebSocket)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, nil
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "tablekeeper-restaurant",
		}
		if hub != nil {
			body["ws_clients"] = hub.ClientCount()
		}
		c.JSON(http.StatusOK, body)
	}
}
