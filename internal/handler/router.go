package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"club-portal/internal/handler/api"
	"club-portal/internal/handler/middleware"
	"club-portal/internal/pkg/config"
	"club-portal/internal/usecase"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	kitchenHandler *api.KitchenHandler,
	gearHandler *api.GearHandler,
	paymentHandler *api.PaymentHandler,
	memberHandler *api.MemberHandler,
	eventHandler *api.EventHandler,
	carts usecase.CartStore,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, kitchenHandler, gearHandler, paymentHandler, memberHandler, eventHandler, carts)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	kitchenHandler *api.KitchenHandler,
	gearHandler *api.GearHandler,
	paymentHandler *api.PaymentHandler,
	memberHandler *api.MemberHandler,
	eventHandler *api.EventHandler,
	carts usecase.CartStore,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		kitchen := apiGroup.Group("/kitchen")
		{
			addRoutes(kitchen, []route{
				{Method: http.MethodGet, Path: "/menu", Handler: kitchenHandler.WeeklyMenu},
				{Method: http.MethodGet, Path: "/menu/:date", Handler: kitchenHandler.WeeklyMenuForDate},
				{Method: http.MethodGet, Path: "/availability", Handler: kitchenHandler.Availability},
				{Method: http.MethodGet, Path: "/meals/:year/:month/:day", Handler: kitchenHandler.MealCounts},
				{Method: http.MethodPost, Path: "/signup", Handler: kitchenHandler.Signup},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/gear", Handler: gearHandler.ListGear},
			{Method: http.MethodGet, Path: "/members", Handler: memberHandler.ListMembers},
			{Method: http.MethodGet, Path: "/prospectives/:netid", Handler: memberHandler.ProspectiveProfile},
			{Method: http.MethodGet, Path: "/events", Handler: eventHandler.UpcomingEvents},
			// The gateway posts here without any session; rejection outcomes
			// still answer 200 so it stops retrying.
			{Method: http.MethodPost, Path: "/payments/notify", Handler: paymentHandler.Notify},
		})

		cart := apiGroup.Group("/cart")
		cart.Use(middleware.SessionMiddleware(cfg.Session, carts))
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: gearHandler.ViewCart},
				{Method: http.MethodDelete, Path: "", Handler: gearHandler.ClearCart},
				{Method: http.MethodPost, Path: "/items", Handler: gearHandler.AddToCart},
				{Method: http.MethodPost, Path: "/items/remove-one", Handler: gearHandler.RemoveOneFromCart},
				{Method: http.MethodGet, Path: "/checkout", Handler: gearHandler.Checkout},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
