package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salon-site-server/catalog"
	"salon-site-server/media"
	"salon-site-server/middleware"
	"salon-site-server/services"
	ws "salon-site-server/websocket"
)

// Dependencies are the components the HTTP handlers read from
type Dependencies struct {
	Catalog        *catalog.Store
	Live           *catalog.Store
	Site           *services.SiteContent
	Booking        *services.BookingService
	Images         *media.ImageResolver
	Hub            *ws.Hub
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
}

type handler struct {
	deps Dependencies
}

// SetupRouter builds the gin engine with the middleware stack and every route
func SetupRouter(deps Dependencies) *gin.Engine {
	h := &handler{deps: deps}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))
	router.Use(middleware.InputValidationMiddleware())
	if deps.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(deps.RateLimiter))
	}

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		api.GET("/home", h.getHome)
		api.GET("/plans", h.getPlans)
		api.GET("/reviews", h.getReviews)
		api.GET("/locations", h.getLocations)

		RegisterServiceRoutes(api.Group("/services"), h)
		RegisterBookingRoutes(api, h)

		if deps.Hub != nil {
			api.GET("/ws/reveal", h.revealSocket)
		}
	}

	return router
}

func (h *handler) health(c *gin.Context) {
	body := gin.H{
		"status":  "ok",
		"message": "Salon Site Server is running",
		"time":    time.Now().UTC(),
	}
	if h.deps.Catalog != nil {
		body["catalog"] = gin.H{
			"source":    h.deps.Catalog.Source(),
			"records":   len(h.deps.Catalog.Snapshot()),
			"loaded_at": h.deps.Catalog.LoadedAt(),
		}
	}
	if h.deps.Hub != nil {
		body["reveal_clients"] = h.deps.Hub.ClientCount()
	}
	c.JSON(http.StatusOK, body)
}

func (h *handler) revealSocket(c *gin.Context) {
	ws.ServeWebSocket(h.deps.Hub, c.Writer, c.Request)
}

func errorResponse(c *gin.Context, status int, errMsg, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   errMsg,
		"message": message,
	})
}
