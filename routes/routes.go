package routes

import (
	"net/http"

	"slotswapper/handlers"
	"slotswapper/middleware"
	"slotswapper/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterAuthRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterSwapRoutes(r, hb)
	RegisterHealthRoute(r)
}

// RegisterAuthRoutes registers identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.SignupHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.MeHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterEventRoutes registers the caller's own calendar slot endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.Event.ListEventsHandler)
		api.POST("", hb.Event.CreateEventHandler)
		api.PATCH("/:id", hb.Event.UpdateEventHandler)
		api.DELETE("/:id", hb.Event.DeleteEventHandler)
	}
}

// RegisterSwapRoutes registers the swap engine endpoints.
func RegisterSwapRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/swappable-slots", hb.Swap.ListSwappableHandler)
		api.POST("/swap-request", hb.Swap.ProposeSwapHandler)
		api.POST("/swap-response/:requestId", hb.Swap.RespondToSwapHandler)
		api.GET("/swap-requests", hb.Swap.ListRequestsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
