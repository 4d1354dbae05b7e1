package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/handlers"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/middleware"
)

// RegisterRoutes wires the API surface. The route casing follows the
// contract the SPA consumes.
func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	projectHandler *handlers.ProjectHandler,
	clientHandler *handlers.ClientHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/Filter", projectHandler.Filter)
		api.GET("/Clients", clientHandler.List)
		api.GET("/Projects/:id", projectHandler.Get)
		api.POST("/Project", projectHandler.Create)
		api.POST("/Client", clientHandler.Create)
		api.PUT("/:id", projectHandler.Update)
		api.DELETE("/:id", projectHandler.Delete)
	}
}
