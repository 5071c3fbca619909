package routes

import (
	"fretedash/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes sets up the admin dashboard metrics routes.
func SetupDashboardRoutes(r *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/resumo", dashboardHandler.Resumo)
	}
}
