package routes

import (
	"fretedash/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCEPRoutes sets up the address lookup routes.
func SetupCEPRoutes(r *gin.RouterGroup, cepHandler *handlers.CEPHandler) {
	ceps := r.Group("/ceps")
	{
		ceps.GET("/:cep", cepHandler.Lookup)
	}
}
