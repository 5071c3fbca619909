package routes

import (
	"fretedash/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCorridaRoutes sets up solicitação intake and corrida lifecycle routes.
func SetupCorridaRoutes(r *gin.RouterGroup, solicitacaoHandler *handlers.SolicitacaoHandler, corridaHandler *handlers.CorridaHandler) {
	solicitacoes := r.Group("/solicitacoes")
	{
		solicitacoes.POST("/", corridaHandler.Criar)
		solicitacoes.GET("/", solicitacaoHandler.List)
		solicitacoes.GET("/:id", solicitacaoHandler.GetByID)
		solicitacoes.GET("/:id/corrida", solicitacaoHandler.GetCorrida)
	}

	corridas := r.Group("/corridas")
	{
		corridas.GET("/", corridaHandler.List)
		corridas.GET("/:id", corridaHandler.GetByID)
		corridas.POST("/:id/atribuir", corridaHandler.Atribuir)
		corridas.POST("/:id/finalizar", corridaHandler.Finalizar)
		corridas.POST("/:id/cancelar", corridaHandler.Cancelar)
	}
}
