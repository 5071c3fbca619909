package routes

import (
	"fretedash/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupMotoristaRoutes sets up driver registry routes.
func SetupMotoristaRoutes(r *gin.RouterGroup, motoristaHandler *handlers.MotoristaHandler) {
	motoristas := r.Group("/motoristas")
	{
		motoristas.POST("/", motoristaHandler.Criar)
		motoristas.GET("/", motoristaHandler.List)
		motoristas.GET("/:id", motoristaHandler.GetByID)
		motoristas.PUT("/:id", motoristaHandler.Atualizar)
		motoristas.PATCH("/:id/status", motoristaHandler.AtualizarStatus)
		motoristas.DELETE("/:id", motoristaHandler.Excluir)
		motoristas.POST("/:id/documentos", motoristaHandler.EnviarDocumentos)
	}
}
