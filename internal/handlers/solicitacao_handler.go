package handlers

import (
	"errors"

	"fretedash/internal/models"
	"fretedash/internal/services"
	"fretedash/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SolicitacaoHandler struct {
	solicitacaoService services.SolicitacaoService
}

func NewSolicitacaoHandler(solicitacaoService services.SolicitacaoService) *SolicitacaoHandler {
	return &SolicitacaoHandler{
		solicitacaoService: solicitacaoService,
	}
}

// List returns solicitações, newest first, optionally filtered by status.
func (h *SolicitacaoHandler) List(c *gin.Context) {
	status := models.SolicitacaoStatus(c.Query("status"))
	params := utils.GetPaginationParams(c)

	solicitacoes, total, err := h.solicitacaoService.List(c.Request.Context(), status, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Solicitações listadas com sucesso", solicitacoes, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(solicitacoes),
	})
}

func (h *SolicitacaoHandler) GetByID(c *gin.Context) {
	solicitacaoID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de solicitação inválido")
		return
	}

	solicitacao, err := h.solicitacaoService.GetByID(c.Request.Context(), solicitacaoID)
	if err != nil {
		if errors.Is(err, services.ErrSolicitacaoNaoEncontrada) {
			utils.NotFoundResponse(c, "Solicitação")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Solicitação recuperada com sucesso", solicitacao)
}

// GetCorrida returns the corrida paired with a solicitação.
func (h *SolicitacaoHandler) GetCorrida(c *gin.Context) {
	solicitacaoID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de solicitação inválido")
		return
	}

	corrida, err := h.solicitacaoService.GetCorrida(c.Request.Context(), solicitacaoID)
	if err != nil {
		if errors.Is(err, services.ErrCorridaNaoEncontrada) {
			utils.NotFoundResponse(c, "Corrida")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Corrida recuperada com sucesso", corrida)
}
