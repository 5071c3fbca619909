package handlers

import (
	"errors"

	"fretedash/internal/models"
	"fretedash/internal/services"
	"fretedash/internal/utils"
	"fretedash/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CorridaHandler struct {
	corridaService services.CorridaService
}

func NewCorridaHandler(corridaService services.CorridaService) *CorridaHandler {
	return &CorridaHandler{
		corridaService: corridaService,
	}
}

// Criar registers a new solicitação with its paired corrida. Accepts plain
// JSON or multipart form-data ("dados" JSON field plus up to 5 "fotos" files).
func (h *CorridaHandler) Criar(c *gin.Context) {
	var request validators.CriarSolicitacaoRequest
	if err := bindDados(c, &request); err != nil {
		utils.BadRequestResponse(c, "Requisição inválida: "+err.Error())
		return
	}

	if errs := validators.ValidateCriarSolicitacao(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	fotos, cleanup, err := arquivosDoForm(c, "fotos")
	if err != nil {
		utils.BadRequestResponse(c, "Falha ao ler as fotos enviadas")
		return
	}
	defer cleanup()

	solicitacao, corrida, err := h.corridaService.Criar(c.Request.Context(), &request, fotos)
	if err != nil {
		if errors.Is(err, services.ErrLimiteFotos) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Solicitação registrada com sucesso", gin.H{
		"solicitacao": solicitacao,
		"corrida":     corrida,
	})
}

// List returns corridas, newest first, optionally filtered by status.
func (h *CorridaHandler) List(c *gin.Context) {
	status := models.CorridaStatus(c.Query("status"))
	params := utils.GetPaginationParams(c)

	corridas, total, err := h.corridaService.List(c.Request.Context(), status, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Corridas listadas com sucesso", corridas, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(corridas),
	})
}

func (h *CorridaHandler) GetByID(c *gin.Context) {
	corridaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de corrida inválido")
		return
	}

	corrida, err := h.corridaService.GetByID(c.Request.Context(), corridaID)
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

// Atribuir assigns an active motorista to a pending corrida.
func (h *CorridaHandler) Atribuir(c *gin.Context) {
	corridaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de corrida inválido")
		return
	}

	var request validators.AtribuirMotoristaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Requisição inválida: "+err.Error())
		return
	}

	if errs := validators.ValidateAtribuirMotorista(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	motoristaID, err := primitive.ObjectIDFromHex(request.MotoristaID)
	if err != nil {
		utils.BadRequestResponse(c, "ID de motorista inválido")
		return
	}

	corrida, err := h.corridaService.Atribuir(c.Request.Context(), corridaID, motoristaID)
	if err != nil {
		h.respondTransicao(c, err)
		return
	}

	utils.SuccessResponse(c, "Motorista atribuído com sucesso", corrida)
}

// Finalizar closes an assigned corrida with its final value and optional
// delivery proof photos.
func (h *CorridaHandler) Finalizar(c *gin.Context) {
	corridaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de corrida inválido")
		return
	}

	var request validators.FinalizarCorridaRequest
	if err := bindDados(c, &request); err != nil {
		utils.BadRequestResponse(c, "Requisição inválida: "+err.Error())
		return
	}

	if errs := validators.ValidateFinalizarCorrida(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	fotos, cleanup, err := arquivosDoForm(c, "fotos")
	if err != nil {
		utils.BadRequestResponse(c, "Falha ao ler as fotos enviadas")
		return
	}
	defer cleanup()

	corrida, uploads, err := h.corridaService.Finalizar(c.Request.Context(), corridaID, &request, fotos)
	if err != nil {
		if errors.Is(err, services.ErrLimiteFotos) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		h.respondTransicao(c, err)
		return
	}

	data := gin.H{"corrida": corrida}
	if uploads != nil {
		data["uploads"] = uploads
	}

	utils.SuccessResponse(c, "Corrida finalizada com sucesso", data)
}

// Cancelar cancels a non-terminal corrida, keeping motorista and valor as is.
func (h *CorridaHandler) Cancelar(c *gin.Context) {
	corridaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de corrida inválido")
		return
	}

	var request validators.CancelarCorridaRequest
	if err := c.ShouldBindJSON(&request); err != nil && err.Error() != "EOF" {
		utils.BadRequestResponse(c, "Requisição inválida: "+err.Error())
		return
	}

	if errs := validators.ValidateCancelarCorrida(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	corrida, err := h.corridaService.Cancelar(c.Request.Context(), corridaID, request.Motivo)
	if err != nil {
		h.respondTransicao(c, err)
		return
	}

	utils.SuccessResponse(c, "Corrida cancelada com sucesso", corrida)
}

func (h *CorridaHandler) respondTransicao(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCorridaNaoEncontrada):
		utils.NotFoundResponse(c, "Corrida")
	case errors.Is(err, services.ErrMotoristaNaoEncontrado):
		utils.NotFoundResponse(c, "Motorista")
	case errors.Is(err, services.ErrTransicaoInvalida):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrConflitoAtribuicao):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrMotoristaInativo):
		utils.BadRequestResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}
