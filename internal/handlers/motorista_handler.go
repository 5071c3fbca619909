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

type MotoristaHandler struct {
	motoristaService services.MotoristaService
}

func NewMotoristaHandler(motoristaService services.MotoristaService) *MotoristaHandler {
	return &MotoristaHandler{
		motoristaService: motoristaService,
	}
}

func (h *MotoristaHandler) Criar(c *gin.Context) {
	var request validators.CriarMotoristaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Requisição inválida: "+err.Error())
		return
	}

	if errs := validators.ValidateCriarMotorista(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	motorista, err := h.motoristaService.Criar(c.Request.Context(), &request)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Motorista cadastrado com sucesso", motorista)
}

// List returns motoristas, optionally filtered by status.
func (h *MotoristaHandler) List(c *gin.Context) {
	status := models.MotoristaStatus(c.Query("status"))
	params := utils.GetPaginationParams(c)

	motoristas, total, err := h.motoristaService.List(c.Request.Context(), status, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Motoristas listados com sucesso", motoristas, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(motoristas),
	})
}

func (h *MotoristaHandler) GetByID(c *gin.Context) {
	motoristaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de motorista inválido")
		return
	}

	motorista, err := h.motoristaService.GetByID(c.Request.Context(), motoristaID)
	if err != nil {
		h.respond(c, err)
		return
	}

	utils.SuccessResponse(c, "Motorista recuperado com sucesso", motorista)
}

func (h *MotoristaHandler) Atualizar(c *gin.Context) {
	motoristaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de motorista inválido")
		return
	}

	var request validators.AtualizarMotoristaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Requisição inválida: "+err.Error())
		return
	}

	if errs := validators.ValidateAtualizarMotorista(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	motorista, err := h.motoristaService.Atualizar(c.Request.Context(), motoristaID, &request)
	if err != nil {
		h.respond(c, err)
		return
	}

	utils.SuccessResponse(c, "Motorista atualizado com sucesso", motorista)
}

// AtualizarStatus toggles the availability status. Corridas already assigned
// to the motorista are not touched.
func (h *MotoristaHandler) AtualizarStatus(c *gin.Context) {
	motoristaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de motorista inválido")
		return
	}

	var request validators.AtualizarStatusMotoristaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Requisição inválida: "+err.Error())
		return
	}

	if errs := validators.ValidateAtualizarStatusMotorista(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	motorista, err := h.motoristaService.AtualizarStatus(c.Request.Context(), motoristaID, models.MotoristaStatus(request.Status))
	if err != nil {
		h.respond(c, err)
		return
	}

	utils.SuccessResponse(c, "Status do motorista atualizado com sucesso", motorista)
}

func (h *MotoristaHandler) Excluir(c *gin.Context) {
	motoristaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de motorista inválido")
		return
	}

	if err := h.motoristaService.Excluir(c.Request.Context(), motoristaID); err != nil {
		h.respond(c, err)
		return
	}

	utils.SuccessResponse(c, "Motorista excluído com sucesso", nil)
}

// EnviarDocumentos receives multipart files: "cnh", "documento_veiculo",
// "foto_perfil" (single) and "identidade" (multiple). All optional.
func (h *MotoristaHandler) EnviarDocumentos(c *gin.Context) {
	motoristaID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de motorista inválido")
		return
	}

	if !isMultipart(c) {
		utils.BadRequestResponse(c, "Envio de documentos requer multipart/form-data")
		return
	}

	docs := &services.DocumentosUpload{}

	for campo, dest := range map[string]**services.UploadArquivo{
		"cnh":               &docs.CNH,
		"documento_veiculo": &docs.DocumentoVeiculo,
		"foto_perfil":       &docs.FotoPerfil,
	} {
		arquivo, closer, err := arquivoDoForm(c, campo)
		if err != nil {
			utils.BadRequestResponse(c, "Falha ao ler o arquivo de "+campo)
			return
		}
		if closer != nil {
			defer closer.Close()
		}
		*dest = arquivo
	}

	identidade, cleanup, err := arquivosDoForm(c, "identidade")
	if err != nil {
		utils.BadRequestResponse(c, "Falha ao ler os documentos de identidade")
		return
	}
	defer cleanup()
	docs.Identidade = identidade

	motorista, err := h.motoristaService.EnviarDocumentos(c.Request.Context(), motoristaID, docs)
	if err != nil {
		h.respond(c, err)
		return
	}

	utils.SuccessResponse(c, "Documentos enviados com sucesso", motorista)
}

func (h *MotoristaHandler) respond(c *gin.Context, err error) {
	if errors.Is(err, services.ErrMotoristaNaoEncontrado) {
		utils.NotFoundResponse(c, "Motorista")
		return
	}
	utils.InternalServerErrorResponse(c)
}
