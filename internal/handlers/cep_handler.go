package handlers

import (
	"errors"

	"fretedash/internal/utils"
	"fretedash/pkg/cep"

	"github.com/gin-gonic/gin"
)

type CEPHandler struct {
	cepClient *cep.Client
}

func NewCEPHandler(cepClient *cep.Client) *CEPHandler {
	return &CEPHandler{
		cepClient: cepClient,
	}
}

// Lookup resolves a CEP through ViaCEP for address form autofill.
func (h *CEPHandler) Lookup(c *gin.Context) {
	endereco, err := h.cepClient.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case errors.Is(err, cep.ErrCEPInvalido):
			utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, cep.ErrCEPNaoEncontrado):
			utils.NotFoundResponse(c, "CEP")
		default:
			utils.InternalServerErrorResponse(c)
		}
		return
	}

	utils.SuccessResponse(c, "CEP consultado com sucesso", endereco)
}
