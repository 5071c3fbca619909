package handlers

import (
	"fretedash/internal/services"
	"fretedash/internal/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Resumo recomputes the dashboard numbers on every call; nothing here is
// cached, an assignment made a second ago must show up.
func (h *DashboardHandler) Resumo(c *gin.Context) {
	resumo, err := h.dashboardService.Resumo(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Resumo do painel recuperado com sucesso", resumo)
}
