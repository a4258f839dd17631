package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roteirizador/internal/get_token"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewDashboardHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// GetDashboardHandler godoc
// @Summary Painel da operação.
// @Description Consolida rotas por status, economia acumulada, frota ativa, duplicatas e importações recentes.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse "Painel"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /dashboard [get]
// @Security ApiKeyAuth
func (p *Handler) GetDashboardHandler(c echo.Context) error {
	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.GetDashboardService(c.Request().Context(), payload.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
