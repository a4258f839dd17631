package roteirizador

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roteirizador/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewRoteirizadorHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// OtimizarRotaHandler godoc
// @Summary Otimizar uma rota.
// @Description Agrupa as paradas em pontos de embarque e devolve a sequência otimizada com distâncias e horários.
// @Tags Roteirizador
// @Accept json
// @Produce json
// @Param request body OtimizarRotaRequest true "Paradas e limites de agrupamento"
// @Success 200 {object} OtimizarRotaResponse "Rota otimizada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /roteirizador/otimizar [post]
// @Security ApiKeyAuth
func (p *Handler) OtimizarRotaHandler(c echo.Context) error {
	var request OtimizarRotaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if request.MaxDistanciaCluster < 0 || request.MaxTempoRota < 0 {
		return c.JSON(http.StatusBadRequest, "Limites não podem ser negativos")
	}

	result, err := p.InterfaceService.OtimizarRotaService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
