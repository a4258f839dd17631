package duplicatas

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roteirizador/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewDuplicatasHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// DetectarDuplicatasHandler godoc
// @Summary Detectar endereços duplicados.
// @Description Compara os endereços informados entre si e, opcionalmente, contra os já persistidos.
// @Tags Duplicatas
// @Accept json
// @Produce json
// @Param request body DetectarDuplicatasRequest true "Lista de endereços"
// @Success 200 {object} DetectarDuplicatasResponse "Duplicatas detectadas"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /duplicatas/detectar [post]
// @Security ApiKeyAuth
func (p *Handler) DetectarDuplicatasHandler(c echo.Context) error {
	var request DetectarDuplicatasRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if request.Limiar < 0 {
		return c.JSON(http.StatusBadRequest, "Limiar não pode ser negativo")
	}

	result, err := p.InterfaceService.DetectarDuplicatasService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// SugerirMesclagemHandler godoc
// @Summary Sugerir ações de mesclagem.
// @Description Detecta duplicatas e converte os pares em ações de mesclagem ou revisão manual.
// @Tags Duplicatas
// @Accept json
// @Produce json
// @Param request body DetectarDuplicatasRequest true "Lista de endereços"
// @Success 200 {array} AcaoMesclagem "Ações sugeridas"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /duplicatas/sugerir [post]
// @Security ApiKeyAuth
func (p *Handler) SugerirMesclagemHandler(c echo.Context) error {
	var request DetectarDuplicatasRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	detectadas, err := p.InterfaceService.DetectarDuplicatasService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, p.InterfaceService.SugerirAcoesMesclagemService(detectadas.Duplicatas))
}

// RevisarDuplicatasHandler godoc
// @Summary Revisar duplicatas detectadas.
// @Description Aplica as decisões do operador sobre cada par duplicado (mesclar, separar ou ignorar).
// @Tags Duplicatas
// @Accept json
// @Produce json
// @Param request body RevisarDuplicatasRequest true "Decisões de revisão"
// @Success 200 {object} RevisarDuplicatasResponse "Resultado da revisão"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /duplicatas/revisar [put]
// @Security ApiKeyAuth
func (p *Handler) RevisarDuplicatasHandler(c echo.Context) error {
	var request RevisarDuplicatasRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.RevisarDuplicatasService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
