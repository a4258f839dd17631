package importacao

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roteirizador/internal/get_token"
	"roteirizador/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewImportacaoHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ImportarViagensHandler godoc
// @Summary Importar viagens de uma planilha.
// @Description Recebe a planilha em base64, extrai as viagens da aba do turno e roda a detecção de duplicatas.
// @Tags Importações
// @Accept json
// @Produce json
// @Param request body ImportarViagensRequest true "Planilha em base64"
// @Success 200 {object} ImportarViagensResponse "Resultado da importação"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /importacoes [post]
// @Security ApiKeyAuth
func (p *Handler) ImportarViagensHandler(c echo.Context) error {
	var request ImportarViagensRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if request.LimiarDuplicatas < 0 {
		return c.JSON(http.StatusBadRequest, "Limiar não pode ser negativo")
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.ImportarViagensService(c.Request().Context(), ImportarViagensDto{
		ImportarViagensRequest: request,
		UserID:                 payload.ID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// HistoricoImportacoesHandler godoc
// @Summary Listar o histórico de importações.
// @Description Lista as importações do usuário autenticado, da mais recente para a mais antiga.
// @Tags Importações
// @Accept json
// @Produce json
// @Success 200 {array} HistoricoImportacaoResponse "Histórico de importações"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /importacoes [get]
// @Security ApiKeyAuth
func (p *Handler) HistoricoImportacoesHandler(c echo.Context) error {
	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.HistoricoImportacoesService(c.Request().Context(), payload.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
