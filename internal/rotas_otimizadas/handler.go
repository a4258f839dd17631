package rotas_otimizadas

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"roteirizador/internal/get_token"
	"roteirizador/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewRotasOtimizadasHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusDoErro(err error) int {
	switch {
	case errors.Is(err, ErrRotaNaoEncontrada):
		return http.StatusNotFound
	case errors.Is(err, ErrTransicaoInvalida):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SalvarRotaHandler godoc
// @Summary Salvar uma rota otimizada.
// @Description Persiste a rota com seus pontos de embarque e métricas de economia.
// @Tags Rotas Otimizadas
// @Accept json
// @Produce json
// @Param request body SalvarRotaRequest true "Rota e pontos de embarque"
// @Success 200 {object} SalvarRotaResponse "Rota salva"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /rotas/salvar [post]
// @Security ApiKeyAuth
func (p *Handler) SalvarRotaHandler(c echo.Context) error {
	var request SalvarRotaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.SalvarRotaService(c.Request().Context(), SalvarRotaDto{
		SalvarRotaRequest: request,
		UserID:            payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// AtualizarStatusHandler godoc
// @Summary Atualizar o status de uma rota.
// @Description Aplica uma transição do ciclo de vida (rascunho, otimizada, ativa, concluida, cancelada).
// @Tags Rotas Otimizadas
// @Accept json
// @Produce json
// @Param request body AtualizarStatusRequest true "Rota e novo status"
// @Success 200 {object} RotaResponse "Rota atualizada"
// @Failure 400 {string} string "Transição Inválida"
// @Failure 404 {string} string "Rota Não Encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /rotas/status [put]
// @Security ApiKeyAuth
func (p *Handler) AtualizarStatusHandler(c echo.Context) error {
	var request AtualizarStatusRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.AtualizarStatusService(c.Request().Context(), AtualizarStatusDto{
		AtualizarStatusRequest: request,
		UserID:                 payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// CriarVersaoHandler godoc
// @Summary Criar uma versão da rota.
// @Description Grava um retrato imutável dos pontos e métricas da rota.
// @Tags Rotas Otimizadas
// @Accept json
// @Produce json
// @Param request body CriarVersaoRequest true "Dados da versão"
// @Success 200 {object} CriarVersaoResponse "Versão criada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Rota Não Encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /rotas/versoes [post]
// @Security ApiKeyAuth
func (p *Handler) CriarVersaoHandler(c echo.Context) error {
	var request CriarVersaoRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.CriarVersaoRotaService(c.Request().Context(), CriarVersaoDto{
		CriarVersaoRequest: request,
		UserID:             payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// HistoricoVersoesHandler godoc
// @Summary Obter o histórico de versões de uma rota.
// @Description Lista as versões da rota ordenadas da mais recente para a mais antiga.
// @Tags Rotas Otimizadas
// @Accept json
// @Produce json
// @Param id path string true "ID da Rota"
// @Success 200 {object} HistoricoVersoesResponse "Histórico de versões"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Rota Não Encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /rotas/{id}/versoes [get]
// @Security ApiKeyAuth
func (p *Handler) HistoricoVersoesHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.ObterHistoricoVersoesService(c.Request().Context(), id, payload.ID)
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ObterRotaHandler godoc
// @Summary Obter uma rota.
// @Description Devolve a rota com seus pontos de embarque ordenados.
// @Tags Rotas Otimizadas
// @Accept json
// @Produce json
// @Param id path string true "ID da Rota"
// @Success 200 {object} RotaResponse "Rota"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Rota Não Encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /rotas/{id} [get]
// @Security ApiKeyAuth
func (p *Handler) ObterRotaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.ObterRotaService(c.Request().Context(), id, payload.ID)
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ListarRotasHandler godoc
// @Summary Listar as rotas do usuário.
// @Description Lista as rotas do usuário autenticado, da mais recente para a mais antiga.
// @Tags Rotas Otimizadas
// @Accept json
// @Produce json
// @Success 200 {array} RotaResponse "Rotas"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /rotas [get]
// @Security ApiKeyAuth
func (p *Handler) ListarRotasHandler(c echo.Context) error {
	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.ListarRotasService(c.Request().Context(), payload.ID)
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// DeletarRotaHandler godoc
// @Summary Excluir uma rota.
// @Description Remove a rota, seus pontos de embarque e versões.
// @Tags Rotas Otimizadas
// @Accept json
// @Produce json
// @Param id path string true "ID da Rota"
// @Success 200 {string} string "Sucesso"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Rota Não Encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /rotas/{id} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeletarRotaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	if err := p.InterfaceService.DeletarRotaService(c.Request().Context(), id, payload.ID); err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, "Rota excluída com sucesso")
}
