package compartilhamento

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

func NewCompartilhamentoHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CompartilharRotaHandler godoc
// @Summary Compartilhar uma rota com um motorista.
// @Description Gera o token, o link público e o QR Code da rota e envia o convite por WhatsApp quando houver telefone.
// @Tags Compartilhamentos
// @Accept json
// @Produce json
// @Param request body CompartilharRotaRequest true "Rota a compartilhar"
// @Success 200 {object} CompartilharRotaResponse "Compartilhamento criado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Rota não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /compartilhamentos [post]
// @Security ApiKeyAuth
func (p *Handler) CompartilharRotaHandler(c echo.Context) error {
	var request CompartilharRotaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.CompartilharRotaService(c.Request().Context(), CompartilharRotaDto{
		CompartilharRotaRequest: request,
		UserID:                  payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ReenviarCompartilhamentoHandler godoc
// @Summary Reenviar o convite de um compartilhamento pendente.
// @Description Repete o envio por WhatsApp respeitando o limite de reenvios.
// @Tags Compartilhamentos
// @Accept json
// @Produce json
// @Param request body ReenviarRequest true "Compartilhamento a reenviar"
// @Success 200 {object} ReenviarResponse "Convite reenviado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Compartilhamento não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /compartilhamentos/reenviar [post]
// @Security ApiKeyAuth
func (p *Handler) ReenviarCompartilhamentoHandler(c echo.Context) error {
	var request ReenviarRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.ReenviarCompartilhamentoService(c.Request().Context(), ReenviarDto{
		ReenviarRequest: request,
		UserID:          payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ResponderAceiteHandler godoc
// @Summary Aceitar ou recusar uma rota compartilhada.
// @Description Endpoint público: o token do link é a credencial do motorista.
// @Tags Compartilhamentos
// @Accept json
// @Produce json
// @Param token path string true "Token do compartilhamento"
// @Param request body AceiteRequest true "Resposta do motorista"
// @Success 200 {object} AceiteResponse "Resposta registrada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Compartilhamento não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /compartilhamento/{token}/aceite [put]
func (p *Handler) ResponderAceiteHandler(c echo.Context) error {
	var request AceiteRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.ResponderAceiteService(c.Request().Context(), c.Param("token"), request)
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// RotaCompartilhadaHandler godoc
// @Summary Ver a rota de um compartilhamento.
// @Description Endpoint público com a visão da rota aberta pelo link ou QR Code.
// @Tags Compartilhamentos
// @Produce json
// @Param token path string true "Token do compartilhamento"
// @Success 200 {object} RotaCompartilhadaResponse "Rota compartilhada"
// @Failure 404 {string} string "Compartilhamento não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /compartilhamento/{token} [get]
func (p *Handler) RotaCompartilhadaHandler(c echo.Context) error {
	result, err := p.InterfaceService.ObterRotaCompartilhadaService(c.Request().Context(), c.Param("token"))
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

func statusDoErro(err error) int {
	switch {
	case errors.Is(err, ErrRotaNaoEncontrada), errors.Is(err, ErrCompartilhamentoNaoEncontrado):
		return http.StatusNotFound
	case errors.Is(err, ErrCompartilhamentoRespondido), errors.Is(err, ErrLimiteReenvios), errors.Is(err, ErrSemTelefone):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
