package motoristas

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

func NewMotoristasHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateMotoristaHandler godoc
// @Summary Cadastrar um motorista.
// @Description Cadastra um motorista da frota validando CPF, CNH e telefone.
// @Tags Motoristas
// @Accept json
// @Produce json
// @Param request body CreateMotoristaRequest true "Dados do motorista"
// @Success 200 {object} MotoristaResponse "Motorista cadastrado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /motoristas [post]
// @Security ApiKeyAuth
func (p *Handler) CreateMotoristaHandler(c echo.Context) error {
	var request CreateMotoristaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.CreateMotoristaService(c.Request().Context(), CreateMotoristaDto{
		CreateMotoristaRequest: request,
		UserID:                 payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateMotoristaHandler godoc
// @Summary Atualizar um motorista.
// @Description Atualiza os dados de um motorista do usuário autenticado.
// @Tags Motoristas
// @Accept json
// @Produce json
// @Param request body UpdateMotoristaRequest true "Dados do motorista"
// @Success 200 {object} MotoristaResponse "Motorista atualizado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Motorista não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /motoristas [put]
// @Security ApiKeyAuth
func (p *Handler) UpdateMotoristaHandler(c echo.Context) error {
	var request UpdateMotoristaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.UpdateMotoristaService(c.Request().Context(), UpdateMotoristaDto{
		UpdateMotoristaRequest: request,
		UserID:                 payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteMotoristaHandler godoc
// @Summary Desativar um motorista.
// @Description Desativa o cadastro do motorista sem apagar o histórico.
// @Tags Motoristas
// @Produce json
// @Param id path int true "ID do motorista"
// @Success 200 {string} string "Motorista desativado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Motorista não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /motoristas/{id} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeleteMotoristaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	if err := p.InterfaceService.DeleteMotoristaService(c.Request().Context(), id, payload.ID); err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, "Motorista desativado")
}

// GetMotoristasHandler godoc
// @Summary Listar os motoristas.
// @Description Lista os motoristas ativos do usuário autenticado.
// @Tags Motoristas
// @Produce json
// @Success 200 {array} MotoristaResponse "Motoristas"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /motoristas [get]
// @Security ApiKeyAuth
func (p *Handler) GetMotoristasHandler(c echo.Context) error {
	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.GetMotoristasService(c.Request().Context(), payload.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetMotoristaByIdHandler godoc
// @Summary Buscar um motorista.
// @Description Busca um motorista pelo ID.
// @Tags Motoristas
// @Produce json
// @Param id path int true "ID do motorista"
// @Success 200 {object} MotoristaResponse "Motorista"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Motorista não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /motoristas/{id} [get]
// @Security ApiKeyAuth
func (p *Handler) GetMotoristaByIdHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.GetMotoristaByIdService(c.Request().Context(), id, payload.ID)
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

func statusDoErro(err error) int {
	switch {
	case errors.Is(err, ErrMotoristaNaoEncontrado):
		return http.StatusNotFound
	case errors.Is(err, ErrCpfInvalido), errors.Is(err, ErrCnhInvalida), errors.Is(err, ErrTelefoneInvalido):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
