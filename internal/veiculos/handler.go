package veiculos

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

func NewVeiculosHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateVeiculoHandler godoc
// @Summary Cadastrar um veículo.
// @Description Cadastra um veículo da frota e completa os dados pela consulta de placa.
// @Tags Veículos
// @Accept json
// @Produce json
// @Param request body CreateVeiculoRequest true "Dados do veículo"
// @Success 200 {object} VeiculoResponse "Veículo cadastrado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /veiculos [post]
// @Security ApiKeyAuth
func (p *Handler) CreateVeiculoHandler(c echo.Context) error {
	var request CreateVeiculoRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.CreateVeiculoService(c.Request().Context(), CreateVeiculoDto{
		CreateVeiculoRequest: request,
		UserID:               payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateVeiculoHandler godoc
// @Summary Atualizar um veículo.
// @Description Atualiza os dados de um veículo do usuário autenticado.
// @Tags Veículos
// @Accept json
// @Produce json
// @Param request body UpdateVeiculoRequest true "Dados do veículo"
// @Success 200 {object} VeiculoResponse "Veículo atualizado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Veículo não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /veiculos [put]
// @Security ApiKeyAuth
func (p *Handler) UpdateVeiculoHandler(c echo.Context) error {
	var request UpdateVeiculoRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.UpdateVeiculoService(c.Request().Context(), UpdateVeiculoDto{
		UpdateVeiculoRequest: request,
		UserID:               payload.ID,
	})
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteVeiculoHandler godoc
// @Summary Desativar um veículo.
// @Description Desativa o cadastro do veículo sem apagar o histórico.
// @Tags Veículos
// @Produce json
// @Param id path int true "ID do veículo"
// @Success 200 {string} string "Veículo desativado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Veículo não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /veiculos/{id} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeleteVeiculoHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	if err := p.InterfaceService.DeleteVeiculoService(c.Request().Context(), id, payload.ID); err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, "Veículo desativado")
}

// GetVeiculosHandler godoc
// @Summary Listar os veículos.
// @Description Lista os veículos ativos do usuário autenticado.
// @Tags Veículos
// @Produce json
// @Success 200 {array} VeiculoResponse "Veículos"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /veiculos [get]
// @Security ApiKeyAuth
func (p *Handler) GetVeiculosHandler(c echo.Context) error {
	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.GetVeiculosService(c.Request().Context(), payload.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetVeiculoByIdHandler godoc
// @Summary Buscar um veículo.
// @Description Busca um veículo pelo ID.
// @Tags Veículos
// @Produce json
// @Param id path int true "ID do veículo"
// @Success 200 {object} VeiculoResponse "Veículo"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Veículo não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /veiculos/{id} [get]
// @Security ApiKeyAuth
func (p *Handler) GetVeiculoByIdHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetUserPayloadToken(c)
	result, err := p.InterfaceService.GetVeiculoByIdService(c.Request().Context(), id, payload.ID)
	if err != nil {
		return c.JSON(statusDoErro(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

func statusDoErro(err error) int {
	switch {
	case errors.Is(err, ErrVeiculoNaoEncontrado):
		return http.StatusNotFound
	case errors.Is(err, ErrPlacaInvalida):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
