package login

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	"roteirizador/validation"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service}
}

// Login godoc
// @Summary Autenticar um usuário.
// @Description Autentica por e-mail e senha ou pelo token do Google.
// @Tags Usuários
// @Accept json
// @Produce json
// @Param request body RequestLogin true "Credenciais"
// @Success 200 {object} ResponseLogin "Usuário autenticado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 401 {string} string "Credenciais inválidas"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /login [post]
func (h *Handler) Login(e echo.Context) error {
	var request RequestLogin
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(e.Request().Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidCredentials):
			return e.JSON(http.StatusUnauthorized, err.Error())
		default:
			return e.JSON(http.StatusInternalServerError, err.Error())
		}
	}

	return e.JSON(http.StatusOK, result)
}

// CreateUser godoc
// @Summary Cadastrar um usuário.
// @Description Registra um novo usuário no sistema.
// @Tags Usuários
// @Accept json
// @Produce json
// @Param request body RequestCreateUser true "Dados do usuário"
// @Success 200 {object} ResponseCreateUser "Usuário cadastrado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /create [post]
func (h *Handler) CreateUser(e echo.Context) error {
	var request RequestCreateUser
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	if _, err := mail.ParseAddress(request.Email); err != nil {
		return e.JSON(http.StatusBadRequest, "e-mail inválido")
	}

	if request.Token == "" {
		if ok := validation.ValidatePassword(request.Password); !ok {
			return e.JSON(http.StatusBadRequest, "senha fraca")
		}

		if request.Password != request.ConfirmPassword {
			return e.JSON(http.StatusBadRequest, "senha e confirmação diferentes")
		}
	}

	result, err := h.service.CreateUser(e.Request().Context(), request)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return e.JSON(http.StatusBadRequest, err.Error())
		}
		return e.JSON(http.StatusInternalServerError, err.Error())
	}

	return e.JSON(http.StatusOK, result)
}
