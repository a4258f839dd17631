package login

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"google.golang.org/api/oauth2/v2"

	db "roteirizador/db/sqlc"
	"roteirizador/infra/token"
	"roteirizador/pkg/sso"
)

var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidClientID    = errors.New("client ID inválido")
	ErrUserAlreadyExists  = errors.New("usuário já cadastrado")
)

type ServiceInterface interface {
	Login(ctx context.Context, data RequestLogin) (ResponseLogin, error)
	CreateUser(ctx context.Context, data RequestCreateUser) (ResponseCreateUser, error)
}

type Service struct {
	repository         RepositoryInterface
	maker              token.Maker
	googleClientID     string
	ValidarTokenGoogle func(token string) (*oauth2.Tokeninfo, error)
}

func NewService(repository RepositoryInterface, maker token.Maker, googleClientID string) *Service {
	return &Service{
		repository:         repository,
		maker:              maker,
		googleClientID:     googleClientID,
		ValidarTokenGoogle: sso.ValidateGoogleToken,
	}
}

func (s *Service) Login(ctx context.Context, data RequestLogin) (ResponseLogin, error) {
	emailSearch := data.Username
	googleIDSearch := ""

	if data.Token != "" {
		googleToken, err := s.ValidarTokenGoogle(data.Token)
		if err != nil {
			return ResponseLogin{}, err
		}
		if googleToken.Audience != s.googleClientID {
			return ResponseLogin{}, ErrInvalidClientID
		}
		emailSearch = googleToken.Email
		googleIDSearch = googleToken.UserId
	}

	result, err := s.repository.GetUser(ctx, db.LoginParams{
		Email:    emailSearch,
		GoogleID: sql.NullString{String: googleIDSearch, Valid: true},
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResponseLogin{}, ErrUserNotFound
		}
		return ResponseLogin{}, err
	}

	if data.Token == "" {
		if !CheckPasswordHash(data.Password, result.Password.String) {
			return ResponseLogin{}, ErrInvalidCredentials
		}
	}

	tokenStr, err := s.maker.CreateTokenUser(
		result.ID,
		result.Name,
		result.Email,
		result.ProfileID.Int64,
		result.Document.String,
		result.GoogleID.String,
		time.Now().Add(24*time.Hour).UTC(),
	)
	if err != nil {
		return ResponseLogin{}, err
	}

	return ResponseLogin{
		ID:    result.ID,
		Name:  result.Name,
		Email: result.Email,
		Token: tokenStr,
	}, nil
}

func (s *Service) CreateUser(ctx context.Context, data RequestCreateUser) (ResponseCreateUser, error) {
	userEmail := data.Email
	userGoogleID := ""

	u, err := s.repository.GetUserByEmail(ctx, userEmail)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return ResponseCreateUser{}, err
	}
	if u.ID != 0 {
		return ResponseCreateUser{}, ErrUserAlreadyExists
	}

	var newPassword sql.NullString
	if data.Password != "" {
		hashedPassword, err := HashPassword(data.Password)
		if err != nil {
			return ResponseCreateUser{}, err
		}
		newPassword = sql.NullString{String: hashedPassword, Valid: true}
	}

	if data.Token != "" {
		googleToken, err := s.ValidarTokenGoogle(data.Token)
		if err != nil {
			return ResponseCreateUser{}, err
		}
		if googleToken.Audience != s.googleClientID {
			return ResponseCreateUser{}, ErrInvalidClientID
		}
		userEmail = googleToken.Email
		userGoogleID = googleToken.UserId
		newPassword = sql.NullString{}
	}

	result, err := s.repository.CreateUser(ctx, db.CreateUserParams{
		Name:     data.Name,
		Email:    userEmail,
		Password: newPassword,
		Document: sql.NullString{String: data.Document, Valid: true},
		Phone:    sql.NullString{String: data.Telephone, Valid: true},
		GoogleID: sql.NullString{String: userGoogleID, Valid: true},
	})
	if err != nil {
		return ResponseCreateUser{}, err
	}

	tokenStr, err := s.maker.CreateTokenUser(
		result.ID,
		result.Name,
		result.Email,
		result.ProfileID.Int64,
		result.Document.String,
		result.GoogleID.String,
		time.Now().Add(24*time.Hour).UTC(),
	)
	if err != nil {
		return ResponseCreateUser{}, err
	}

	return ResponseCreateUser{
		ID:    result.ID,
		Token: tokenStr,
	}, nil
}
