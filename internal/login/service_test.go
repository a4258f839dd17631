package login

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"google.golang.org/api/oauth2/v2"

	db "roteirizador/db/sqlc"
	"roteirizador/infra/token"
)

type fakeRepository struct {
	users     map[string]db.User
	proximoID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[string]db.User)}
}

func (f *fakeRepository) GetUser(_ context.Context, arg db.LoginParams) (db.User, error) {
	u, ok := f.users[arg.Email]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeRepository) GetUserByEmail(_ context.Context, email string) (db.User, error) {
	u, ok := f.users[email]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeRepository) CreateUser(_ context.Context, arg db.CreateUserParams) (db.User, error) {
	f.proximoID++
	u := db.User{
		ID:       f.proximoID,
		Name:     arg.Name,
		Email:    arg.Email,
		Password: arg.Password,
		Document: arg.Document,
		Phone:    arg.Phone,
		GoogleID: arg.GoogleID,
		Status:   true,
	}
	f.users[u.Email] = u
	return u, nil
}

type fakeMaker struct{}

func (fakeMaker) CreateTokenUser(id int64, name, email string, profileId int64, document, googleId string, expireAt time.Time) (string, error) {
	return "token-teste", nil
}

func (fakeMaker) VerifyTokenUser(_ string) (*token.PayloadUser, error) {
	return nil, token.ErrInvalidToken
}

func newTestService(repo *fakeRepository) *Service {
	s := NewService(repo, fakeMaker{}, "client-id-teste")
	s.ValidarTokenGoogle = func(_ string) (*oauth2.Tokeninfo, error) {
		return &oauth2.Tokeninfo{
			Audience: "client-id-teste",
			Email:    "google@exemplo.com",
			UserId:   "google-123",
		}, nil
	}
	return s
}

func TestCreateUserELogin(t *testing.T) {
	repo := newFakeRepository()
	s := newTestService(repo)

	criado, err := s.CreateUser(context.Background(), RequestCreateUser{
		Name:     "Ana",
		Email:    "ana@exemplo.com",
		Password: "Senha@123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if criado.Token != "token-teste" || criado.ID == 0 {
		t.Errorf("resposta inesperada: %+v", criado)
	}

	if u := repo.users["ana@exemplo.com"]; u.Password.String == "Senha@123" {
		t.Error("senha não pode ser gravada em texto puro")
	}

	result, err := s.Login(context.Background(), RequestLogin{
		Username: "ana@exemplo.com",
		Password: "Senha@123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Token != "token-teste" || result.Name != "Ana" {
		t.Errorf("login inesperado: %+v", result)
	}
}

func TestLoginSenhaErrada(t *testing.T) {
	repo := newFakeRepository()
	s := newTestService(repo)

	if _, err := s.CreateUser(context.Background(), RequestCreateUser{
		Name:     "Ana",
		Email:    "ana@exemplo.com",
		Password: "Senha@123",
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Login(context.Background(), RequestLogin{
		Username: "ana@exemplo.com",
		Password: "outra-senha",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("esperava credenciais inválidas, obteve %v", err)
	}

	if _, err := s.Login(context.Background(), RequestLogin{
		Username: "ninguem@exemplo.com",
		Password: "Senha@123",
	}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("esperava usuário não encontrado, obteve %v", err)
	}
}

func TestCreateUserDuplicado(t *testing.T) {
	repo := newFakeRepository()
	s := newTestService(repo)

	request := RequestCreateUser{Name: "Ana", Email: "ana@exemplo.com", Password: "Senha@123"}
	if _, err := s.CreateUser(context.Background(), request); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateUser(context.Background(), request); !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("esperava usuário já cadastrado, obteve %v", err)
	}
}

func TestLoginComGoogle(t *testing.T) {
	repo := newFakeRepository()
	s := newTestService(repo)

	if _, err := s.CreateUser(context.Background(), RequestCreateUser{
		Name:  "Conta Google",
		Token: "id-token-google",
	}); err != nil {
		t.Fatal(err)
	}

	u := repo.users["google@exemplo.com"]
	if u.Password.Valid {
		t.Error("conta criada pelo Google não deve ter senha")
	}
	if u.GoogleID.String != "google-123" {
		t.Errorf("google_id não gravado: %+v", u)
	}

	result, err := s.Login(context.Background(), RequestLogin{Token: "id-token-google"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Email != "google@exemplo.com" {
		t.Errorf("login pelo Google inesperado: %+v", result)
	}
}

func TestLoginComGoogleAudienceErrada(t *testing.T) {
	repo := newFakeRepository()
	s := newTestService(repo)
	s.ValidarTokenGoogle = func(_ string) (*oauth2.Tokeninfo, error) {
		return &oauth2.Tokeninfo{Audience: "outro-client", Email: "x@exemplo.com"}, nil
	}

	if _, err := s.Login(context.Background(), RequestLogin{Token: "id-token"}); !errors.Is(err, ErrInvalidClientID) {
		t.Errorf("audience de outro client deve ser rejeitada, obteve %v", err)
	}
}
