package motoristas

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	db "roteirizador/db/sqlc"
)

const (
	cpfValido      = "529.982.247-25"
	cnhValida      = "12345678900"
	telefoneValido = "11999990000"
)

type fakeRepository struct {
	motoristas map[int64]db.Motorista
	proximoID  int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{motoristas: make(map[int64]db.Motorista)}
}

func (f *fakeRepository) CreateMotorista(_ context.Context, arg db.CreateMotoristaParams) (db.Motorista, error) {
	f.proximoID++
	motorista := db.Motorista{
		ID:           f.proximoID,
		UserID:       arg.UserID,
		Nome:         arg.Nome,
		Cpf:          arg.Cpf,
		Cnh:          arg.Cnh,
		CategoriaCnh: arg.CategoriaCnh,
		ValidadeCnh:  arg.ValidadeCnh,
		Telefone:     arg.Telefone,
		Status:       true,
		CreatedAt:    time.Now(),
	}
	f.motoristas[motorista.ID] = motorista
	return motorista, nil
}

func (f *fakeRepository) UpdateMotorista(_ context.Context, arg db.UpdateMotoristaParams) (db.Motorista, error) {
	motorista, ok := f.motoristas[arg.ID]
	if !ok || motorista.UserID != arg.UserID {
		return db.Motorista{}, sql.ErrNoRows
	}
	motorista.Nome = arg.Nome
	motorista.Cpf = arg.Cpf
	motorista.Cnh = arg.Cnh
	motorista.CategoriaCnh = arg.CategoriaCnh
	motorista.ValidadeCnh = arg.ValidadeCnh
	motorista.Telefone = arg.Telefone
	f.motoristas[arg.ID] = motorista
	return motorista, nil
}

func (f *fakeRepository) DeleteMotorista(_ context.Context, arg db.DeleteMotoristaParams) error {
	motorista, ok := f.motoristas[arg.ID]
	if !ok || motorista.UserID != arg.UserID {
		return nil
	}
	motorista.Status = false
	f.motoristas[arg.ID] = motorista
	return nil
}

func (f *fakeRepository) GetMotoristaById(_ context.Context, id int64) (db.Motorista, error) {
	motorista, ok := f.motoristas[id]
	if !ok || !motorista.Status {
		return db.Motorista{}, sql.ErrNoRows
	}
	return motorista, nil
}

func (f *fakeRepository) GetMotoristasByUserId(_ context.Context, userID int64) ([]db.Motorista, error) {
	var itens []db.Motorista
	for _, motorista := range f.motoristas {
		if motorista.UserID == userID && motorista.Status {
			itens = append(itens, motorista)
		}
	}
	return itens, nil
}

func requestValida() CreateMotoristaRequest {
	return CreateMotoristaRequest{
		Nome:         "Carlos Silva",
		Cpf:          cpfValido,
		Cnh:          cnhValida,
		CategoriaCnh: "D",
		ValidadeCnh:  time.Now().AddDate(2, 0, 0),
		Telefone:     telefoneValido,
	}
}

func TestCreateMotoristaService(t *testing.T) {
	s := NewMotoristasService(newFakeRepository())

	result, err := s.CreateMotoristaService(context.Background(), CreateMotoristaDto{
		CreateMotoristaRequest: requestValida(),
		UserID:                 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.ID == 0 || result.Nome != "Carlos Silva" || !result.Status {
		t.Errorf("motorista inesperado: %+v", result)
	}
	if result.CnhVencida {
		t.Error("CNH com validade futura não está vencida")
	}
}

func TestCreateMotoristaServiceDocumentosInvalidos(t *testing.T) {
	s := NewMotoristasService(newFakeRepository())

	tests := []struct {
		name    string
		mudar   func(*CreateMotoristaRequest)
		wantErr error
	}{
		{"cpf inválido", func(r *CreateMotoristaRequest) { r.Cpf = "12345678900" }, ErrCpfInvalido},
		{"cpf repetido", func(r *CreateMotoristaRequest) { r.Cpf = "11111111111" }, ErrCpfInvalido},
		{"cnh inválida", func(r *CreateMotoristaRequest) { r.Cnh = "12345678999" }, ErrCnhInvalida},
		{"telefone inválido", func(r *CreateMotoristaRequest) { r.Telefone = "123" }, ErrTelefoneInvalido},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := requestValida()
			tt.mudar(&request)

			_, err := s.CreateMotoristaService(context.Background(), CreateMotoristaDto{
				CreateMotoristaRequest: request,
				UserID:                 1,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("esperava %v, obteve %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdateMotoristaService(t *testing.T) {
	repo := newFakeRepository()
	s := NewMotoristasService(repo)

	criado, err := s.CreateMotoristaService(context.Background(), CreateMotoristaDto{
		CreateMotoristaRequest: requestValida(),
		UserID:                 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	request := UpdateMotoristaRequest{
		ID:           criado.ID,
		Nome:         "Carlos Souza",
		Cpf:          cpfValido,
		Cnh:          cnhValida,
		CategoriaCnh: "E",
		ValidadeCnh:  time.Now().AddDate(1, 0, 0),
		Telefone:     telefoneValido,
	}

	result, err := s.UpdateMotoristaService(context.Background(), UpdateMotoristaDto{
		UpdateMotoristaRequest: request,
		UserID:                 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Nome != "Carlos Souza" || result.CategoriaCnh != "E" {
		t.Errorf("atualização não aplicada: %+v", result)
	}

	if _, err := s.UpdateMotoristaService(context.Background(), UpdateMotoristaDto{
		UpdateMotoristaRequest: request,
		UserID:                 99,
	}); !errors.Is(err, ErrMotoristaNaoEncontrado) {
		t.Errorf("motorista de outro usuário deve ser tratado como inexistente, obteve %v", err)
	}
}

func TestDeleteMotoristaService(t *testing.T) {
	repo := newFakeRepository()
	s := NewMotoristasService(repo)

	criado, err := s.CreateMotoristaService(context.Background(), CreateMotoristaDto{
		CreateMotoristaRequest: requestValida(),
		UserID:                 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteMotoristaService(context.Background(), criado.ID, 1); err != nil {
		t.Fatal(err)
	}

	if _, err := s.GetMotoristaByIdService(context.Background(), criado.ID, 1); !errors.Is(err, ErrMotoristaNaoEncontrado) {
		t.Errorf("motorista desativado não deve ser listado, obteve %v", err)
	}

	lista, err := s.GetMotoristasService(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(lista) != 0 {
		t.Errorf("lista deveria estar vazia após desativar, obteve %d", len(lista))
	}
}

func TestCnhVencida(t *testing.T) {
	repo := newFakeRepository()
	s := NewMotoristasService(repo)

	request := requestValida()
	request.ValidadeCnh = time.Now().AddDate(0, -1, 0)

	result, err := s.CreateMotoristaService(context.Background(), CreateMotoristaDto{
		CreateMotoristaRequest: request,
		UserID:                 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !result.CnhVencida {
		t.Error("CNH com validade no passado deve ser marcada como vencida")
	}
}
