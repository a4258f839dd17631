package veiculos

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	db "roteirizador/db/sqlc"
	"roteirizador/pkg/plate"
)

type fakeRepository struct {
	veiculos  map[int64]db.Veiculo
	proximoID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{veiculos: make(map[int64]db.Veiculo)}
}

func (f *fakeRepository) CreateVeiculo(_ context.Context, arg db.CreateVeiculoParams) (db.Veiculo, error) {
	f.proximoID++
	veiculo := db.Veiculo{
		ID:         f.proximoID,
		UserID:     arg.UserID,
		Placa:      arg.Placa,
		Modelo:     arg.Modelo,
		Marca:      arg.Marca,
		Ano:        arg.Ano,
		Cor:        arg.Cor,
		Capacidade: arg.Capacidade,
		Status:     true,
		CreatedAt:  time.Now(),
	}
	f.veiculos[veiculo.ID] = veiculo
	return veiculo, nil
}

func (f *fakeRepository) UpdateVeiculo(_ context.Context, arg db.UpdateVeiculoParams) (db.Veiculo, error) {
	veiculo, ok := f.veiculos[arg.ID]
	if !ok || veiculo.UserID != arg.UserID {
		return db.Veiculo{}, sql.ErrNoRows
	}
	veiculo.Placa = arg.Placa
	veiculo.Modelo = arg.Modelo
	veiculo.Marca = arg.Marca
	veiculo.Ano = arg.Ano
	veiculo.Cor = arg.Cor
	veiculo.Capacidade = arg.Capacidade
	f.veiculos[arg.ID] = veiculo
	return veiculo, nil
}

func (f *fakeRepository) DeleteVeiculo(_ context.Context, arg db.DeleteVeiculoParams) error {
	veiculo, ok := f.veiculos[arg.ID]
	if !ok || veiculo.UserID != arg.UserID {
		return nil
	}
	veiculo.Status = false
	f.veiculos[arg.ID] = veiculo
	return nil
}

func (f *fakeRepository) GetVeiculoById(_ context.Context, id int64) (db.Veiculo, error) {
	veiculo, ok := f.veiculos[id]
	if !ok || !veiculo.Status {
		return db.Veiculo{}, sql.ErrNoRows
	}
	return veiculo, nil
}

func (f *fakeRepository) GetVeiculosByUserId(_ context.Context, userID int64) ([]db.Veiculo, error) {
	var itens []db.Veiculo
	for _, veiculo := range f.veiculos {
		if veiculo.UserID == userID && veiculo.Status {
			itens = append(itens, veiculo)
		}
	}
	return itens, nil
}

func newTestService(repo *fakeRepository, consulta func(ctx context.Context, placa string) (*plate.DadosVeiculo, error)) *Service {
	s := NewVeiculosService(repo)
	s.ConsultarPlaca = consulta
	return s
}

func semConsulta(_ context.Context, _ string) (*plate.DadosVeiculo, error) {
	return nil, errors.New("provedor indisponível")
}

func TestCreateVeiculoService(t *testing.T) {
	s := newTestService(newFakeRepository(), semConsulta)

	result, err := s.CreateVeiculoService(context.Background(), CreateVeiculoDto{
		CreateVeiculoRequest: CreateVeiculoRequest{
			Placa:      "abc-1234",
			Modelo:     "Sprinter",
			Capacidade: 20,
		},
		UserID: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Placa != "ABC1234" {
		t.Errorf("placa deve ser normalizada, obteve %q", result.Placa)
	}
	if result.Modelo != "Sprinter" || result.Capacidade != 20 {
		t.Errorf("veículo inesperado: %+v", result)
	}
}

func TestCreateVeiculoServicePlacaInvalida(t *testing.T) {
	s := newTestService(newFakeRepository(), semConsulta)

	for _, placa := range []string{"", "1234ABC", "AB12345", "ABCD123"} {
		if _, err := s.CreateVeiculoService(context.Background(), CreateVeiculoDto{
			CreateVeiculoRequest: CreateVeiculoRequest{Placa: placa},
			UserID:               1,
		}); !errors.Is(err, ErrPlacaInvalida) {
			t.Errorf("placa %q deveria ser rejeitada, obteve %v", placa, err)
		}
	}
}

func TestCreateVeiculoServiceEnriqueceComConsulta(t *testing.T) {
	consulta := func(_ context.Context, placa string) (*plate.DadosVeiculo, error) {
		return &plate.DadosVeiculo{
			Placa:             placa,
			Fabricante:        "Mercedes-Benz",
			Modelo:            "Sprinter 416",
			AnoModelo:         2022,
			Cor:               "Branca",
			QuantidadeLugares: 19,
		}, nil
	}
	s := newTestService(newFakeRepository(), consulta)

	result, err := s.CreateVeiculoService(context.Background(), CreateVeiculoDto{
		CreateVeiculoRequest: CreateVeiculoRequest{
			Placa: "BRA2E19",
			Cor:   "Prata",
		},
		UserID: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.Modelo != "Sprinter 416" || result.Marca != "Mercedes-Benz" || result.Ano != "2022" || result.Capacidade != 19 {
		t.Errorf("campos vazios devem ser completados pela consulta: %+v", result)
	}
	if result.Cor != "Prata" {
		t.Errorf("campo informado pelo usuário não deve ser sobrescrito, obteve %q", result.Cor)
	}
}

func TestCreateVeiculoServiceConsultaIndisponivel(t *testing.T) {
	s := newTestService(newFakeRepository(), semConsulta)

	result, err := s.CreateVeiculoService(context.Background(), CreateVeiculoDto{
		CreateVeiculoRequest: CreateVeiculoRequest{Placa: "ABC1234"},
		UserID:               1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Placa != "ABC1234" {
		t.Errorf("cadastro deve seguir mesmo sem a consulta: %+v", result)
	}
}

func TestUpdateEDeleteVeiculoService(t *testing.T) {
	repo := newFakeRepository()
	s := newTestService(repo, semConsulta)

	criado, err := s.CreateVeiculoService(context.Background(), CreateVeiculoDto{
		CreateVeiculoRequest: CreateVeiculoRequest{Placa: "ABC1234", Capacidade: 15},
		UserID:               1,
	})
	if err != nil {
		t.Fatal(err)
	}

	atualizado, err := s.UpdateVeiculoService(context.Background(), UpdateVeiculoDto{
		UpdateVeiculoRequest: UpdateVeiculoRequest{
			ID:         criado.ID,
			Placa:      "BRA2E19",
			Capacidade: 44,
		},
		UserID: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if atualizado.Placa != "BRA2E19" || atualizado.Capacidade != 44 {
		t.Errorf("atualização não aplicada: %+v", atualizado)
	}

	if _, err := s.UpdateVeiculoService(context.Background(), UpdateVeiculoDto{
		UpdateVeiculoRequest: UpdateVeiculoRequest{ID: criado.ID, Placa: "ABC1234"},
		UserID:               99,
	}); !errors.Is(err, ErrVeiculoNaoEncontrado) {
		t.Errorf("veículo de outro usuário deve ser tratado como inexistente, obteve %v", err)
	}

	if err := s.DeleteVeiculoService(context.Background(), criado.ID, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetVeiculoByIdService(context.Background(), criado.ID, 1); !errors.Is(err, ErrVeiculoNaoEncontrado) {
		t.Errorf("veículo desativado não deve ser listado, obteve %v", err)
	}
}
