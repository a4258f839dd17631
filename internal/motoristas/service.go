package motoristas

import (
	"context"
	"database/sql"
	"errors"

	db "roteirizador/db/sqlc"
	"roteirizador/validation"
)

var (
	ErrMotoristaNaoEncontrado = errors.New("motorista não encontrado")
	ErrCpfInvalido            = errors.New("CPF inválido")
	ErrCnhInvalida            = errors.New("CNH inválida")
	ErrTelefoneInvalido       = errors.New("telefone inválido")
)

type InterfaceService interface {
	CreateMotoristaService(ctx context.Context, data CreateMotoristaDto) (MotoristaResponse, error)
	UpdateMotoristaService(ctx context.Context, data UpdateMotoristaDto) (MotoristaResponse, error)
	DeleteMotoristaService(ctx context.Context, id, userID int64) error
	GetMotoristasService(ctx context.Context, userID int64) ([]MotoristaResponse, error)
	GetMotoristaByIdService(ctx context.Context, id, userID int64) (MotoristaResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewMotoristasService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

func (p *Service) CreateMotoristaService(ctx context.Context, data CreateMotoristaDto) (MotoristaResponse, error) {
	if err := validarDocumentos(data.Cpf, data.Cnh, data.Telefone); err != nil {
		return MotoristaResponse{}, err
	}

	result, err := p.InterfaceService.CreateMotorista(ctx, data.ParseCreateToMotorista())
	if err != nil {
		return MotoristaResponse{}, err
	}

	response := MotoristaResponse{}
	response.ParseFromMotoristaObject(result)
	return response, nil
}

func (p *Service) UpdateMotoristaService(ctx context.Context, data UpdateMotoristaDto) (MotoristaResponse, error) {
	if err := validarDocumentos(data.Cpf, data.Cnh, data.Telefone); err != nil {
		return MotoristaResponse{}, err
	}

	if _, err := p.buscarMotoristaDoUsuario(ctx, data.ID, data.UserID); err != nil {
		return MotoristaResponse{}, err
	}

	result, err := p.InterfaceService.UpdateMotorista(ctx, data.ParseUpdateToMotorista())
	if err != nil {
		return MotoristaResponse{}, err
	}

	response := MotoristaResponse{}
	response.ParseFromMotoristaObject(result)
	return response, nil
}

func (p *Service) DeleteMotoristaService(ctx context.Context, id, userID int64) error {
	if _, err := p.buscarMotoristaDoUsuario(ctx, id, userID); err != nil {
		return err
	}

	return p.InterfaceService.DeleteMotorista(ctx, db.DeleteMotoristaParams{
		ID:     id,
		UserID: userID,
	})
}

func (p *Service) GetMotoristasService(ctx context.Context, userID int64) ([]MotoristaResponse, error) {
	motoristas, err := p.InterfaceService.GetMotoristasByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]MotoristaResponse, 0, len(motoristas))
	for _, motorista := range motoristas {
		response := MotoristaResponse{}
		response.ParseFromMotoristaObject(motorista)
		responses = append(responses, response)
	}
	return responses, nil
}

func (p *Service) GetMotoristaByIdService(ctx context.Context, id, userID int64) (MotoristaResponse, error) {
	motorista, err := p.buscarMotoristaDoUsuario(ctx, id, userID)
	if err != nil {
		return MotoristaResponse{}, err
	}

	response := MotoristaResponse{}
	response.ParseFromMotoristaObject(motorista)
	return response, nil
}

func (p *Service) buscarMotoristaDoUsuario(ctx context.Context, id, userID int64) (db.Motorista, error) {
	motorista, err := p.InterfaceService.GetMotoristaById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Motorista{}, ErrMotoristaNaoEncontrado
	}
	if err != nil {
		return db.Motorista{}, err
	}
	if motorista.UserID != userID {
		return db.Motorista{}, ErrMotoristaNaoEncontrado
	}
	return motorista, nil
}

func validarDocumentos(cpf, cnh, telefone string) error {
	if !validation.ValidateCPF(cpf) {
		return ErrCpfInvalido
	}
	if !validation.ValidateCNH(cnh) {
		return ErrCnhInvalida
	}
	if !validation.ValidatePhone(telefone) {
		return ErrTelefoneInvalido
	}
	return nil
}
