package motoristas

import (
	"time"

	db "roteirizador/db/sqlc"
)

type CreateMotoristaRequest struct {
	Nome         string    `json:"nome" validate:"required"`
	Cpf          string    `json:"cpf" validate:"required"`
	Cnh          string    `json:"cnh" validate:"required"`
	CategoriaCnh string    `json:"categoria_cnh" validate:"oneof=A B C D E"`
	ValidadeCnh  time.Time `json:"validade_cnh" validate:"required"`
	Telefone     string    `json:"telefone" validate:"required"`
}

type CreateMotoristaDto struct {
	CreateMotoristaRequest
	UserID int64 `json:"user_id"`
}

type UpdateMotoristaRequest struct {
	ID           int64     `json:"id" validate:"required"`
	Nome         string    `json:"nome" validate:"required"`
	Cpf          string    `json:"cpf" validate:"required"`
	Cnh          string    `json:"cnh" validate:"required"`
	CategoriaCnh string    `json:"categoria_cnh" validate:"oneof=A B C D E"`
	ValidadeCnh  time.Time `json:"validade_cnh" validate:"required"`
	Telefone     string    `json:"telefone" validate:"required"`
}

type UpdateMotoristaDto struct {
	UpdateMotoristaRequest
	UserID int64 `json:"user_id"`
}

type MotoristaResponse struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Nome         string     `json:"nome"`
	Cpf          string     `json:"cpf"`
	Cnh          string     `json:"cnh"`
	CategoriaCnh string     `json:"categoria_cnh"`
	ValidadeCnh  time.Time  `json:"validade_cnh"`
	Telefone     string     `json:"telefone"`
	CnhVencida   bool       `json:"cnh_vencida"`
	Status       bool       `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (p *CreateMotoristaDto) ParseCreateToMotorista() db.CreateMotoristaParams {
	return db.CreateMotoristaParams{
		UserID:       p.UserID,
		Nome:         p.Nome,
		Cpf:          p.Cpf,
		Cnh:          p.Cnh,
		CategoriaCnh: p.CategoriaCnh,
		ValidadeCnh:  p.ValidadeCnh,
		Telefone:     p.Telefone,
	}
}

func (p *UpdateMotoristaDto) ParseUpdateToMotorista() db.UpdateMotoristaParams {
	return db.UpdateMotoristaParams{
		ID:           p.ID,
		UserID:       p.UserID,
		Nome:         p.Nome,
		Cpf:          p.Cpf,
		Cnh:          p.Cnh,
		CategoriaCnh: p.CategoriaCnh,
		ValidadeCnh:  p.ValidadeCnh,
		Telefone:     p.Telefone,
	}
}

func (p *MotoristaResponse) ParseFromMotoristaObject(motorista db.Motorista) {
	p.ID = motorista.ID
	p.UserID = motorista.UserID
	p.Nome = motorista.Nome
	p.Cpf = motorista.Cpf
	p.Cnh = motorista.Cnh
	p.CategoriaCnh = motorista.CategoriaCnh
	p.ValidadeCnh = motorista.ValidadeCnh
	p.Telefone = motorista.Telefone
	p.CnhVencida = motorista.ValidadeCnh.Before(time.Now())
	p.Status = motorista.Status
	p.CreatedAt = motorista.CreatedAt
	if motorista.UpdatedAt.Valid {
		p.UpdatedAt = &motorista.UpdatedAt.Time
	}
}
