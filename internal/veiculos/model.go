package veiculos

import (
	"time"

	db "roteirizador/db/sqlc"
	"roteirizador/validation"
)

type CreateVeiculoRequest struct {
	Placa      string `json:"placa" validate:"required"`
	Modelo     string `json:"modelo"`
	Marca      string `json:"marca"`
	Ano        string `json:"ano"`
	Cor        string `json:"cor"`
	Capacidade int64  `json:"capacidade"`
}

type CreateVeiculoDto struct {
	CreateVeiculoRequest
	UserID int64 `json:"user_id"`
}

type UpdateVeiculoRequest struct {
	ID         int64  `json:"id" validate:"required"`
	Placa      string `json:"placa" validate:"required"`
	Modelo     string `json:"modelo"`
	Marca      string `json:"marca"`
	Ano        string `json:"ano"`
	Cor        string `json:"cor"`
	Capacidade int64  `json:"capacidade"`
}

type UpdateVeiculoDto struct {
	UpdateVeiculoRequest
	UserID int64 `json:"user_id"`
}

type VeiculoResponse struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Placa      string     `json:"placa"`
	Modelo     string     `json:"modelo"`
	Marca      string     `json:"marca"`
	Ano        string     `json:"ano"`
	Cor        string     `json:"cor"`
	Capacidade int64      `json:"capacidade"`
	Status     bool       `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func (p *CreateVeiculoDto) ParseCreateToVeiculo() db.CreateVeiculoParams {
	return db.CreateVeiculoParams{
		UserID:     p.UserID,
		Placa:      p.Placa,
		Modelo:     validation.ToNullString(p.Modelo),
		Marca:      validation.ToNullString(p.Marca),
		Ano:        validation.ToNullString(p.Ano),
		Cor:        validation.ToNullString(p.Cor),
		Capacidade: p.Capacidade,
	}
}

func (p *UpdateVeiculoDto) ParseUpdateToVeiculo() db.UpdateVeiculoParams {
	return db.UpdateVeiculoParams{
		ID:         p.ID,
		UserID:     p.UserID,
		Placa:      p.Placa,
		Modelo:     validation.ToNullString(p.Modelo),
		Marca:      validation.ToNullString(p.Marca),
		Ano:        validation.ToNullString(p.Ano),
		Cor:        validation.ToNullString(p.Cor),
		Capacidade: p.Capacidade,
	}
}

func (p *VeiculoResponse) ParseFromVeiculoObject(veiculo db.Veiculo) {
	p.ID = veiculo.ID
	p.UserID = veiculo.UserID
	p.Placa = veiculo.Placa
	p.Modelo = veiculo.Modelo.String
	p.Marca = veiculo.Marca.String
	p.Ano = veiculo.Ano.String
	p.Cor = veiculo.Cor.String
	p.Capacidade = veiculo.Capacidade
	p.Status = veiculo.Status
	p.CreatedAt = veiculo.CreatedAt
	if veiculo.UpdatedAt.Valid {
		p.UpdatedAt = &veiculo.UpdatedAt.Time
	}
}
