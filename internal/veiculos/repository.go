package veiculos

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	CreateVeiculo(ctx context.Context, arg db.CreateVeiculoParams) (db.Veiculo, error)
	UpdateVeiculo(ctx context.Context, arg db.UpdateVeiculoParams) (db.Veiculo, error)
	DeleteVeiculo(ctx context.Context, arg db.DeleteVeiculoParams) error
	GetVeiculoById(ctx context.Context, id int64) (db.Veiculo, error)
	GetVeiculosByUserId(ctx context.Context, userID int64) ([]db.Veiculo, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewVeiculosRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateVeiculo(ctx context.Context, arg db.CreateVeiculoParams) (db.Veiculo, error) {
	return r.Queries.CreateVeiculo(ctx, arg)
}

func (r *Repository) UpdateVeiculo(ctx context.Context, arg db.UpdateVeiculoParams) (db.Veiculo, error) {
	return r.Queries.UpdateVeiculo(ctx, arg)
}

func (r *Repository) DeleteVeiculo(ctx context.Context, arg db.DeleteVeiculoParams) error {
	return r.Queries.DeleteVeiculo(ctx, arg)
}

func (r *Repository) GetVeiculoById(ctx context.Context, id int64) (db.Veiculo, error) {
	return r.Queries.GetVeiculoById(ctx, id)
}

func (r *Repository) GetVeiculosByUserId(ctx context.Context, userID int64) ([]db.Veiculo, error) {
	return r.Queries.GetVeiculosByUserId(ctx, userID)
}
