package motoristas

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	CreateMotorista(ctx context.Context, arg db.CreateMotoristaParams) (db.Motorista, error)
	UpdateMotorista(ctx context.Context, arg db.UpdateMotoristaParams) (db.Motorista, error)
	DeleteMotorista(ctx context.Context, arg db.DeleteMotoristaParams) error
	GetMotoristaById(ctx context.Context, id int64) (db.Motorista, error)
	GetMotoristasByUserId(ctx context.Context, userID int64) ([]db.Motorista, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewMotoristasRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateMotorista(ctx context.Context, arg db.CreateMotoristaParams) (db.Motorista, error) {
	return r.Queries.CreateMotorista(ctx, arg)
}

func (r *Repository) UpdateMotorista(ctx context.Context, arg db.UpdateMotoristaParams) (db.Motorista, error) {
	return r.Queries.UpdateMotorista(ctx, arg)
}

func (r *Repository) DeleteMotorista(ctx context.Context, arg db.DeleteMotoristaParams) error {
	return r.Queries.DeleteMotorista(ctx, arg)
}

func (r *Repository) GetMotoristaById(ctx context.Context, id int64) (db.Motorista, error) {
	return r.Queries.GetMotoristaById(ctx, id)
}

func (r *Repository) GetMotoristasByUserId(ctx context.Context, userID int64) ([]db.Motorista, error) {
	return r.Queries.GetMotoristasByUserId(ctx, userID)
}
