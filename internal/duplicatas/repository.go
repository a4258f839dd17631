package duplicatas

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	CreateEndereco(ctx context.Context, arg db.CreateEnderecoParams) (db.Endereco, error)
	GetDistinctEnderecos(ctx context.Context, origem string) ([]string, error)
	GetEnderecoByDescricao(ctx context.Context, descricao string) (db.Endereco, error)
	MesclarEndereco(ctx context.Context, arg db.MesclarEnderecoParams) error
	ListEnderecos(ctx context.Context, origem string) ([]db.Endereco, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewDuplicatasRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateEndereco(ctx context.Context, arg db.CreateEnderecoParams) (db.Endereco, error) {
	return r.Queries.CreateEndereco(ctx, arg)
}

func (r *Repository) GetDistinctEnderecos(ctx context.Context, origem string) ([]string, error) {
	return r.Queries.GetDistinctEnderecos(ctx, origem)
}

func (r *Repository) GetEnderecoByDescricao(ctx context.Context, descricao string) (db.Endereco, error) {
	return r.Queries.GetEnderecoByDescricao(ctx, descricao)
}

func (r *Repository) MesclarEndereco(ctx context.Context, arg db.MesclarEnderecoParams) error {
	return r.Queries.MesclarEndereco(ctx, arg)
}

func (r *Repository) ListEnderecos(ctx context.Context, origem string) ([]db.Endereco, error) {
	return r.Queries.ListEnderecos(ctx, origem)
}
