package importacao

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	CreateImportacao(ctx context.Context, arg db.CreateImportacaoParams) (db.Importacao, error)
	CreateViagem(ctx context.Context, arg db.CreateViagemParams) (db.Viagem, error)
	CreateEndereco(ctx context.Context, arg db.CreateEnderecoParams) (db.Endereco, error)
	GetImportacoesByUserId(ctx context.Context, userID int64) ([]db.Importacao, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewImportacaoRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateImportacao(ctx context.Context, arg db.CreateImportacaoParams) (db.Importacao, error) {
	return r.Queries.CreateImportacao(ctx, arg)
}

func (r *Repository) CreateViagem(ctx context.Context, arg db.CreateViagemParams) (db.Viagem, error) {
	return r.Queries.CreateViagem(ctx, arg)
}

func (r *Repository) CreateEndereco(ctx context.Context, arg db.CreateEnderecoParams) (db.Endereco, error) {
	return r.Queries.CreateEndereco(ctx, arg)
}

func (r *Repository) GetImportacoesByUserId(ctx context.Context, userID int64) ([]db.Importacao, error) {
	return r.Queries.GetImportacoesByUserId(ctx, userID)
}
