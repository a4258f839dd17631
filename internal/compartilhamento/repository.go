package compartilhamento

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	CreateCompartilhamento(ctx context.Context, arg db.CreateCompartilhamentoParams) (db.Compartilhamento, error)
	GetCompartilhamentoByToken(ctx context.Context, token uuid.UUID) (db.Compartilhamento, error)
	GetCompartilhamentoById(ctx context.Context, id int64) (db.Compartilhamento, error)
	UpdateAceiteCompartilhamento(ctx context.Context, arg db.UpdateAceiteCompartilhamentoParams) (db.Compartilhamento, error)
	IncrementReenvios(ctx context.Context, id int64) (db.Compartilhamento, error)
	GetRotaById(ctx context.Context, id int64) (db.Rota, error)
	GetPontosByRotaId(ctx context.Context, rotaID int64) ([]db.PontoEmbarque, error)
	GetMotoristaById(ctx context.Context, id int64) (db.Motorista, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewCompartilhamentoRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateCompartilhamento(ctx context.Context, arg db.CreateCompartilhamentoParams) (db.Compartilhamento, error) {
	return r.Queries.CreateCompartilhamento(ctx, arg)
}

func (r *Repository) GetCompartilhamentoByToken(ctx context.Context, token uuid.UUID) (db.Compartilhamento, error) {
	return r.Queries.GetCompartilhamentoByToken(ctx, token)
}

func (r *Repository) GetCompartilhamentoById(ctx context.Context, id int64) (db.Compartilhamento, error) {
	return r.Queries.GetCompartilhamentoById(ctx, id)
}

func (r *Repository) UpdateAceiteCompartilhamento(ctx context.Context, arg db.UpdateAceiteCompartilhamentoParams) (db.Compartilhamento, error) {
	return r.Queries.UpdateAceiteCompartilhamento(ctx, arg)
}

func (r *Repository) IncrementReenvios(ctx context.Context, id int64) (db.Compartilhamento, error) {
	return r.Queries.IncrementReenvios(ctx, id)
}

func (r *Repository) GetRotaById(ctx context.Context, id int64) (db.Rota, error) {
	return r.Queries.GetRotaById(ctx, id)
}

func (r *Repository) GetPontosByRotaId(ctx context.Context, rotaID int64) ([]db.PontoEmbarque, error) {
	return r.Queries.GetPontosByRotaId(ctx, rotaID)
}

func (r *Repository) GetMotoristaById(ctx context.Context, id int64) (db.Motorista, error) {
	return r.Queries.GetMotoristaById(ctx, id)
}
