package rotas_otimizadas

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	CreateRotaComPontos(ctx context.Context, rota db.CreateRotaParams, pontos []db.CreatePontoEmbarqueParams) (db.Rota, error)
	GetRotaById(ctx context.Context, id int64) (db.Rota, error)
	GetRotasByUserId(ctx context.Context, userID int64) ([]db.Rota, error)
	GetPontosByRotaId(ctx context.Context, rotaID int64) ([]db.PontoEmbarque, error)
	UpdateRotaStatus(ctx context.Context, arg db.UpdateRotaStatusParams) (db.Rota, error)
	UpdateRotaMetricas(ctx context.Context, arg db.UpdateRotaMetricasParams) (db.Rota, error)
	DeleteRota(ctx context.Context, arg db.DeleteRotaParams) error
	CreateRotaVersao(ctx context.Context, arg db.CreateRotaVersaoParams) (db.RotaVersao, error)
	CountVersoesByRotaId(ctx context.Context, rotaID int64) (int64, error)
	GetVersoesByRotaId(ctx context.Context, rotaID int64) ([]db.RotaVersao, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewRotasOtimizadasRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

// CreateRotaComPontos grava a rota e seus pontos de embarque na mesma
// transação; falha em qualquer ponto desfaz a rota inteira.
func (r *Repository) CreateRotaComPontos(ctx context.Context, rota db.CreateRotaParams, pontos []db.CreatePontoEmbarqueParams) (db.Rota, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return db.Rota{}, err
	}
	defer tx.Rollback()

	qtx := r.Queries.WithTx(tx)
	criada, err := qtx.CreateRota(ctx, rota)
	if err != nil {
		return db.Rota{}, err
	}

	for _, ponto := range pontos {
		ponto.RotaID = criada.ID
		if _, err := qtx.CreatePontoEmbarque(ctx, ponto); err != nil {
			return db.Rota{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return db.Rota{}, err
	}
	return criada, nil
}

func (r *Repository) GetRotaById(ctx context.Context, id int64) (db.Rota, error) {
	return r.Queries.GetRotaById(ctx, id)
}

func (r *Repository) GetRotasByUserId(ctx context.Context, userID int64) ([]db.Rota, error) {
	return r.Queries.GetRotasByUserId(ctx, userID)
}

func (r *Repository) GetPontosByRotaId(ctx context.Context, rotaID int64) ([]db.PontoEmbarque, error) {
	return r.Queries.GetPontosByRotaId(ctx, rotaID)
}

func (r *Repository) UpdateRotaStatus(ctx context.Context, arg db.UpdateRotaStatusParams) (db.Rota, error) {
	return r.Queries.UpdateRotaStatus(ctx, arg)
}

func (r *Repository) UpdateRotaMetricas(ctx context.Context, arg db.UpdateRotaMetricasParams) (db.Rota, error) {
	return r.Queries.UpdateRotaMetricas(ctx, arg)
}

func (r *Repository) DeleteRota(ctx context.Context, arg db.DeleteRotaParams) error {
	return r.Queries.DeleteRota(ctx, arg)
}

func (r *Repository) CreateRotaVersao(ctx context.Context, arg db.CreateRotaVersaoParams) (db.RotaVersao, error) {
	return r.Queries.CreateRotaVersao(ctx, arg)
}

func (r *Repository) CountVersoesByRotaId(ctx context.Context, rotaID int64) (int64, error) {
	return r.Queries.CountVersoesByRotaId(ctx, rotaID)
}

func (r *Repository) GetVersoesByRotaId(ctx context.Context, rotaID int64) ([]db.RotaVersao, error) {
	return r.Queries.GetVersoesByRotaId(ctx, rotaID)
}
