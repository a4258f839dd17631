package dashboard

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	GetDashboardRotas(ctx context.Context, userID int64) ([]db.GetDashboardRotasRow, error)
	GetDashboardFrota(ctx context.Context, userID int64) (db.GetDashboardFrotaRow, error)
	GetDashboardDuplicatas(ctx context.Context) (db.GetDashboardDuplicatasRow, error)
	GetImportacoesRecentes(ctx context.Context, userID int64) ([]db.GetImportacoesRecentesRow, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewDashboardRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) GetDashboardRotas(ctx context.Context, userID int64) ([]db.GetDashboardRotasRow, error) {
	return r.Queries.GetDashboardRotas(ctx, userID)
}

func (r *Repository) GetDashboardFrota(ctx context.Context, userID int64) (db.GetDashboardFrotaRow, error) {
	return r.Queries.GetDashboardFrota(ctx, userID)
}

func (r *Repository) GetDashboardDuplicatas(ctx context.Context) (db.GetDashboardDuplicatasRow, error) {
	return r.Queries.GetDashboardDuplicatas(ctx)
}

func (r *Repository) GetImportacoesRecentes(ctx context.Context, userID int64) ([]db.GetImportacoesRecentesRow, error) {
	return r.Queries.GetImportacoesRecentes(ctx, userID)
}
