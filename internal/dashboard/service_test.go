package dashboard

import (
	"context"
	"testing"
	"time"

	db "roteirizador/db/sqlc"
)

type fakeRepository struct {
	rotas       []db.GetDashboardRotasRow
	frota       db.GetDashboardFrotaRow
	duplicatas  db.GetDashboardDuplicatasRow
	importacoes []db.GetImportacoesRecentesRow
}

func (f *fakeRepository) GetDashboardRotas(_ context.Context, _ int64) ([]db.GetDashboardRotasRow, error) {
	return f.rotas, nil
}

func (f *fakeRepository) GetDashboardFrota(_ context.Context, _ int64) (db.GetDashboardFrotaRow, error) {
	return f.frota, nil
}

func (f *fakeRepository) GetDashboardDuplicatas(_ context.Context) (db.GetDashboardDuplicatasRow, error) {
	return f.duplicatas, nil
}

func (f *fakeRepository) GetImportacoesRecentes(_ context.Context, _ int64) ([]db.GetImportacoesRecentesRow, error) {
	return f.importacoes, nil
}

func TestGetDashboardService(t *testing.T) {
	repo := &fakeRepository{
		rotas: []db.GetDashboardRotasRow{
			{Status: "otimizada", Total: 3, EconomiaTotal: 12.5, EconomiaMedia: 18.0},
			{Status: "ativa", Total: 2, EconomiaTotal: 7.5, EconomiaMedia: 22.0},
		},
		frota:      db.GetDashboardFrotaRow{MotoristasAtivos: 4, VeiculosAtivos: 2},
		duplicatas: db.GetDashboardDuplicatasRow{Mescladas: 5, Total: 40},
		importacoes: []db.GetImportacoesRecentesRow{
			{ID: 9, NomeArquivo: "viagens.xlsx", TotalRegistros: 120, RegistrosImportados: 120, DuplicatasDetectadas: 3, CreatedAt: time.Now()},
		},
	}
	s := NewDashboardService(repo)

	result, err := s.GetDashboardService(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalRotas != 5 {
		t.Errorf("esperava 5 rotas no total, obteve %d", result.TotalRotas)
	}
	if result.EconomiaAcumulada != 20.0 {
		t.Errorf("esperava economia acumulada 20.0, obteve %v", result.EconomiaAcumulada)
	}
	if len(result.RotasPorStatus) != 2 || result.RotasPorStatus[0].Status != "otimizada" {
		t.Errorf("quebra por status inesperada: %+v", result.RotasPorStatus)
	}
	if result.Frota.MotoristasAtivos != 4 || result.Frota.VeiculosAtivos != 2 {
		t.Errorf("frota inesperada: %+v", result.Frota)
	}
	if result.Duplicatas.Mescladas != 5 || result.Duplicatas.Total != 40 {
		t.Errorf("duplicatas inesperadas: %+v", result.Duplicatas)
	}
	if len(result.ImportacoesRecentes) != 1 || result.ImportacoesRecentes[0].NomeArquivo != "viagens.xlsx" {
		t.Errorf("importações recentes inesperadas: %+v", result.ImportacoesRecentes)
	}
}

func TestGetDashboardServiceVazio(t *testing.T) {
	s := NewDashboardService(&fakeRepository{})

	result, err := s.GetDashboardService(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalRotas != 0 || result.EconomiaAcumulada != 0 {
		t.Errorf("operação sem rotas deve zerar os totais: %+v", result)
	}
	if result.RotasPorStatus == nil || result.ImportacoesRecentes == nil {
		t.Error("listas devem vir vazias, não nulas")
	}
}
