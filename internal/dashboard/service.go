package dashboard

import "context"

type InterfaceService interface {
	GetDashboardService(ctx context.Context, userID int64) (DashboardResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewDashboardService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

// GetDashboardService consolida a visão da operação: rotas por status com a
// economia acumulada, o tamanho da frota e o andamento das importações.
func (s *Service) GetDashboardService(ctx context.Context, userID int64) (DashboardResponse, error) {
	rotas, err := s.InterfaceService.GetDashboardRotas(ctx, userID)
	if err != nil {
		return DashboardResponse{}, err
	}

	frota, err := s.InterfaceService.GetDashboardFrota(ctx, userID)
	if err != nil {
		return DashboardResponse{}, err
	}

	duplicatas, err := s.InterfaceService.GetDashboardDuplicatas(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	importacoes, err := s.InterfaceService.GetImportacoesRecentes(ctx, userID)
	if err != nil {
		return DashboardResponse{}, err
	}

	response := DashboardResponse{
		RotasPorStatus:      make([]RotasPorStatus, 0, len(rotas)),
		ImportacoesRecentes: make([]ImportacaoRecente, 0, len(importacoes)),
		Frota: ResumoFrota{
			MotoristasAtivos: frota.MotoristasAtivos,
			VeiculosAtivos:   frota.VeiculosAtivos,
		},
		Duplicatas: ResumoDuplicatas{
			Mescladas: duplicatas.Mescladas,
			Total:     duplicatas.Total,
		},
	}

	for _, rota := range rotas {
		response.TotalRotas += rota.Total
		response.EconomiaAcumulada += rota.EconomiaTotal
		response.RotasPorStatus = append(response.RotasPorStatus, RotasPorStatus{
			Status:        rota.Status,
			Total:         rota.Total,
			EconomiaTotal: rota.EconomiaTotal,
			EconomiaMedia: rota.EconomiaMedia,
		})
	}

	for _, importacao := range importacoes {
		response.ImportacoesRecentes = append(response.ImportacoesRecentes, ImportacaoRecente{
			ID:                   importacao.ID,
			NomeArquivo:          importacao.NomeArquivo,
			TotalRegistros:       importacao.TotalRegistros,
			RegistrosImportados:  importacao.RegistrosImportados,
			DuplicatasDetectadas: importacao.DuplicatasDetectadas,
			ImportadaEm:          importacao.CreatedAt,
		})
	}

	return response, nil
}
