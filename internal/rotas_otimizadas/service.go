package rotas_otimizadas

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	db "roteirizador/db/sqlc"
	"roteirizador/internal/roteirizador"
)

var (
	ErrRotaNaoEncontrada = errors.New("rota não encontrada")
	ErrTransicaoInvalida = errors.New("transição de status inválida")
)

type InterfaceService interface {
	SalvarRotaService(ctx context.Context, data SalvarRotaDto) (SalvarRotaResponse, error)
	AtualizarStatusService(ctx context.Context, data AtualizarStatusDto) (RotaResponse, error)
	CriarVersaoRotaService(ctx context.Context, data CriarVersaoDto) (CriarVersaoResponse, error)
	ObterHistoricoVersoesService(ctx context.Context, rotaID, userID int64) (HistoricoVersoesResponse, error)
	ObterRotaService(ctx context.Context, rotaID, userID int64) (RotaResponse, error)
	ListarRotasService(ctx context.Context, userID int64) ([]RotaResponse, error)
	DeletarRotaService(ctx context.Context, rotaID, userID int64) error
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewRotasOtimizadasService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService: InterfaceService}
}

func (s *Service) SalvarRotaService(ctx context.Context, data SalvarRotaDto) (SalvarRotaResponse, error) {
	request := data.SalvarRotaRequest

	status := StatusRascunho
	if request.Algoritmo != "" || request.DistanciaOtimizada > 0 {
		status = StatusOtimizada
	}

	economia := request.DistanciaOriginal - request.DistanciaOtimizada
	percentual := 0.0
	if request.DistanciaOriginal > 0 {
		percentual = economia / request.DistanciaOriginal * 100
	}

	pontos := make([]db.CreatePontoEmbarqueParams, 0, len(request.Pontos))
	for _, ponto := range request.Pontos {
		pontos = append(pontos, db.CreatePontoEmbarqueParams{
			Nome:              ponto.Nome,
			Endereco:          sql.NullString{String: ponto.Endereco, Valid: ponto.Endereco != ""},
			Latitude:          ponto.Latitude,
			Longitude:         ponto.Longitude,
			Sequencia:         int64(ponto.Sequencia),
			HorarioChegada:    sql.NullString{String: ponto.HorarioChegada, Valid: ponto.HorarioChegada != ""},
			DistanciaAnterior: ponto.DistanciaAnterior,
		})
	}

	rota, err := s.InterfaceService.CreateRotaComPontos(ctx, db.CreateRotaParams{
		UserID:             data.UserID,
		Nome:               request.Nome,
		Descricao:          sql.NullString{String: request.Descricao, Valid: request.Descricao != ""},
		Status:             status,
		DistanciaTotal:     request.DistanciaOtimizada,
		TempoEstimado:      request.TempoEstimado,
		DistanciaOriginal:  request.DistanciaOriginal,
		Economia:           economia,
		EconomiaPercentual: percentual,
		Algoritmo:          request.Algoritmo,
		VeiculoID:          sql.NullInt64{Int64: request.VeiculoID, Valid: request.VeiculoID != 0},
		MotoristaID:        sql.NullInt64{Int64: request.MotoristaID, Valid: request.MotoristaID != 0},
	}, pontos)
	if err != nil {
		return SalvarRotaResponse{}, err
	}

	return SalvarRotaResponse{
		Sucesso:  true,
		RotaID:   rota.ID,
		Mensagem: fmt.Sprintf("Rota %q salva com %d pontos de embarque", rota.Nome, len(pontos)),
	}, nil
}

func (s *Service) AtualizarStatusService(ctx context.Context, data AtualizarStatusDto) (RotaResponse, error) {
	rota, err := s.buscarRotaDoUsuario(ctx, data.AtualizarStatusRequest.RotaID, data.UserID)
	if err != nil {
		return RotaResponse{}, err
	}

	novoStatus := data.AtualizarStatusRequest.Status
	if !PodeTransicionar(rota.Status, novoStatus) {
		return RotaResponse{}, fmt.Errorf("%w: %s para %s", ErrTransicaoInvalida, rota.Status, novoStatus)
	}

	atualizada, err := s.InterfaceService.UpdateRotaStatus(ctx, db.UpdateRotaStatusParams{
		ID:     rota.ID,
		Status: novoStatus,
	})
	if err != nil {
		return RotaResponse{}, err
	}
	return s.montarRotaResponse(ctx, atualizada)
}

// CriarVersaoRotaService grava um retrato imutável da rota e atualiza as
// métricas correntes dela com os valores da reotimização. O número da versão
// é contagem atual + 1, monotônico e sem lacunas por rota.
func (s *Service) CriarVersaoRotaService(ctx context.Context, data CriarVersaoDto) (CriarVersaoResponse, error) {
	request := data.CriarVersaoRequest

	rota, err := s.buscarRotaDoUsuario(ctx, request.RotaID, data.UserID)
	if err != nil {
		return CriarVersaoResponse{}, err
	}

	total, err := s.InterfaceService.CountVersoesByRotaId(ctx, request.RotaID)
	if err != nil {
		return CriarVersaoResponse{}, err
	}

	pontos, err := json.Marshal(request.Pontos)
	if err != nil {
		return CriarVersaoResponse{}, err
	}

	versao, err := s.InterfaceService.CreateRotaVersao(ctx, db.CreateRotaVersaoParams{
		RotaID:           request.RotaID,
		Versao:           total + 1,
		DescricaoMudanca: request.DescricaoMudanca,
		Pontos:           pontos,
		DistanciaTotal:   request.DistanciaTotal,
		TempoEstimado:    request.TempoEstimado,
		Economia:         request.Economia,
	})
	if err != nil {
		return CriarVersaoResponse{}, err
	}

	percentual := 0.0
	if rota.DistanciaOriginal > 0 {
		percentual = request.Economia / rota.DistanciaOriginal * 100
	}
	if _, err := s.InterfaceService.UpdateRotaMetricas(ctx, db.UpdateRotaMetricasParams{
		ID:                 rota.ID,
		DistanciaTotal:     request.DistanciaTotal,
		TempoEstimado:      request.TempoEstimado,
		DistanciaOriginal:  rota.DistanciaOriginal,
		Economia:           request.Economia,
		EconomiaPercentual: percentual,
		Algoritmo:          rota.Algoritmo,
	}); err != nil {
		return CriarVersaoResponse{}, err
	}

	return CriarVersaoResponse{
		Sucesso:  true,
		Versao:   versao.Versao,
		Mensagem: fmt.Sprintf("Versão %d criada", versao.Versao),
	}, nil
}

func (s *Service) ObterHistoricoVersoesService(ctx context.Context, rotaID, userID int64) (HistoricoVersoesResponse, error) {
	if _, err := s.buscarRotaDoUsuario(ctx, rotaID, userID); err != nil {
		return HistoricoVersoesResponse{}, err
	}

	versoes, err := s.InterfaceService.GetVersoesByRotaId(ctx, rotaID)
	if err != nil {
		return HistoricoVersoesResponse{}, err
	}

	response := HistoricoVersoesResponse{Versoes: make([]VersaoResponse, 0, len(versoes))}
	for _, versao := range versoes {
		var pontos []roteirizador.PontoEmbarque
		if err := json.Unmarshal(versao.Pontos, &pontos); err != nil {
			return HistoricoVersoesResponse{}, err
		}
		response.Versoes = append(response.Versoes, VersaoResponse{
			Versao:           versao.Versao,
			DescricaoMudanca: versao.DescricaoMudanca,
			Pontos:           pontos,
			DistanciaTotal:   versao.DistanciaTotal,
			TempoEstimado:    versao.TempoEstimado,
			Economia:         versao.Economia,
			CriadaEm:         versao.CreatedAt,
		})
	}
	return response, nil
}

func (s *Service) ObterRotaService(ctx context.Context, rotaID, userID int64) (RotaResponse, error) {
	rota, err := s.buscarRotaDoUsuario(ctx, rotaID, userID)
	if err != nil {
		return RotaResponse{}, err
	}
	return s.montarRotaResponse(ctx, rota)
}

func (s *Service) ListarRotasService(ctx context.Context, userID int64) ([]RotaResponse, error) {
	rotas, err := s.InterfaceService.GetRotasByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]RotaResponse, 0, len(rotas))
	for _, rota := range rotas {
		response, err := s.montarRotaResponse(ctx, rota)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func (s *Service) DeletarRotaService(ctx context.Context, rotaID, userID int64) error {
	if _, err := s.buscarRotaDoUsuario(ctx, rotaID, userID); err != nil {
		return err
	}
	return s.InterfaceService.DeleteRota(ctx, db.DeleteRotaParams{ID: rotaID, UserID: userID})
}

func (s *Service) buscarRotaDoUsuario(ctx context.Context, rotaID, userID int64) (db.Rota, error) {
	rota, err := s.InterfaceService.GetRotaById(ctx, rotaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.Rota{}, ErrRotaNaoEncontrada
		}
		return db.Rota{}, err
	}
	if rota.UserID != userID {
		return db.Rota{}, ErrRotaNaoEncontrada
	}
	return rota, nil
}

func (s *Service) montarRotaResponse(ctx context.Context, rota db.Rota) (RotaResponse, error) {
	persistidos, err := s.InterfaceService.GetPontosByRotaId(ctx, rota.ID)
	if err != nil {
		return RotaResponse{}, err
	}

	pontos := make([]roteirizador.PontoEmbarque, 0, len(persistidos))
	for _, ponto := range persistidos {
		pontos = append(pontos, roteirizador.PontoEmbarque{
			Nome:              ponto.Nome,
			Endereco:          ponto.Endereco.String,
			Latitude:          ponto.Latitude,
			Longitude:         ponto.Longitude,
			Sequencia:         int(ponto.Sequencia),
			HorarioChegada:    ponto.HorarioChegada.String,
			DistanciaAnterior: ponto.DistanciaAnterior,
		})
	}

	return RotaResponse{
		ID:                 rota.ID,
		Nome:               rota.Nome,
		Descricao:          rota.Descricao.String,
		Status:             rota.Status,
		DistanciaTotal:     rota.DistanciaTotal,
		TempoEstimado:      rota.TempoEstimado,
		DistanciaOriginal:  rota.DistanciaOriginal,
		Economia:           rota.Economia,
		EconomiaPercentual: rota.EconomiaPercentual,
		Algoritmo:          rota.Algoritmo,
		VeiculoID:          rota.VeiculoID.Int64,
		MotoristaID:        rota.MotoristaID.Int64,
		Pontos:             pontos,
		CriadaEm:           rota.CreatedAt,
	}, nil
}
