package importacao

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sqlc-dev/pqtype"
	"github.com/xuri/excelize/v2"

	db "roteirizador/db/sqlc"
	"roteirizador/internal/duplicatas"
	bucket "roteirizador/pkg/s3"
)

type InterfaceService interface {
	ImportarViagensService(ctx context.Context, data ImportarViagensDto) (ImportarViagensResponse, error)
	HistoricoImportacoesService(ctx context.Context, userID int64) ([]HistoricoImportacaoResponse, error)
}

type Service struct {
	InterfaceService  InterfaceRepository
	DuplicatasService duplicatas.InterfaceService
	BucketImportacoes string
}

func NewImportacaoService(InterfaceService InterfaceRepository, DuplicatasService duplicatas.InterfaceService, bucketImportacoes string) *Service {
	return &Service{
		InterfaceService:  InterfaceService,
		DuplicatasService: DuplicatasService,
		BucketImportacoes: bucketImportacoes,
	}
}

// ImportarViagensService processa a planilha do turno, roda a detecção de
// duplicatas sobre as cidades extraídas e grava o histórico da importação.
// A detecção é melhor esforço; falhas de persistência do histórico e das
// viagens são fatais e propagadas.
func (s *Service) ImportarViagensService(ctx context.Context, data ImportarViagensDto) (ImportarViagensResponse, error) {
	request := data.ImportarViagensRequest

	conteudo, err := decodificarArquivo(request.ArquivoBase64)
	if err != nil {
		return ImportarViagensResponse{}, fmt.Errorf("arquivo inválido: %w", err)
	}

	planilha, err := excelize.OpenReader(bytes.NewReader(conteudo))
	if err != nil {
		return ImportarViagensResponse{}, fmt.Errorf("erro ao abrir a planilha: %w", err)
	}
	defer planilha.Close()

	aba, turno, err := selecionarAba(planilha)
	if err != nil {
		return ImportarViagensResponse{}, err
	}

	viagens, totalLinhas, err := lerViagens(planilha, aba, turno)
	if err != nil {
		return ImportarViagensResponse{}, err
	}

	cidades := cidadesDistintas(viagens)
	deteccao, err := s.DuplicatasService.DetectarDuplicatasService(ctx, duplicatas.DetectarDuplicatasRequest{
		Enderecos: cidades,
		Limiar:    request.LimiarDuplicatas,
		Origem:    duplicatas.OrigemImportacao,
	})
	if err != nil {
		return ImportarViagensResponse{}, err
	}

	for _, cidade := range cidades {
		if _, err := s.InterfaceService.CreateEndereco(ctx, db.CreateEnderecoParams{
			Descricao: cidade,
			Origem:    duplicatas.OrigemImportacao,
		}); err != nil {
			return ImportarViagensResponse{}, err
		}
	}

	mescladas := 0
	if request.MesclarAutomaticamente {
		mescladas, err = s.mesclarAutomaticamente(ctx, deteccao.Duplicatas)
		if err != nil {
			return ImportarViagensResponse{}, err
		}
	}

	urlArquivo := s.arquivarPlanilha(conteudo, request.NomeArquivo)

	relatorio, err := json.Marshal(deteccao)
	if err != nil {
		return ImportarViagensResponse{}, err
	}

	historico, err := s.InterfaceService.CreateImportacao(ctx, db.CreateImportacaoParams{
		UserID:               data.UserID,
		NomeArquivo:          request.NomeArquivo,
		UrlArquivo:           sql.NullString{String: urlArquivo, Valid: urlArquivo != ""},
		TotalRegistros:       int64(totalLinhas),
		RegistrosImportados:  int64(len(viagens)),
		DuplicatasDetectadas: int64(deteccao.Relatorio.Total),
		DuplicatasMescladas:  int64(mescladas),
		RelatorioDuplicatas:  pqtype.NullRawMessage{RawMessage: relatorio, Valid: true},
	})
	if err != nil {
		return ImportarViagensResponse{}, err
	}

	for _, viagem := range viagens {
		if _, err := s.InterfaceService.CreateViagem(ctx, db.CreateViagemParams{
			ImportacaoID: sql.NullInt64{Int64: historico.ID, Valid: true},
			Passageiro:   sql.NullString{String: viagem.Passageiro, Valid: viagem.Passageiro != ""},
			Cidade:       sql.NullString{String: viagem.Cidade, Valid: viagem.Cidade != ""},
			Endereco:     sql.NullString{String: viagem.Endereco, Valid: viagem.Endereco != ""},
			Turno:        sql.NullString{String: viagem.Turno, Valid: viagem.Turno != ""},
			Horario:      sql.NullString{String: viagem.Horario, Valid: viagem.Horario != ""},
		}); err != nil {
			return ImportarViagensResponse{}, err
		}
	}

	return ImportarViagensResponse{
		Sucesso:             true,
		HistoricoID:         historico.ID,
		TotalRegistros:      totalLinhas,
		RegistrosImportados: len(viagens),
		Duplicatas:          deteccao,
		DuplicatasMescladas: mescladas,
		UrlArquivo:          urlArquivo,
	}, nil
}

func (s *Service) mesclarAutomaticamente(ctx context.Context, matches []duplicatas.DuplicataMatch) (int, error) {
	acoes := s.DuplicatasService.SugerirAcoesMesclagemService(matches)

	var revisoes []duplicatas.RevisaoDuplicata
	for _, acao := range acoes {
		if acao.Acao != duplicatas.AcaoMesclar {
			continue
		}
		revisoes = append(revisoes, duplicatas.RevisaoDuplicata{
			Original:  acao.EnderecoOriginal,
			Duplicado: acao.EnderecoDuplicado,
			Acao:      duplicatas.AcaoMesclar,
			Motivo:    acao.Motivo,
		})
	}
	if len(revisoes) == 0 {
		return 0, nil
	}

	result, err := s.DuplicatasService.RevisarDuplicatasService(ctx, duplicatas.RevisarDuplicatasRequest{
		Duplicatas: revisoes,
	})
	if err != nil {
		return 0, err
	}
	for _, mensagem := range result.Erros {
		log.Println("mesclagem automática falhou:", mensagem)
	}
	return result.Mescladas, nil
}

// arquivarPlanilha envia o arquivo original para o S3. O arquivamento é
// auxiliar: falha gera log e a importação segue sem URL.
func (s *Service) arquivarPlanilha(conteudo []byte, nomeArquivo string) string {
	if s.BucketImportacoes == "" {
		return ""
	}

	chave := fmt.Sprintf("importacoes/%d_%s", time.Now().Unix(), nomeArquivo)
	url, err := bucket.UploadFileToS3(conteudo, chave, s.BucketImportacoes,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		log.Println("erro ao arquivar planilha no S3:", err)
		return ""
	}
	return url
}

func (s *Service) HistoricoImportacoesService(ctx context.Context, userID int64) ([]HistoricoImportacaoResponse, error) {
	importacoes, err := s.InterfaceService.GetImportacoesByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	historico := make([]HistoricoImportacaoResponse, 0, len(importacoes))
	for _, importacao := range importacoes {
		historico = append(historico, HistoricoImportacaoResponse{
			ID:                   importacao.ID,
			NomeArquivo:          importacao.NomeArquivo,
			UrlArquivo:           importacao.UrlArquivo.String,
			TotalRegistros:       importacao.TotalRegistros,
			RegistrosImportados:  importacao.RegistrosImportados,
			DuplicatasDetectadas: importacao.DuplicatasDetectadas,
			DuplicatasMescladas:  importacao.DuplicatasMescladas,
			ImportadaEm:          importacao.CreatedAt,
		})
	}
	return historico, nil
}

func decodificarArquivo(arquivoBase64 string) ([]byte, error) {
	conteudo := arquivoBase64
	if indice := strings.Index(conteudo, "base64,"); indice >= 0 {
		conteudo = conteudo[indice+len("base64,"):]
	}
	return base64.StdEncoding.DecodeString(conteudo)
}
