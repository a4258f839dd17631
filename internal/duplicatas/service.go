package duplicatas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"

	db "roteirizador/db/sqlc"
	"roteirizador/pkg/cache"
)

type InterfaceService interface {
	DetectarDuplicatasService(ctx context.Context, data DetectarDuplicatasRequest) (DetectarDuplicatasResponse, error)
	SugerirAcoesMesclagemService(matches []DuplicataMatch) []AcaoMesclagem
	RevisarDuplicatasService(ctx context.Context, data RevisarDuplicatasRequest) (RevisarDuplicatasResponse, error)
	DetectarDuplicatas(enderecos []string, limiar float64) []DuplicataMatch
	DetectarDuplicatasNoBanco(ctx context.Context, novosEnderecos []string, origem string) []DuplicataMatch
}

type Service struct {
	InterfaceService InterfaceRepository
	Cache            *cache.Cache
	Limiar           float64
	LimiarMedia      float64
	LimiarAlta       float64
}

func NewDuplicatasService(InterfaceService InterfaceRepository, Cache *cache.Cache, limiar, limiarMedia, limiarAlta float64) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		Cache:            Cache,
		Limiar:           limiar,
		LimiarMedia:      limiarMedia,
		LimiarAlta:       limiarAlta,
	}
}

func (s *Service) classificarConfianca(similaridade float64) string {
	switch {
	case similaridade >= s.LimiarAlta:
		return ConfiancaAlta
	case similaridade >= s.LimiarMedia:
		return ConfiancaMedia
	default:
		return ConfiancaBaixa
	}
}

// DetectarDuplicatas compara todos os pares da lista informada e devolve os
// que atingem o limiar, na ordem de primeira ocorrência na entrada.
func (s *Service) DetectarDuplicatas(enderecos []string, limiar float64) []DuplicataMatch {
	if limiar <= 0 {
		limiar = s.Limiar
	}

	normalizados := make([]string, len(enderecos))
	for i, endereco := range enderecos {
		normalizados[i] = NormalizarEndereco(endereco)
	}

	var matches []DuplicataMatch
	for i := 0; i < len(enderecos); i++ {
		for j := i + 1; j < len(enderecos); j++ {
			similaridade := Similaridade(normalizados[i], normalizados[j])
			if similaridade < limiar {
				continue
			}
			matches = append(matches, DuplicataMatch{
				EnderecoOriginal:  enderecos[i],
				EnderecoDuplicado: enderecos[j],
				Similaridade:      similaridade,
				Confianca:         s.classificarConfianca(similaridade),
			})
		}
	}
	return matches
}

// DetectarDuplicatasNoBanco compara os endereços novos contra os já
// persistidos para a origem informada. Detecção é melhor esforço: falha de
// leitura é registrada em log e devolve lista vazia, nunca bloqueia a
// importação que chamou.
func (s *Service) DetectarDuplicatasNoBanco(ctx context.Context, novosEnderecos []string, origem string) []DuplicataMatch {
	existentes, err := s.enderecosExistentes(ctx, origem)
	if err != nil {
		log.Println("erro ao buscar endereços existentes:", err)
		return []DuplicataMatch{}
	}

	var matches []DuplicataMatch
	for _, novo := range novosEnderecos {
		novoNormalizado := NormalizarEndereco(novo)
		for _, existente := range existentes {
			similaridade := Similaridade(NormalizarEndereco(existente), novoNormalizado)
			if similaridade < s.Limiar {
				continue
			}
			matches = append(matches, DuplicataMatch{
				EnderecoOriginal:  existente,
				EnderecoDuplicado: novo,
				Similaridade:      similaridade,
				Confianca:         s.classificarConfianca(similaridade),
			})
		}
	}
	return matches
}

func (s *Service) enderecosExistentes(ctx context.Context, origem string) ([]string, error) {
	chave := "enderecos:" + origem
	if cached, ok := s.Cache.Get(chave); ok {
		return cached.([]string), nil
	}

	existentes, err := s.InterfaceService.GetDistinctEnderecos(ctx, origem)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(chave, existentes)
	return existentes, nil
}

func (s *Service) DetectarDuplicatasService(ctx context.Context, data DetectarDuplicatasRequest) (DetectarDuplicatasResponse, error) {
	if data.Limiar < 0 {
		return DetectarDuplicatasResponse{}, errors.New("limiar não pode ser negativo")
	}

	matches := s.DetectarDuplicatas(data.Enderecos, data.Limiar)
	if data.DeveVerificarBanco() {
		matches = append(matches, s.DetectarDuplicatasNoBanco(ctx, data.Enderecos, data.Origem)...)
	}
	if matches == nil {
		matches = []DuplicataMatch{}
	}

	relatorio := montarRelatorio(matches)
	return DetectarDuplicatasResponse{
		Duplicatas: matches,
		Relatorio:  relatorio,
		Resumo:     relatorio.Resumo,
	}, nil
}

func montarRelatorio(matches []DuplicataMatch) RelatorioDuplicatas {
	relatorio := RelatorioDuplicatas{Total: len(matches)}
	for _, match := range matches {
		switch match.Confianca {
		case ConfiancaAlta:
			relatorio.Alta++
		case ConfiancaMedia:
			relatorio.Media++
		case ConfiancaBaixa:
			relatorio.Baixa++
		}
	}
	relatorio.Resumo = fmt.Sprintf("%d duplicatas encontradas: %d de confiança alta, %d média, %d baixa",
		relatorio.Total, relatorio.Alta, relatorio.Media, relatorio.Baixa)
	return relatorio
}

// SugerirAcoesMesclagemService converte os pares detectados em ações. Cada
// par não ordenado é processado uma única vez; confiança alta vira mesclagem
// automática, média vai para revisão manual e baixa é descartada.
func (s *Service) SugerirAcoesMesclagemService(matches []DuplicataMatch) []AcaoMesclagem {
	vistos := make(map[string]bool)
	acoes := make([]AcaoMesclagem, 0, len(matches))

	for _, match := range matches {
		par := []string{match.EnderecoOriginal, match.EnderecoDuplicado}
		sort.Strings(par)
		chave := par[0] + "|" + par[1]
		if vistos[chave] {
			continue
		}
		vistos[chave] = true

		switch match.Confianca {
		case ConfiancaAlta:
			acoes = append(acoes, AcaoMesclagem{
				EnderecoOriginal:  match.EnderecoOriginal,
				EnderecoDuplicado: match.EnderecoDuplicado,
				Acao:              AcaoMesclar,
				Motivo:            fmt.Sprintf("similaridade de %.0f%%, mesclagem automática", match.Similaridade*100),
				Similaridade:      match.Similaridade,
			})
		case ConfiancaMedia:
			acoes = append(acoes, AcaoMesclagem{
				EnderecoOriginal:  match.EnderecoOriginal,
				EnderecoDuplicado: match.EnderecoDuplicado,
				Acao:              AcaoManterSeparado,
				Motivo:            fmt.Sprintf("similaridade de %.0f%%, requer revisão manual", match.Similaridade*100),
				Similaridade:      match.Similaridade,
			})
		}
	}
	return acoes
}

// RevisarDuplicatasService aplica as decisões do operador. Erros de
// persistência são fatais para o item em questão e acumulados na resposta.
func (s *Service) RevisarDuplicatasService(ctx context.Context, data RevisarDuplicatasRequest) (RevisarDuplicatasResponse, error) {
	response := RevisarDuplicatasResponse{Erros: []string{}}

	for _, revisao := range data.Duplicatas {
		switch revisao.Acao {
		case AcaoMesclar:
			if err := s.mesclar(ctx, revisao); err != nil {
				response.Erros = append(response.Erros, fmt.Sprintf("%s: %v", revisao.Duplicado, err))
				continue
			}
			response.Mescladas++
			s.Cache.Delete("enderecos:" + OrigemImportacao)
		case AcaoSeparar:
			response.Separadas++
		case AcaoIgnorar:
			response.Ignoradas++
		default:
			response.Erros = append(response.Erros, fmt.Sprintf("%s: ação inválida %q", revisao.Duplicado, revisao.Acao))
		}
	}
	return response, nil
}

// OrigemImportacao identifica endereços criados pelo fluxo de importação.
const OrigemImportacao = "importacao"

func (s *Service) mesclar(ctx context.Context, revisao RevisaoDuplicata) error {
	original, err := s.InterfaceService.GetEnderecoByDescricao(ctx, revisao.Original)
	if err != nil {
		return fmt.Errorf("endereço original não encontrado: %w", err)
	}
	duplicado, err := s.InterfaceService.GetEnderecoByDescricao(ctx, revisao.Duplicado)
	if err != nil {
		return fmt.Errorf("endereço duplicado não encontrado: %w", err)
	}

	return s.InterfaceService.MesclarEndereco(ctx, db.MesclarEnderecoParams{
		ID:         duplicado.ID,
		MescladoEm: sql.NullInt64{Int64: original.ID, Valid: true},
	})
}
