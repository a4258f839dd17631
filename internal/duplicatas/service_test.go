package duplicatas

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	db "roteirizador/db/sqlc"
	"roteirizador/pkg/cache"
)

type fakeRepository struct {
	enderecos    []db.Endereco
	distinctErr  error
	mesclagens   []db.MesclarEnderecoParams
	mesclagemErr error
}

func (f *fakeRepository) CreateEndereco(_ context.Context, arg db.CreateEnderecoParams) (db.Endereco, error) {
	endereco := db.Endereco{ID: int64(len(f.enderecos) + 1), Descricao: arg.Descricao, Origem: arg.Origem}
	f.enderecos = append(f.enderecos, endereco)
	return endereco, nil
}

func (f *fakeRepository) GetDistinctEnderecos(_ context.Context, origem string) ([]string, error) {
	if f.distinctErr != nil {
		return nil, f.distinctErr
	}
	var descricoes []string
	for _, e := range f.enderecos {
		if e.Origem == origem && !e.MescladoEm.Valid {
			descricoes = append(descricoes, e.Descricao)
		}
	}
	return descricoes, nil
}

func (f *fakeRepository) GetEnderecoByDescricao(_ context.Context, descricao string) (db.Endereco, error) {
	for _, e := range f.enderecos {
		if e.Descricao == descricao && !e.MescladoEm.Valid {
			return e, nil
		}
	}
	return db.Endereco{}, sql.ErrNoRows
}

func (f *fakeRepository) MesclarEndereco(_ context.Context, arg db.MesclarEnderecoParams) error {
	if f.mesclagemErr != nil {
		return f.mesclagemErr
	}
	f.mesclagens = append(f.mesclagens, arg)
	return nil
}

func (f *fakeRepository) ListEnderecos(_ context.Context, origem string) ([]db.Endereco, error) {
	return f.enderecos, nil
}

func newTestService(repo *fakeRepository) *Service {
	return NewDuplicatasService(repo, cache.New(time.Minute), 0.85, 0.90, 0.95)
}

func TestDetectarDuplicatas(t *testing.T) {
	s := newTestService(&fakeRepository{})

	matches := s.DetectarDuplicatas([]string{"Rua A, 100", "Rua A 100", "Av. B, 200"}, 0.85)
	if len(matches) != 1 {
		t.Fatalf("esperava exatamente 1 duplicata, obteve %d", len(matches))
	}
	match := matches[0]
	if match.EnderecoOriginal != "Rua A, 100" || match.EnderecoDuplicado != "Rua A 100" {
		t.Errorf("par inesperado: %q / %q", match.EnderecoOriginal, match.EnderecoDuplicado)
	}
	if match.Confianca != ConfiancaAlta {
		t.Errorf("esperava confiança alta, obteve %q", match.Confianca)
	}
}

func TestDetectarDuplicatasEntradasVazias(t *testing.T) {
	s := newTestService(&fakeRepository{})

	if matches := s.DetectarDuplicatas(nil, 0.85); len(matches) != 0 {
		t.Errorf("lista vazia deve devolver zero duplicatas, obteve %d", len(matches))
	}
	if matches := s.DetectarDuplicatas([]string{"X"}, 0.85); len(matches) != 0 {
		t.Errorf("elemento único deve devolver zero duplicatas, obteve %d", len(matches))
	}
}

func TestDetectarDuplicatasConfiancaPorFaixa(t *testing.T) {
	s := newTestService(&fakeRepository{})

	tests := []struct {
		name      string
		enderecos []string
		confianca string
	}{
		{"identicos", []string{"Centro", "centro"}, ConfiancaAlta},
		{"uma edicao em dez runas", []string{"abcdefghij", "abcdefghix"}, ConfiancaMedia},
		{"uma edicao em oito runas", []string{"abcdefgh", "abcdefgx"}, ConfiancaBaixa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := s.DetectarDuplicatas(tt.enderecos, 0.85)
			if len(matches) != 1 {
				t.Fatalf("esperava 1 duplicata, obteve %d", len(matches))
			}
			if matches[0].Confianca != tt.confianca {
				t.Errorf("esperava confiança %q, obteve %q (similaridade %v)",
					tt.confianca, matches[0].Confianca, matches[0].Similaridade)
			}
		})
	}
}

func TestDetectarDuplicatasNoBanco(t *testing.T) {
	repo := &fakeRepository{enderecos: []db.Endereco{
		{ID: 1, Descricao: "Rua das Flores, 123", Origem: OrigemImportacao},
	}}
	s := newTestService(repo)

	matches := s.DetectarDuplicatasNoBanco(context.Background(), []string{"rua das flores 123"}, OrigemImportacao)
	if len(matches) != 1 {
		t.Fatalf("esperava 1 duplicata contra o banco, obteve %d", len(matches))
	}
	if matches[0].EnderecoOriginal != "Rua das Flores, 123" {
		t.Errorf("original deve ser o endereço persistido, obteve %q", matches[0].EnderecoOriginal)
	}
	if matches[0].EnderecoDuplicado != "rua das flores 123" {
		t.Errorf("duplicado deve ser o endereço novo, obteve %q", matches[0].EnderecoDuplicado)
	}
}

func TestDetectarDuplicatasNoBancoFalhaDeLeitura(t *testing.T) {
	repo := &fakeRepository{distinctErr: errors.New("conexão recusada")}
	s := newTestService(repo)

	matches := s.DetectarDuplicatasNoBanco(context.Background(), []string{"Rua A"}, OrigemImportacao)
	if len(matches) != 0 {
		t.Errorf("falha de leitura deve devolver lista vazia, obteve %d duplicatas", len(matches))
	}
}

func TestDetectarDuplicatasNoBancoUsaCache(t *testing.T) {
	repo := &fakeRepository{enderecos: []db.Endereco{
		{ID: 1, Descricao: "Centro", Origem: OrigemImportacao},
	}}
	s := newTestService(repo)

	s.DetectarDuplicatasNoBanco(context.Background(), []string{"centro"}, OrigemImportacao)

	// A segunda chamada deve responder do cache mesmo com o banco fora.
	repo.distinctErr = errors.New("conexão recusada")
	matches := s.DetectarDuplicatasNoBanco(context.Background(), []string{"centro"}, OrigemImportacao)
	if len(matches) != 1 {
		t.Errorf("esperava resposta servida pelo cache, obteve %d duplicatas", len(matches))
	}
}

func TestSugerirAcoesMesclagem(t *testing.T) {
	s := newTestService(&fakeRepository{})

	matches := []DuplicataMatch{
		{EnderecoOriginal: "Rua A", EnderecoDuplicado: "rua a", Similaridade: 0.97, Confianca: ConfiancaAlta},
		{EnderecoOriginal: "Cidade B", EnderecoDuplicado: "Cidade Be", Similaridade: 0.92, Confianca: ConfiancaMedia},
		{EnderecoOriginal: "Rua C", EnderecoDuplicado: "Rua Ce", Similaridade: 0.86, Confianca: ConfiancaBaixa},
	}

	acoes := s.SugerirAcoesMesclagemService(matches)
	if len(acoes) != 2 {
		t.Fatalf("esperava 2 ações (baixa confiança é descartada), obteve %d", len(acoes))
	}
	if acoes[0].Acao != AcaoMesclar {
		t.Errorf("confiança alta deve virar mesclagem, obteve %q", acoes[0].Acao)
	}
	if acoes[1].Acao != AcaoManterSeparado {
		t.Errorf("confiança média deve ficar separada, obteve %q", acoes[1].Acao)
	}
}

func TestSugerirAcoesMesclagemDeduplicaPares(t *testing.T) {
	s := newTestService(&fakeRepository{})

	direto := []DuplicataMatch{
		{EnderecoOriginal: "Rua A", EnderecoDuplicado: "rua a", Similaridade: 0.97, Confianca: ConfiancaAlta},
		{EnderecoOriginal: "Cidade B", EnderecoDuplicado: "Cidade Be", Similaridade: 0.92, Confianca: ConfiancaMedia},
	}
	invertido := []DuplicataMatch{
		{EnderecoOriginal: "Cidade Be", EnderecoDuplicado: "Cidade B", Similaridade: 0.92, Confianca: ConfiancaMedia},
		{EnderecoOriginal: "rua a", EnderecoDuplicado: "Rua A", Similaridade: 0.97, Confianca: ConfiancaAlta},
	}
	repetido := append(append([]DuplicataMatch{}, direto...), invertido...)

	if got := len(s.SugerirAcoesMesclagemService(repetido)); got != 2 {
		t.Errorf("pares repetidos em qualquer ordem devem gerar 2 ações, obteve %d", got)
	}
}

func TestRevisarDuplicatas(t *testing.T) {
	repo := &fakeRepository{enderecos: []db.Endereco{
		{ID: 1, Descricao: "Rua das Flores, 123", Origem: OrigemImportacao},
		{ID: 2, Descricao: "rua das flores 123", Origem: OrigemImportacao},
	}}
	s := newTestService(repo)

	result, err := s.RevisarDuplicatasService(context.Background(), RevisarDuplicatasRequest{
		Duplicatas: []RevisaoDuplicata{
			{Original: "Rua das Flores, 123", Duplicado: "rua das flores 123", Acao: AcaoMesclar},
			{Original: "A", Duplicado: "B", Acao: AcaoSeparar},
			{Original: "C", Duplicado: "D", Acao: AcaoIgnorar},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Mescladas != 1 || result.Separadas != 1 || result.Ignoradas != 1 {
		t.Errorf("contagens inesperadas: %+v", result)
	}
	if len(result.Erros) != 0 {
		t.Errorf("não esperava erros, obteve %v", result.Erros)
	}
	if len(repo.mesclagens) != 1 {
		t.Fatalf("esperava 1 mesclagem persistida, obteve %d", len(repo.mesclagens))
	}
	if repo.mesclagens[0].ID != 2 || repo.mesclagens[0].MescladoEm.Int64 != 1 {
		t.Errorf("mesclagem deve apontar o duplicado para o original: %+v", repo.mesclagens[0])
	}
}

func TestRevisarDuplicatasAcumulaErros(t *testing.T) {
	repo := &fakeRepository{enderecos: []db.Endereco{
		{ID: 1, Descricao: "Rua A", Origem: OrigemImportacao},
		{ID: 2, Descricao: "rua a", Origem: OrigemImportacao},
	}, mesclagemErr: errors.New("conexão recusada")}
	s := newTestService(repo)

	result, err := s.RevisarDuplicatasService(context.Background(), RevisarDuplicatasRequest{
		Duplicatas: []RevisaoDuplicata{
			{Original: "Rua A", Duplicado: "rua a", Acao: AcaoMesclar},
			{Original: "Rua A", Duplicado: "inexistente", Acao: AcaoMesclar},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Mescladas != 0 {
		t.Errorf("nenhuma mesclagem deve ser contada em caso de erro, obteve %d", result.Mescladas)
	}
	if len(result.Erros) != 2 {
		t.Errorf("esperava 2 erros acumulados, obteve %v", result.Erros)
	}
}

func TestDetectarDuplicatasServiceRelatorio(t *testing.T) {
	s := newTestService(&fakeRepository{})

	result, err := s.DetectarDuplicatasService(context.Background(), DetectarDuplicatasRequest{
		Enderecos: []string{"Rua A, 100", "Rua A 100", "Av. B, 200"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Relatorio.Total != 1 || result.Relatorio.Alta != 1 {
		t.Errorf("relatório inesperado: %+v", result.Relatorio)
	}
	if result.Resumo == "" {
		t.Error("resumo não deve ser vazio")
	}
}

func TestDetectarDuplicatasServiceVerificarBancoPadrao(t *testing.T) {
	repo := &fakeRepository{enderecos: []db.Endereco{
		{ID: 1, Descricao: "Rua das Flores, 123", Origem: OrigemImportacao},
	}}
	s := newTestService(repo)

	// Corpo sem o campo verificar_banco: a comparação com o banco deve rodar.
	var request DetectarDuplicatasRequest
	if err := json.Unmarshal([]byte(`{"enderecos":["rua das flores 123"],"origem":"importacao"}`), &request); err != nil {
		t.Fatal(err)
	}

	result, err := s.DetectarDuplicatasService(context.Background(), request)
	if err != nil {
		t.Fatal(err)
	}
	if result.Relatorio.Total != 1 {
		t.Errorf("campo omitido deve manter a verificação no banco ligada, obteve %d duplicatas", result.Relatorio.Total)
	}
}

func TestDetectarDuplicatasServiceVerificarBancoDesligado(t *testing.T) {
	repo := &fakeRepository{enderecos: []db.Endereco{
		{ID: 1, Descricao: "Rua das Flores, 123", Origem: OrigemImportacao},
	}}
	s := newTestService(repo)

	desligado := false
	result, err := s.DetectarDuplicatasService(context.Background(), DetectarDuplicatasRequest{
		Enderecos:      []string{"rua das flores 123"},
		Origem:         OrigemImportacao,
		VerificarBanco: &desligado,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Relatorio.Total != 0 {
		t.Errorf("verificação desligada não deve comparar com o banco, obteve %d duplicatas", result.Relatorio.Total)
	}
}

func TestDetectarDuplicatasServiceLimiarNegativo(t *testing.T) {
	s := newTestService(&fakeRepository{})

	if _, err := s.DetectarDuplicatasService(context.Background(), DetectarDuplicatasRequest{
		Enderecos: []string{"A", "B"},
		Limiar:    -0.5,
	}); err == nil {
		t.Error("limiar negativo deve ser rejeitado")
	}
}
