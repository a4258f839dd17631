package importacao

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

var turnosConhecidos = []string{TurnoManha, TurnoTarde, TurnoNoite}

func normalizarNomeAba(nome string) string {
	nome = strings.ToUpper(strings.TrimSpace(nome))
	substituicoes := strings.NewReplacer("Ã", "A", "Á", "A", "Â", "A", "É", "E", "Ê", "E", "Í", "I", "Ó", "O", "Õ", "O", "Ú", "U", "Ç", "C")
	return substituicoes.Replace(nome)
}

// selecionarAba devolve a primeira aba cujo nome corresponde a um turno
// conhecido, junto com o turno identificado.
func selecionarAba(f *excelize.File) (aba, turno string, err error) {
	for _, nome := range f.GetSheetList() {
		normalizado := normalizarNomeAba(nome)
		for _, t := range turnosConhecidos {
			if normalizado == normalizarNomeAba(t) {
				return nome, t, nil
			}
		}
	}
	return "", "", fmt.Errorf("nenhuma aba de turno encontrada (esperava %s)", strings.Join(turnosConhecidos, ", "))
}

func pareceCabecalho(celula string) bool {
	normalizada := normalizarNomeAba(celula)
	return normalizada == "PASSAGEIRO" || normalizada == "NOME"
}

func linhaVazia(row []string) bool {
	for _, celula := range row {
		if strings.TrimSpace(celula) != "" {
			return false
		}
	}
	return true
}

// lerViagens extrai as viagens da aba na ordem Passageiro, Cidade, Endereço,
// Horário. Devolve também o total de linhas de dados não vazias: linhas sem
// passageiro e sem cidade entram no total mas não viram viagem.
func lerViagens(f *excelize.File, aba, turno string) ([]ViagemImportada, int, error) {
	rows, err := f.GetRows(aba)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler a aba %s: %w", aba, err)
	}

	var viagens []ViagemImportada
	total := 0
	for i, row := range rows {
		if linhaVazia(row) {
			continue
		}
		if i == 0 && pareceCabecalho(row[0]) {
			continue
		}
		total++

		coluna := func(indice int) string {
			if indice < len(row) {
				return strings.TrimSpace(row[indice])
			}
			return ""
		}

		viagem := ViagemImportada{
			Passageiro: coluna(0),
			Cidade:     coluna(1),
			Endereco:   coluna(2),
			Horario:    coluna(3),
			Turno:      turno,
		}
		if viagem.Passageiro == "" && viagem.Cidade == "" {
			continue
		}
		viagens = append(viagens, viagem)
	}
	return viagens, total, nil
}

// cidadesDistintas preserva a ordem de primeira ocorrência.
func cidadesDistintas(viagens []ViagemImportada) []string {
	vistas := make(map[string]bool)
	var cidades []string
	for _, viagem := range viagens {
		if viagem.Cidade == "" || vistas[viagem.Cidade] {
			continue
		}
		vistas[viagem.Cidade] = true
		cidades = append(cidades, viagem.Cidade)
	}
	return cidades
}
