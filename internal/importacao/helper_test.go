package importacao

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func planilhaDeTeste(t *testing.T, aba string, linhas [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", aba); err != nil {
		t.Fatal(err)
	}
	for i, linha := range linhas {
		celula, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(aba, celula, &linha); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

func TestSelecionarAba(t *testing.T) {
	tests := []struct {
		name  string
		aba   string
		turno string
	}{
		{"manha com acento", "MANHÃ", TurnoManha},
		{"manha sem acento", "manha", TurnoManha},
		{"tarde", "Tarde", TurnoTarde},
		{"noite", "NOITE", TurnoNoite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := planilhaDeTeste(t, tt.aba, nil)
			defer f.Close()

			aba, turno, err := selecionarAba(f)
			if err != nil {
				t.Fatal(err)
			}
			if aba != tt.aba || turno != tt.turno {
				t.Errorf("esperava aba %q com turno %q, obteve %q / %q", tt.aba, tt.turno, aba, turno)
			}
		})
	}
}

func TestSelecionarAbaSemTurno(t *testing.T) {
	f := planilhaDeTeste(t, "Relatório", nil)
	defer f.Close()

	if _, _, err := selecionarAba(f); err == nil {
		t.Error("planilha sem aba de turno deve ser rejeitada")
	}
}

func TestLerViagens(t *testing.T) {
	f := planilhaDeTeste(t, "MANHÃ", [][]interface{}{
		{"Passageiro", "Cidade", "Endereço", "Horário"},
		{"Maria", "São Paulo", "Rua das Flores, 123", "06:30"},
		{"João", "Campinas", "Av. Central, 45", "07:00"},
		{"", "", "", ""},
	})
	defer f.Close()

	viagens, total, err := lerViagens(f, "MANHÃ", TurnoManha)
	if err != nil {
		t.Fatal(err)
	}
	if len(viagens) != 2 {
		t.Fatalf("esperava 2 viagens (cabeçalho e linha vazia ignorados), obteve %d", len(viagens))
	}
	if total != 2 {
		t.Errorf("cabeçalho e linha vazia não contam no total, obteve %d", total)
	}
	if viagens[0].Passageiro != "Maria" || viagens[0].Cidade != "São Paulo" {
		t.Errorf("primeira viagem inesperada: %+v", viagens[0])
	}
	if viagens[0].Turno != TurnoManha {
		t.Errorf("turno deve vir da aba selecionada, obteve %q", viagens[0].Turno)
	}
	if viagens[1].Horario != "07:00" {
		t.Errorf("horário inesperado: %q", viagens[1].Horario)
	}
}

func TestLerViagensContaLinhasNaoAproveitadas(t *testing.T) {
	f := planilhaDeTeste(t, "MANHÃ", [][]interface{}{
		{"Passageiro", "Cidade", "Endereço", "Horário"},
		{"Maria", "São Paulo", "Rua das Flores, 123", "06:30"},
		{"", "", "Av. Central, 45", "07:00"},
	})
	defer f.Close()

	viagens, total, err := lerViagens(f, "MANHÃ", TurnoManha)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("linha só com endereço conta no total, obteve %d", total)
	}
	if len(viagens) != 1 {
		t.Errorf("linha sem passageiro e cidade não vira viagem, obteve %d", len(viagens))
	}
}

func TestCidadesDistintas(t *testing.T) {
	viagens := []ViagemImportada{
		{Cidade: "São Paulo"},
		{Cidade: "Campinas"},
		{Cidade: "São Paulo"},
		{Cidade: ""},
	}

	cidades := cidadesDistintas(viagens)
	if len(cidades) != 2 {
		t.Fatalf("esperava 2 cidades distintas, obteve %d", len(cidades))
	}
	if cidades[0] != "São Paulo" || cidades[1] != "Campinas" {
		t.Errorf("ordem de primeira ocorrência não preservada: %v", cidades)
	}
}
