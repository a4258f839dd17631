package duplicatas

import (
	"math"
	"testing"
)

func TestNormalizarEndereco(t *testing.T) {
	tests := []struct {
		name     string
		endereco string
		want     string
	}{
		{"minusculas e pontuacao", "Rua das Flores, 123", "das flores 123"},
		{"abreviacao de avenida", "Av. Paulista, 1000", "paulista 1000"},
		{"acentos removidos", "Praça da Sé", "da se"},
		{"espacos colapsados", "  Rua   A   100  ", "a 100"},
		{"vazio", "", ""},
		{"apenas espacos", "   ", ""},
		{"stopword no meio", "Acesso via Rodovia Anchieta", "acesso anchieta"},
		{"palavra que contem stopword", "Ruamar 55", "ruamar 55"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizarEndereco(tt.endereco); got != tt.want {
				t.Errorf("NormalizarEndereco(%q) = %q, esperava %q", tt.endereco, got, tt.want)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"são", "sao", 1},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, esperava %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilaridadeSimetrica(t *testing.T) {
	pares := [][2]string{
		{"rua das flores 123", "rua das flores 321"},
		{"avenida paulista", "av paulista"},
		{"centro", "bairro centro"},
	}

	for _, par := range pares {
		ab := Similaridade(par[0], par[1])
		ba := Similaridade(par[1], par[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Similaridade(%q, %q) = %v difere de Similaridade(%q, %q) = %v",
				par[0], par[1], ab, par[1], par[0], ba)
		}
	}
}

func TestSimilaridadeReflexiva(t *testing.T) {
	for _, s := range []string{"", "rua a 100", "Praça da Sé"} {
		if got := Similaridade(s, s); got != 1.0 {
			t.Errorf("Similaridade(%q, %q) = %v, esperava 1.0", s, s, got)
		}
	}
}

func TestSimilaridadeVazias(t *testing.T) {
	if got := Similaridade("  ", ""); got != 1.0 {
		t.Errorf("duas strings vazias devem ter similaridade 1.0, obteve %v", got)
	}
}

func TestSimilaridadeAposNormalizacao(t *testing.T) {
	a := NormalizarEndereco("Rua das Flores, 123")
	b := NormalizarEndereco("rua das flores 123")
	if got := Similaridade(a, b); got < 0.95 {
		t.Errorf("esperava similaridade >= 0.95 após normalização, obteve %v", got)
	}
}
