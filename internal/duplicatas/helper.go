package duplicatas

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tipos de logradouro descartados antes da comparação. Endereços como
// "Rua das Flores" e "Av das Flores" devem comparar apenas o nome próprio.
var stopwordsLogradouro = map[string]bool{
	"rua":      true,
	"av":       true,
	"avenida":  true,
	"praca":    true,
	"pca":      true,
	"travessa": true,
	"trav":     true,
	"alameda":  true,
	"estrada":  true,
	"estr":     true,
	"rodovia":  true,
	"rod":      true,
	"via":      true,
	"vl":       true,
}

func removerAcentos(texto string) string {
	decomposto := norm.NFD.String(texto)
	var b strings.Builder
	b.Grow(len(decomposto))
	for _, r := range decomposto {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizarEndereco prepara um endereço livre para comparação: minúsculas,
// sem acentos, sem pontuação, espaços colapsados e tipos de logradouro
// removidos como palavras inteiras.
func NormalizarEndereco(endereco string) string {
	texto := removerAcentos(strings.ToLower(strings.TrimSpace(endereco)))

	var b strings.Builder
	b.Grow(len(texto))
	for _, r := range texto {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	palavras := strings.Fields(b.String())
	filtradas := make([]string, 0, len(palavras))
	for _, palavra := range palavras {
		if stopwordsLogradouro[palavra] {
			continue
		}
		filtradas = append(filtradas, palavra)
	}
	return strings.Join(filtradas, " ")
}

// Levenshtein calcula a distância de edição entre duas strings sobre runas,
// mantendo apenas duas linhas da matriz de programação dinâmica.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	anterior := make([]int, len(rb)+1)
	atual := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		anterior[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		atual[0] = i
		for j := 1; j <= len(rb); j++ {
			custo := 1
			if ra[i-1] == rb[j-1] {
				custo = 0
			}
			substituicao := anterior[j-1] + custo
			insercao := atual[j-1] + 1
			remocao := anterior[j] + 1

			menor := substituicao
			if insercao < menor {
				menor = insercao
			}
			if remocao < menor {
				menor = remocao
			}
			atual[j] = menor
		}
		anterior, atual = atual, anterior
	}
	return anterior[len(rb)]
}

// Similaridade devolve um escore em [0,1] baseado na distância de edição.
// Apenas minúsculas e trim são aplicados aqui; a normalização completa é
// responsabilidade de quem chama. Duas strings vazias são idênticas.
func Similaridade(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" && b == "" {
		return 1
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}
