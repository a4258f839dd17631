package duplicatas

const (
	ConfiancaAlta  = "alta"
	ConfiancaMedia = "media"
	ConfiancaBaixa = "baixa"

	AcaoMesclar        = "mesclar"
	AcaoManterSeparado = "manter_separado"
	AcaoSeparar        = "separar"
	AcaoIgnorar        = "ignorar"
)

type DuplicataMatch struct {
	EnderecoOriginal  string  `json:"endereco_original"`
	EnderecoDuplicado string  `json:"endereco_duplicado"`
	Similaridade      float64 `json:"similaridade"`
	Confianca         string  `json:"confianca"`
}

type RelatorioDuplicatas struct {
	Total  int    `json:"total"`
	Alta   int    `json:"alta"`
	Media  int    `json:"media"`
	Baixa  int    `json:"baixa"`
	Resumo string `json:"resumo"`
}

type DetectarDuplicatasRequest struct {
	Enderecos      []string `json:"enderecos"`
	Limiar         float64  `json:"limiar"`
	VerificarBanco *bool    `json:"verificar_banco"`
	Origem         string   `json:"origem"`
}

// DeveVerificarBanco trata o campo omitido como verdadeiro: a comparação com
// os endereços persistidos só é pulada quando o chamador desliga de propósito.
func (r DetectarDuplicatasRequest) DeveVerificarBanco() bool {
	return r.VerificarBanco == nil || *r.VerificarBanco
}

type DetectarDuplicatasResponse struct {
	Duplicatas []DuplicataMatch    `json:"duplicatas"`
	Relatorio  RelatorioDuplicatas `json:"relatorio"`
	Resumo     string              `json:"resumo"`
}

type AcaoMesclagem struct {
	EnderecoOriginal  string  `json:"endereco_original"`
	EnderecoDuplicado string  `json:"endereco_duplicado"`
	Acao              string  `json:"acao"`
	Motivo            string  `json:"motivo"`
	Similaridade      float64 `json:"similaridade"`
}

type RevisaoDuplicata struct {
	Original  string `json:"original"  validate:"required"`
	Duplicado string `json:"duplicado" validate:"required"`
	Acao      string `json:"acao"      validate:"oneof=mesclar separar ignorar"`
	Motivo    string `json:"motivo"`
}

type RevisarDuplicatasRequest struct {
	Duplicatas []RevisaoDuplicata `json:"duplicatas" validate:"required,min=1,dive"`
}

type RevisarDuplicatasResponse struct {
	Mescladas int      `json:"mescladas"`
	Separadas int      `json:"separadas"`
	Ignoradas int      `json:"ignoradas"`
	Erros     []string `json:"erros"`
}
