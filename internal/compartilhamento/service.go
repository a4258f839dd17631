package compartilhamento

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	db "roteirizador/db/sqlc"
	"roteirizador/internal/roteirizador"
	"roteirizador/internal/ws"
	"roteirizador/pkg/whatsapp"
)

var (
	ErrRotaNaoEncontrada             = errors.New("rota não encontrada")
	ErrCompartilhamentoNaoEncontrado = errors.New("compartilhamento não encontrado")
	ErrCompartilhamentoRespondido    = errors.New("compartilhamento já foi respondido")
	ErrLimiteReenvios                = errors.New("limite de reenvios atingido")
	ErrSemTelefone                   = errors.New("compartilhamento sem telefone para envio")
)

type InterfaceService interface {
	CompartilharRotaService(ctx context.Context, data CompartilharRotaDto) (CompartilharRotaResponse, error)
	ReenviarCompartilhamentoService(ctx context.Context, data ReenviarDto) (ReenviarResponse, error)
	ResponderAceiteService(ctx context.Context, token string, request AceiteRequest) (AceiteResponse, error)
	ObterRotaCompartilhadaService(ctx context.Context, token string) (RotaCompartilhadaResponse, error)
}

// Notificador entrega atualizações de aceite em tempo real; o hub de
// websocket implementa a interface.
type Notificador interface {
	NotificarAceite(m ws.AceiteMessage)
}

type Service struct {
	InterfaceService InterfaceRepository
	Notificador      Notificador
	BaseURL          string
	MaxReenvios      int64
	EnviarWhatsApp   func(telefone, mensagem string) error
}

func NewCompartilhamentoService(InterfaceService InterfaceRepository, notificador Notificador, baseURL string, maxReenvios int64) *Service {
	if maxReenvios <= 0 {
		maxReenvios = 3
	}
	return &Service{
		InterfaceService: InterfaceService,
		Notificador:      notificador,
		BaseURL:          baseURL,
		MaxReenvios:      maxReenvios,
		EnviarWhatsApp:   whatsapp.EnviarMensagem,
	}
}

// CompartilharRotaService gera o token, o link público e o QR Code da rota e
// manda o convite por WhatsApp quando houver telefone. O envio é melhor
// esforço; o link e o QR Code já bastam para o motorista responder.
func (s *Service) CompartilharRotaService(ctx context.Context, data CompartilharRotaDto) (CompartilharRotaResponse, error) {
	request := data.CompartilharRotaRequest

	rota, err := s.buscarRotaDoUsuario(ctx, request.RotaID, data.UserID)
	if err != nil {
		return CompartilharRotaResponse{}, err
	}

	telefone := request.Telefone
	motoristaID := sql.NullInt64{}
	if request.MotoristaID > 0 {
		motorista, err := s.InterfaceService.GetMotoristaById(ctx, request.MotoristaID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return CompartilharRotaResponse{}, errors.New("motorista não encontrado")
			}
			return CompartilharRotaResponse{}, err
		}
		motoristaID = sql.NullInt64{Int64: motorista.ID, Valid: true}
		if telefone == "" {
			telefone = motorista.Telefone
		}
	}

	criado, err := s.InterfaceService.CreateCompartilhamento(ctx, db.CreateCompartilhamentoParams{
		RotaID:      rota.ID,
		MotoristaID: motoristaID,
		Token:       uuid.New(),
		Telefone:    sql.NullString{String: telefone, Valid: telefone != ""},
	})
	if err != nil {
		return CompartilharRotaResponse{}, err
	}

	link := s.montarLink(criado.Token)
	qr, err := gerarQRCode(link)
	if err != nil {
		return CompartilharRotaResponse{}, err
	}

	enviada := false
	if telefone != "" {
		if err := s.EnviarWhatsApp(telefone, mensagemConvite(rota.Nome, link)); err != nil {
			log.Println("erro ao enviar convite por WhatsApp:", err)
		} else {
			enviada = true
		}
	}

	return CompartilharRotaResponse{
		Sucesso:         true,
		ID:              criado.ID,
		Token:           criado.Token.String(),
		Link:            link,
		QRCodeBase64:    qr,
		StatusAceite:    criado.StatusAceite,
		MensagemEnviada: enviada,
	}, nil
}

// ReenviarCompartilhamentoService repete o convite enquanto o aceite estiver
// pendente, limitado a MaxReenvios para não virar spam.
func (s *Service) ReenviarCompartilhamentoService(ctx context.Context, data ReenviarDto) (ReenviarResponse, error) {
	compartilhamento, err := s.InterfaceService.GetCompartilhamentoById(ctx, data.CompartilhamentoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReenviarResponse{}, ErrCompartilhamentoNaoEncontrado
		}
		return ReenviarResponse{}, err
	}

	rota, err := s.buscarRotaDoUsuario(ctx, compartilhamento.RotaID, data.UserID)
	if err != nil {
		return ReenviarResponse{}, ErrCompartilhamentoNaoEncontrado
	}

	if compartilhamento.StatusAceite != AceitePendente {
		return ReenviarResponse{}, ErrCompartilhamentoRespondido
	}
	if compartilhamento.Reenvios >= s.MaxReenvios {
		return ReenviarResponse{}, ErrLimiteReenvios
	}
	if !compartilhamento.Telefone.Valid {
		return ReenviarResponse{}, ErrSemTelefone
	}

	link := s.montarLink(compartilhamento.Token)
	if err := s.EnviarWhatsApp(compartilhamento.Telefone.String, mensagemConvite(rota.Nome, link)); err != nil {
		return ReenviarResponse{}, fmt.Errorf("erro ao reenviar convite: %w", err)
	}

	atualizado, err := s.InterfaceService.IncrementReenvios(ctx, compartilhamento.ID)
	if err != nil {
		return ReenviarResponse{}, err
	}

	return ReenviarResponse{
		Sucesso:         true,
		Reenvios:        atualizado.Reenvios,
		MensagemEnviada: true,
	}, nil
}

// ResponderAceiteService é chamado pelo link público, sem autenticação: o
// token é a credencial. A primeira resposta vale; as demais são rejeitadas.
func (s *Service) ResponderAceiteService(ctx context.Context, token string, request AceiteRequest) (AceiteResponse, error) {
	compartilhamento, err := s.buscarPorToken(ctx, token)
	if err != nil {
		return AceiteResponse{}, err
	}

	if compartilhamento.StatusAceite != AceitePendente {
		return AceiteResponse{}, ErrCompartilhamentoRespondido
	}

	atualizado, err := s.InterfaceService.UpdateAceiteCompartilhamento(ctx, db.UpdateAceiteCompartilhamentoParams{
		Token:        compartilhamento.Token,
		StatusAceite: request.Acao,
	})
	if err != nil {
		return AceiteResponse{}, err
	}

	if s.Notificador != nil {
		rota, err := s.InterfaceService.GetRotaById(ctx, atualizado.RotaID)
		if err != nil {
			log.Println("erro ao buscar rota para notificar aceite:", err)
		} else {
			s.Notificador.NotificarAceite(ws.AceiteMessage{
				CompartilhamentoID: atualizado.ID,
				RotaID:             atualizado.RotaID,
				MotoristaID:        atualizado.MotoristaID.Int64,
				StatusAceite:       atualizado.StatusAceite,
				TypeMessage:        "aceite_compartilhamento",
				DonoID:             rota.UserID,
			})
		}
	}

	return AceiteResponse{
		Sucesso:      true,
		StatusAceite: atualizado.StatusAceite,
		Mensagem:     fmt.Sprintf("Compartilhamento %s", atualizado.StatusAceite),
	}, nil
}

// ObterRotaCompartilhadaService devolve a visão pública da rota para quem
// abriu o link antes de responder.
func (s *Service) ObterRotaCompartilhadaService(ctx context.Context, token string) (RotaCompartilhadaResponse, error) {
	compartilhamento, err := s.buscarPorToken(ctx, token)
	if err != nil {
		return RotaCompartilhadaResponse{}, err
	}

	rota, err := s.InterfaceService.GetRotaById(ctx, compartilhamento.RotaID)
	if err != nil {
		return RotaCompartilhadaResponse{}, err
	}

	pontos, err := s.InterfaceService.GetPontosByRotaId(ctx, rota.ID)
	if err != nil {
		return RotaCompartilhadaResponse{}, err
	}

	response := RotaCompartilhadaResponse{
		RotaID:         rota.ID,
		Nome:           rota.Nome,
		Status:         rota.Status,
		DistanciaTotal: rota.DistanciaTotal,
		TempoEstimado:  rota.TempoEstimado,
		StatusAceite:   compartilhamento.StatusAceite,
		Pontos:         make([]roteirizador.PontoEmbarque, 0, len(pontos)),
	}
	for _, ponto := range pontos {
		response.Pontos = append(response.Pontos, roteirizador.PontoEmbarque{
			Nome:              ponto.Nome,
			Endereco:          ponto.Endereco.String,
			Latitude:          ponto.Latitude,
			Longitude:         ponto.Longitude,
			Sequencia:         int(ponto.Sequencia),
			HorarioChegada:    ponto.HorarioChegada.String,
			DistanciaAnterior: ponto.DistanciaAnterior,
		})
	}
	return response, nil
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

func (s *Service) buscarPorToken(ctx context.Context, token string) (db.Compartilhamento, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return db.Compartilhamento{}, ErrCompartilhamentoNaoEncontrado
	}

	compartilhamento, err := s.InterfaceService.GetCompartilhamentoByToken(ctx, parsed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.Compartilhamento{}, ErrCompartilhamentoNaoEncontrado
		}
		return db.Compartilhamento{}, err
	}
	return compartilhamento, nil
}

func (s *Service) montarLink(token uuid.UUID) string {
	return fmt.Sprintf("%s/compartilhamento/%s", s.BaseURL, token.String())
}

func mensagemConvite(nomeRota, link string) string {
	return fmt.Sprintf("Você recebeu a rota %q. Acesse o link para ver os pontos de embarque e responder: %s", nomeRota, link)
}

func gerarQRCode(link string) (string, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar QR Code: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
