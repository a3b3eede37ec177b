package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/openpix"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/pkg/log"
	"github.com/vfg2006/engagement-manager-api/pkg/utils"
)

// UpsellState é o estado da oferta de upsell no checkout.
type UpsellState string

const (
	UpsellStateIdle                 UpsellState = "idle"
	UpsellStateProcessing           UpsellState = "processing"
	UpsellStateAwaitingConfirmation UpsellState = "awaiting_confirmation"
	UpsellStateApproved             UpsellState = "approved"
	UpsellStateExpired              UpsellState = "expired"
	UpsellStateDeclined             UpsellState = "declined"
)

// Terminal indica que a sessão não aceita mais transições.
func (s UpsellState) Terminal() bool {
	switch s {
	case UpsellStateApproved, UpsellStateExpired, UpsellStateDeclined:
		return true
	}
	return false
}

// upsellCountdown é o prazo da oferta: vencido, a sessão expira mesmo sem
// resposta do gateway.
const upsellCountdown = 10 * time.Minute

var (
	ErrSessionNotFound   = errors.New("sessão de upsell não encontrada")
	ErrInvalidTransition = errors.New("transição de estado inválida para a sessão")
)

// UpsellSession é uma oferta de upsell em andamento para um pedido já pago.
type UpsellSession struct {
	ID            string            `json:"id"`
	OrderID       string            `json:"orderId"`
	State         UpsellState       `json:"state"`
	ComboAccepted bool              `json:"comboAccepted"`
	AmountCents   int64             `json:"amount"`
	Charge        *domain.PixCharge `json:"charge,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	ExpiresAt     time.Time         `json:"expiresAt"`
}

type StartUpsellRequest struct {
	OrderID       string `json:"orderId"`
	AmountCents   int64  `json:"amount"`
	ComboAccepted bool   `json:"comboAccepted"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
}

type UpsellService interface {
	StartUpsell(ctx context.Context, req StartUpsellRequest) (*UpsellSession, error)
	GetSession(ctx context.Context, sessionID string) (*UpsellSession, error)
	DeclineUpsell(ctx context.Context, sessionID string) (*UpsellSession, error)
}

type upsellService struct {
	cfg     *config.Config
	gateway openpix.Client
	watcher *PaymentWatcher

	mu       sync.Mutex
	sessions map[string]*UpsellSession
}

func NewUpsellService(cfg *config.Config, gateway openpix.Client, watcher *PaymentWatcher) UpsellService {
	return &upsellService{
		cfg:      cfg,
		gateway:  gateway,
		watcher:  watcher,
		sessions: make(map[string]*UpsellSession),
	}
}

// StartUpsell cria a cobrança PIX da oferta e passa a sessão de idle para
// awaiting_confirmation. O acompanhamento do pagamento roda em segundo
// plano e resolve a sessão para approved ou expired.
func (s *upsellService) StartUpsell(ctx context.Context, req StartUpsellRequest) (*UpsellSession, error) {
	if req.OrderID == "" || req.AmountCents <= 0 {
		return nil, fmt.Errorf("pedido e valor são obrigatórios para iniciar o upsell")
	}

	sessionID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o identificador da sessão: %w", err)
	}

	now := time.Now()
	session := &UpsellSession{
		ID:            sessionID,
		OrderID:       req.OrderID,
		State:         UpsellStateProcessing,
		ComboAccepted: req.ComboAccepted,
		AmountCents:   req.AmountCents,
		CreatedAt:     now,
		ExpiresAt:     now.Add(upsellCountdown),
	}

	charge, err := s.gateway.CreateCharge(ctx, openpix.CreateChargeRequest{
		CorrelationID: fmt.Sprintf("upsell-%s-%s", req.OrderID, sessionID),
		ValueCents:    req.AmountCents,
		Comment:       "Oferta adicional do pedido " + req.OrderID,
		ExpiresIn:     int(upsellCountdown.Seconds()),
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a cobrança do upsell: %w", err)
	}

	session.Charge = charge
	session.State = UpsellStateAwaitingConfirmation

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	// O ciclo de vida do acompanhamento é da sessão, não da requisição que
	// a criou.
	go s.watchSession(context.WithoutCancel(ctx), sessionID, charge.ChargeID)

	return snapshot(session), nil
}

func (s *upsellService) watchSession(ctx context.Context, sessionID, chargeID string) {
	status, err := s.watcher.Watch(ctx, chargeID, func() {
		s.transition(sessionID, UpsellStateApproved)
	})

	if err != nil || status == domain.ChargeStatusExpired {
		s.transition(sessionID, UpsellStateExpired)
	}
}

func (s *upsellService) GetSession(_ context.Context, sessionID string) (*UpsellSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.expireIfOverdue(session)

	return snapshot(session), nil
}

// DeclineUpsell registra a recusa da oferta pelo cliente.
func (s *upsellService) DeclineUpsell(_ context.Context, sessionID string) (*UpsellSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if session.State.Terminal() {
		return nil, ErrInvalidTransition
	}

	session.State = UpsellStateDeclined
	session.ComboAccepted = false

	return snapshot(session), nil
}

// transition resolve a sessão para um estado terminal. Sessões já
// resolvidas não mudam: a primeira transição vence.
func (s *upsellService) transition(sessionID string, to UpsellState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.State.Terminal() {
		return
	}

	session.State = to
	// O aceite do combo só vale se o pagamento for confirmado.
	session.ComboAccepted = to == UpsellStateApproved

	log.L.WithFields(log.Fields{
		"session_id": sessionID,
		"order_id":   session.OrderID,
		"state":      to,
	}).Info("Sessão de upsell resolvida")
}

// expireIfOverdue expira a sessão vencida na leitura, para o caso do
// acompanhamento em segundo plano ainda não ter resolvido.
func (s *upsellService) expireIfOverdue(session *UpsellSession) {
	if !session.State.Terminal() && time.Now().After(session.ExpiresAt) {
		session.State = UpsellStateExpired
		session.ComboAccepted = false
	}
}

func snapshot(session *UpsellSession) *UpsellSession {
	copied := *session
	return &copied
}
