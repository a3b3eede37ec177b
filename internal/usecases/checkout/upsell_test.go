package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/openpix"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/openpix/mocks"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestUpsellService(t *testing.T, gateway *mocks.MockClient) *upsellService {
	t.Helper()

	watcher := &PaymentWatcher{
		client:       gateway,
		pollInterval: 5 * time.Millisecond,
		timeout:      time.Second,
	}

	return NewUpsellService(&config.Config{}, gateway, watcher).(*upsellService)
}

func TestStartUpsell_CriaCobrancaEAguardaConfirmacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockClient(ctrl)
	gateway.EXPECT().
		CreateCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req openpix.CreateChargeRequest) (*domain.PixCharge, error) {
			assert.Equal(t, int64(1990), req.ValueCents)
			assert.Equal(t, 600, req.ExpiresIn)
			return &domain.PixCharge{
				ChargeID:    req.CorrelationID,
				Status:      domain.ChargeStatusActive,
				ValueCents:  req.ValueCents,
				BRCode:      "00020126pix",
				QRCodeImage: "https://qr.example/img.png",
			}, nil
		})
	gateway.EXPECT().
		GetChargeStatus(gomock.Any(), gomock.Any()).
		Return(domain.ChargeStatusActive, nil).
		AnyTimes()

	service := newTestUpsellService(t, gateway)

	session, err := service.StartUpsell(context.Background(), StartUpsellRequest{
		OrderID:       "ord-1",
		AmountCents:   1990,
		ComboAccepted: true,
	})
	require.NoError(t, err)

	assert.Equal(t, UpsellStateAwaitingConfirmation, session.State)
	assert.True(t, session.ComboAccepted)
	require.NotNil(t, session.Charge)
	assert.Equal(t, "00020126pix", session.Charge.BRCode)
}

func TestStartUpsell_PagamentoAprovadoResolveSessao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockClient(ctrl)
	gateway.EXPECT().
		CreateCharge(gomock.Any(), gomock.Any()).
		Return(&domain.PixCharge{ChargeID: "charge-1", Status: domain.ChargeStatusActive}, nil)
	gateway.EXPECT().
		GetChargeStatus(gomock.Any(), "charge-1").
		Return(domain.ChargeStatusCompleted, nil).
		AnyTimes()

	service := newTestUpsellService(t, gateway)

	session, err := service.StartUpsell(context.Background(), StartUpsellRequest{
		OrderID:     "ord-1",
		AmountCents: 990,
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		current, err := service.GetSession(context.Background(), session.ID)
		return err == nil && current.State == UpsellStateApproved
	}, time.Second, 10*time.Millisecond)
}

func TestStartUpsell_ValoresObrigatorios(t *testing.T) {
	service := newTestUpsellService(t, nil)

	_, err := service.StartUpsell(context.Background(), StartUpsellRequest{})
	assert.Error(t, err)

	_, err = service.StartUpsell(context.Background(), StartUpsellRequest{OrderID: "ord-1", AmountCents: -10})
	assert.Error(t, err)
}

func TestDeclineUpsell_RecusaSomenteSessaoAtiva(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockClient(ctrl)
	gateway.EXPECT().
		CreateCharge(gomock.Any(), gomock.Any()).
		Return(&domain.PixCharge{ChargeID: "charge-1", Status: domain.ChargeStatusActive}, nil)
	gateway.EXPECT().
		GetChargeStatus(gomock.Any(), gomock.Any()).
		Return(domain.ChargeStatusActive, nil).
		AnyTimes()

	service := newTestUpsellService(t, gateway)

	session, err := service.StartUpsell(context.Background(), StartUpsellRequest{
		OrderID:     "ord-1",
		AmountCents: 990,
	})
	require.NoError(t, err)

	declined, err := service.DeclineUpsell(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, UpsellStateDeclined, declined.State)

	// Sessão já resolvida não aceita nova recusa
	_, err = service.DeclineUpsell(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDeclineUpsell_DerrubaAceiteDoCombo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockClient(ctrl)
	gateway.EXPECT().
		CreateCharge(gomock.Any(), gomock.Any()).
		Return(&domain.PixCharge{ChargeID: "charge-1", Status: domain.ChargeStatusActive}, nil)
	gateway.EXPECT().
		GetChargeStatus(gomock.Any(), gomock.Any()).
		Return(domain.ChargeStatusActive, nil).
		AnyTimes()

	service := newTestUpsellService(t, gateway)

	session, err := service.StartUpsell(context.Background(), StartUpsellRequest{
		OrderID:       "ord-1",
		AmountCents:   990,
		ComboAccepted: true,
	})
	require.NoError(t, err)
	require.True(t, session.ComboAccepted)

	declined, err := service.DeclineUpsell(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, UpsellStateDeclined, declined.State)
	assert.False(t, declined.ComboAccepted)
}

func TestDeclineUpsell_SessaoInexistente(t *testing.T) {
	service := newTestUpsellService(t, nil)

	_, err := service.DeclineUpsell(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetSession_ExpiraSessaoVencidaNaLeitura(t *testing.T) {
	service := newTestUpsellService(t, nil)

	service.sessions["sess-1"] = &UpsellSession{
		ID:            "sess-1",
		OrderID:       "ord-1",
		State:         UpsellStateAwaitingConfirmation,
		ComboAccepted: true,
		ExpiresAt:     time.Now().Add(-time.Minute),
	}

	session, err := service.GetSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, UpsellStateExpired, session.State)
	assert.False(t, session.ComboAccepted)
}

func TestTransition_PrimeiraResolucaoVence(t *testing.T) {
	service := newTestUpsellService(t, nil)

	service.sessions["sess-1"] = &UpsellSession{
		ID:        "sess-1",
		State:     UpsellStateAwaitingConfirmation,
		ExpiresAt: time.Now().Add(time.Minute),
	}

	service.transition("sess-1", UpsellStateApproved)
	service.transition("sess-1", UpsellStateExpired)

	session, err := service.GetSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, UpsellStateApproved, session.State)
}
