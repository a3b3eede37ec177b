package checkout

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/openpix/mocks"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestWatcher(client *mocks.MockClient) *PaymentWatcher {
	return &PaymentWatcher{
		client:       client,
		pollInterval: 5 * time.Millisecond,
		timeout:      time.Second,
	}
}

func TestWatch_NotificaAprovacaoUmaUnicaVez(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	// Sequência de status do gateway: pendente, pendente, pago, pago. A
	// notificação deve disparar uma única vez, na transição para pago.
	statuses := []domain.ChargeStatus{
		domain.ChargeStatusActive,
		domain.ChargeStatusActive,
		domain.ChargeStatusCompleted,
		domain.ChargeStatusCompleted,
	}
	call := 0
	mockClient.EXPECT().
		GetChargeStatus(gomock.Any(), "charge-1").
		DoAndReturn(func(_ context.Context, _ string) (domain.ChargeStatus, error) {
			status := statuses[call]
			if call < len(statuses)-1 {
				call++
			}
			return status, nil
		}).
		AnyTimes()

	var notifications int32
	watcher := newTestWatcher(mockClient)

	status, err := watcher.Watch(context.Background(), "charge-1", func() {
		atomic.AddInt32(&notifications, 1)
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChargeStatusCompleted, status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&notifications))
}

func TestWatch_ErroTransitorioNaoEncerra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	call := 0
	mockClient.EXPECT().
		GetChargeStatus(gomock.Any(), "charge-1").
		DoAndReturn(func(_ context.Context, _ string) (domain.ChargeStatus, error) {
			call++
			if call == 1 {
				return domain.ChargeStatusUnknown, assert.AnError
			}
			return domain.ChargeStatusCompleted, nil
		}).
		AnyTimes()

	watcher := newTestWatcher(mockClient)

	notified := false
	status, err := watcher.Watch(context.Background(), "charge-1", func() { notified = true })

	require.NoError(t, err)
	assert.Equal(t, domain.ChargeStatusCompleted, status)
	assert.True(t, notified)
}

func TestWatch_CobrancaExpiradaNaoNotifica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		GetChargeStatus(gomock.Any(), "charge-1").
		Return(domain.ChargeStatusExpired, nil).
		AnyTimes()

	watcher := newTestWatcher(mockClient)

	status, err := watcher.Watch(context.Background(), "charge-1", func() {
		t.Fatal("não deveria notificar aprovação para cobrança expirada")
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChargeStatusExpired, status)
}

func TestWatch_CancelamentoDoContextoEncerra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		GetChargeStatus(gomock.Any(), "charge-1").
		Return(domain.ChargeStatusActive, nil).
		AnyTimes()

	watcher := newTestWatcher(mockClient)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := watcher.Watch(ctx, "charge-1", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPaymentWatcher_ConfiguracaoDePrazo(t *testing.T) {
	cfg := &config.Config{
		PaymentWatcher: config.PaymentWatcher{
			PollIntervalSeconds: 10,
			TimeoutMinutes:      5,
		},
	}

	watcher := NewPaymentWatcher(cfg, nil)
	assert.Equal(t, 10*time.Second, watcher.pollInterval)
	assert.Equal(t, 5*time.Minute, watcher.timeout)

	// Sem configuração, os padrões valem
	watcher = NewPaymentWatcher(&config.Config{}, nil)
	assert.Equal(t, defaultPollInterval, watcher.pollInterval)
	assert.Equal(t, defaultWatchTimeout, watcher.timeout)
}
