// Package checkout implementa o fluxo de pagamento PIX do upsell: criação
// da cobrança, acompanhamento do status e a máquina de estados da oferta.
package checkout

import (
	"context"
	"time"

	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/openpix"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/pkg/log"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultWatchTimeout = 15 * time.Minute
)

// PaymentWatcher acompanha o status de uma cobrança PIX por polling. A
// notificação de aprovação é disparada na transição para pago, exatamente
// uma vez, mesmo que o gateway continue reportando o status pago nas
// consultas seguintes.
type PaymentWatcher struct {
	client       openpix.Client
	pollInterval time.Duration
	timeout      time.Duration
}

func NewPaymentWatcher(cfg *config.Config, client openpix.Client) *PaymentWatcher {
	pollInterval := defaultPollInterval
	if cfg.PaymentWatcher.PollIntervalSeconds > 0 {
		pollInterval = time.Duration(cfg.PaymentWatcher.PollIntervalSeconds) * time.Second
	}

	timeout := defaultWatchTimeout
	if cfg.PaymentWatcher.TimeoutMinutes > 0 {
		timeout = time.Duration(cfg.PaymentWatcher.TimeoutMinutes) * time.Minute
	}

	return &PaymentWatcher{
		client:       client,
		pollInterval: pollInterval,
		timeout:      timeout,
	}
}

// Watch consulta o gateway até a cobrança atingir um status terminal, o
// prazo limite vencer ou o contexto ser cancelado. onApproved é chamado no
// máximo uma vez, na transição para pago. Erros transitórios de consulta
// não encerram o acompanhamento.
func (w *PaymentWatcher) Watch(ctx context.Context, chargeID string, onApproved func()) (domain.ChargeStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	logger := log.ForContext(ctx).WithField("charge_id", chargeID)

	notified := false
	lastStatus := domain.ChargeStatusUnknown

	for {
		select {
		case <-ctx.Done():
			logger.WithField("last_status", lastStatus).
				Info("Acompanhamento de pagamento encerrado sem confirmação")
			return lastStatus, ctx.Err()
		case <-ticker.C:
			status, err := w.client.GetChargeStatus(ctx, chargeID)
			if err != nil {
				// Falha pontual de consulta não desiste da cobrança
				logger.WithError(err).Warn("Erro ao consultar status da cobrança")
				continue
			}

			if status.Paid() && !notified {
				notified = true
				logger.Info("Pagamento PIX confirmado")
				if onApproved != nil {
					onApproved()
				}
			}

			lastStatus = status

			if status.Paid() || status == domain.ChargeStatusExpired {
				return status, nil
			}
		}
	}
}
