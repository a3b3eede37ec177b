package openpix

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		OpenPix: config.OpenPix{
			URL:        server.URL,
			AppID:      "test-app-id",
			WebhookURL: "https://api.example.com/v1/payments/webhook",
		},
	})
}

func TestCreateCharge_RegistraWebhookDeConfirmacao(t *testing.T) {
	var captured []byte

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/charge", r.URL.Path)
		assert.Equal(t, "test-app-id", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured = body

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"charge": {
				"correlationID": "c1",
				"status": "ACTIVE",
				"value": 990,
				"brCode": "00020126pix",
				"qrCodeImage": "https://qr.example/img.png"
			}
		}`))
	}))

	charge, err := client.CreateCharge(context.Background(), CreateChargeRequest{
		CorrelationID: "c1",
		ValueCents:    990,
	})
	require.NoError(t, err)

	var sent createChargeBody
	require.NoError(t, json.Unmarshal(captured, &sent))
	assert.Equal(t, "c1", sent.CorrelationID)
	assert.Equal(t, int64(990), sent.Value)
	require.NotNil(t, sent.Webhook)
	assert.Equal(t, "https://api.example.com/v1/payments/webhook", sent.Webhook.URL)
	assert.Contains(t, sent.Webhook.Events, "OPENPIX:CHARGE_COMPLETED")

	assert.Equal(t, domain.ChargeStatusActive, charge.Status)
	assert.Equal(t, "00020126pix", charge.BRCode)
}

func TestGetChargeStatus_TraduzStatusDoGateway(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charge/c1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"charge": {"correlationID": "c1", "status": "COMPLETED", "value": 990}}`))
	}))

	status, err := client.GetChargeStatus(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.ChargeStatusCompleted, status)
}
