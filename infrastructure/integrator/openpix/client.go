package openpix

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o cliente do gateway de pagamento PIX (OpenPix/Woovi).
type Client interface {
	CreateCharge(ctx context.Context, req CreateChargeRequest) (*domain.PixCharge, error)
	GetChargeStatus(ctx context.Context, chargeID string) (domain.ChargeStatus, error)
}

type OpenPixClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenPixClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// CreateChargeRequest descreve a cobrança a criar no gateway. O valor é
// sempre em centavos, como o gateway espera.
type CreateChargeRequest struct {
	CorrelationID string `json:"correlationID"`
	ValueCents    int64  `json:"value"`
	Comment       string `json:"comment,omitempty"`
	ExpiresIn     int    `json:"expiresIn,omitempty"` // segundos
	CustomerEmail string `json:"-"`
	CustomerName  string `json:"-"`
}

type chargeWire struct {
	Charge struct {
		CorrelationID string    `json:"correlationID"`
		Status        string    `json:"status"`
		Value         int64     `json:"value"`
		BRCode        string    `json:"brCode"`
		QRCodeImage   string    `json:"qrCodeImage"`
		ExpiresDate   time.Time `json:"expiresDate"`
	} `json:"charge"`
}

type createChargeBody struct {
	CorrelationID string          `json:"correlationID"`
	Value         int64           `json:"value"`
	Comment       string          `json:"comment,omitempty"`
	ExpiresIn     int             `json:"expiresIn,omitempty"`
	Customer      *chargeCustomer `json:"customer,omitempty"`
	Webhook       *chargeWebhook  `json:"webhook,omitempty"`
}

type chargeWebhook struct {
	URL    string   `json:"url"`
	Events []string `json:"events,omitempty"`
}

type chargeCustomer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// CreateCharge cria uma cobrança PIX com o webhook de confirmação já
// registrado. O QR code e o código copia-e-cola voltam prontos para
// exibição no checkout.
func (c *OpenPixClient) CreateCharge(ctx context.Context, req CreateChargeRequest) (*domain.PixCharge, error) {
	endpoint, err := url.Parse(c.config.OpenPix.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/charge")

	payload := createChargeBody{
		CorrelationID: req.CorrelationID,
		Value:         req.ValueCents,
		Comment:       req.Comment,
		ExpiresIn:     req.ExpiresIn,
	}
	if req.CustomerEmail != "" || req.CustomerName != "" {
		payload.Customer = &chargeCustomer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
		}
	}
	if c.config.OpenPix.WebhookURL != "" {
		payload.Webhook = &chargeWebhook{
			URL:    c.config.OpenPix.WebhookURL,
			Events: []string{"OPENPIX:CHARGE_COMPLETED"},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a cobrança: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	httpReq.Header.Set("Authorization", c.config.OpenPix.AppID)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var wire chargeWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &domain.PixCharge{
		ChargeID:    wire.Charge.CorrelationID,
		Status:      domain.ParseChargeStatus(wire.Charge.Status),
		ValueCents:  wire.Charge.Value,
		BRCode:      wire.Charge.BRCode,
		QRCodeImage: wire.Charge.QRCodeImage,
		ExpiresAt:   wire.Charge.ExpiresDate,
	}, nil
}

// GetChargeStatus consulta o status atual de uma cobrança no gateway.
func (c *OpenPixClient) GetChargeStatus(ctx context.Context, chargeID string) (domain.ChargeStatus, error) {
	endpoint, err := url.Parse(c.config.OpenPix.URL)
	if err != nil {
		return domain.ChargeStatusUnknown, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/charge", chargeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return domain.ChargeStatusUnknown, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", c.config.OpenPix.AppID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ChargeStatusUnknown, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ChargeStatusUnknown, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var wire chargeWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return domain.ChargeStatusUnknown, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return domain.ParseChargeStatus(wire.Charge.Status), nil
}
