package domain

import (
	"strings"
	"time"
)

// ChargeStatus é o status de uma cobrança PIX no gateway.
type ChargeStatus string

const (
	ChargeStatusActive    ChargeStatus = "ACTIVE"
	ChargeStatusCompleted ChargeStatus = "COMPLETED"
	ChargeStatusExpired   ChargeStatus = "EXPIRED"
	ChargeStatusUnknown   ChargeStatus = "UNKNOWN"
)

// ParseChargeStatus normaliza o status retornado pelo gateway.
func ParseChargeStatus(raw string) ChargeStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ACTIVE":
		return ChargeStatusActive
	case "COMPLETED", "CONFIRMED", "PAID":
		return ChargeStatusCompleted
	case "EXPIRED":
		return ChargeStatusExpired
	}
	return ChargeStatusUnknown
}

// Paid indica que o pagamento da cobrança foi confirmado.
func (s ChargeStatus) Paid() bool {
	return s == ChargeStatusCompleted
}

// PixCharge é uma cobrança PIX criada no gateway, com os dados necessários
// para exibição no checkout.
type PixCharge struct {
	ChargeID    string       `json:"chargeId"`
	Status      ChargeStatus `json:"status"`
	ValueCents  int64        `json:"value"`
	BRCode      string       `json:"brCode"`
	QRCodeImage string       `json:"qrCodeImage"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}
