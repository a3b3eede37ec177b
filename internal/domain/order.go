package domain

import (
	"strings"
	"time"
)

// OrderStatus é o status canônico de um pedido após a normalização.
type OrderStatus string

const (
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusUnknown agrupa status ausentes ou não reconhecidos. Nenhum
	// pedido é descartado por causa do status.
	OrderStatusUnknown OrderStatus = "N/A"
)

// legacyStatuses mapeia os status em português do mock legado do storefront
// para os valores canônicos.
var legacyStatuses = map[string]OrderStatus{
	"entregue":    OrderStatusApproved,
	"processando": OrderStatusPending,
	"pendente":    OrderStatusPending,
	"cancelado":   OrderStatusCancelled,
}

// ParseOrderStatus normaliza o status vindo do storefront. A comparação é
// case-insensitive e tolera os valores legados em português.
func ParseOrderStatus(raw string) OrderStatus {
	s := strings.ToLower(strings.TrimSpace(raw))

	switch s {
	case "approved":
		return OrderStatusApproved
	case "pending":
		return OrderStatusPending
	case "cancelled", "canceled":
		return OrderStatusCancelled
	}

	if status, ok := legacyStatuses[s]; ok {
		return status
	}

	return OrderStatusUnknown
}

type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Order é a forma canônica de um pedido. Todo valor monetário está em
// centavos; a conversão para reais acontece uma única vez, na formatação
// para exibição.
type Order struct {
	ID          string      `json:"id"`
	AmountCents int64       `json:"amount"`
	Status      OrderStatus `json:"status"`
	Customer    Customer    `json:"customer"`
	// AttendantID é normalizado na fronteira de ingestão: o storefront usa
	// as grafias attendant_id e attendantId para a mesma relação.
	AttendantID string     `json:"attendant_id,omitempty"`
	UTMSource   string     `json:"utm_source,omitempty"`
	UTMMedium   string     `json:"utm_medium,omitempty"`
	UTMCampaign string     `json:"utm_campaign,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// OrderFilters são os filtros aceitos pelas consultas de pedidos.
type OrderFilters struct {
	StartDate   *time.Time
	EndDate     *time.Time
	AttendantID string
	UTMCampaign string
	Search      string
	Page        int
	Limit       int
	Sort        string
}
