package storefrontdomain

import (
	"time"

	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

type Customer struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Order é o pedido no formato de fio do storefront. O backend grava a
// relação com o atendente ora como attendant_id, ora como attendantId,
// dependendo do caminho de escrita; os dois campos são aceitos aqui e
// normalizados em ToDomain.
type Order struct {
	ID                string     `json:"id,omitempty"`
	Amount            int64      `json:"amount,omitempty"`
	Status            string     `json:"status,omitempty"`
	Customer          Customer   `json:"customer,omitempty"`
	AttendantIDSnake  string     `json:"attendant_id,omitempty"`
	AttendantIDCamel  string     `json:"attendantId,omitempty"`
	UtmSource         string     `json:"utm_source,omitempty"`
	UtmMedium         string     `json:"utm_medium,omitempty"`
	UtmCampaign       string     `json:"utm_campaign,omitempty"`
	CreatedAt         time.Time  `json:"created_at,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

// ToDomain converte o pedido para a forma canônica. A normalização do
// status e das grafias do atendente acontece aqui, na fronteira de
// ingestão, para que o restante do sistema nunca lide com as variações.
func (o Order) ToDomain() domain.Order {
	attendantID := o.AttendantIDSnake
	if attendantID == "" {
		attendantID = o.AttendantIDCamel
	}

	return domain.Order{
		ID:          o.ID,
		AmountCents: o.Amount,
		Status:      domain.ParseOrderStatus(o.Status),
		Customer: domain.Customer{
			Email:     o.Customer.Email,
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
		},
		AttendantID: attendantID,
		UTMSource:   o.UtmSource,
		UTMMedium:   o.UtmMedium,
		UTMCampaign: o.UtmCampaign,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		PaidAt:      o.PaidAt,
	}
}

// ToDomainList converte uma página de pedidos para a forma canônica.
func ToDomainList(orders []Order) []domain.Order {
	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ToDomain())
	}

	return result
}
