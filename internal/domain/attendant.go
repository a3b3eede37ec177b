package domain

import "time"

// Attendant é um agente de vendas que fecha pedidos e recebe comissão
// percentual sobre a receita bruta dos pedidos atribuídos a ele.
type Attendant struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Percentage float64   `json:"percentage"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UpdateAttendantRequest struct {
	ID         string   `json:"id"`
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Percentage *float64 `json:"percentage"`
	IsActive   *bool    `json:"isActive"`
}
