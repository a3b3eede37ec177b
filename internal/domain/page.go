package domain

import "time"

// UtmMetrics são as métricas derivadas de um link UTM. Clicks vem do
// storefront; conversões e receita são recalculadas a partir do snapshot de
// pedidos pelo sincronizador de métricas UTM.
type UtmMetrics struct {
	Clicks       int   `json:"clicks"`
	Conversions  int   `json:"conversions"`
	RevenueCents int64 `json:"revenue"`
}

// UtmLink é um link rastreável de uma página de marketing.
type UtmLink struct {
	ID          string     `json:"id"`
	PageID      string     `json:"pageId"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	UtmSource   string     `json:"utmSource"`
	UtmMedium   string     `json:"utmMedium"`
	UtmCampaign string     `json:"utmCampaign"`
	UtmID       string     `json:"utmId,omitempty"`
	Metrics     UtmMetrics `json:"metrics"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CompanyPage é uma landing page de marketing que agrupa links UTM.
type CompanyPage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	URL       string    `json:"url,omitempty"`
	IsActive  bool      `json:"isActive"`
	UtmLinks  []UtmLink `json:"utmLinks,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpdateCompanyPageRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	URL      *string `json:"url"`
	IsActive *bool   `json:"isActive"`
}
