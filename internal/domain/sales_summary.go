package domain

import "time"

// Granularity define o tamanho do balde da série temporal de vendas.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// StatusCount é a contagem de pedidos de um balde de status. A soma dos
// Count de todos os baldes é sempre igual ao total de pedidos.
type StatusCount struct {
	Status     OrderStatus `json:"status"`
	Count      int         `json:"count"`
	Percentage float64     `json:"percentage"`
}

// TimeBucket é um ponto da série temporal de vendas. Key é a chave do
// período já no fuso de exibição (2006-01-02 para dia, 2006-01 para mês).
type TimeBucket struct {
	Key          string `json:"key"`
	OrderCount   int    `json:"orderCount"`
	RevenueCents int64  `json:"revenue"`
}

// SalesSummary é o resumo consolidado de vendas consumido pelos cards de KPI
// e gráficos do painel. Todos os valores monetários estão em centavos.
type SalesSummary struct {
	TotalOrders        int           `json:"totalOrders"`
	TotalRevenueCents  int64         `json:"totalRevenue"`
	CommissionCents    int64         `json:"totalSales"`
	AverageTicketCents int64         `json:"averageTicket"`
	StatusBreakdown    []StatusCount `json:"statusBreakdown"`
	Series             []TimeBucket  `json:"series,omitempty"`
}

// SalesFilters delimita o período considerado em um resumo de vendas.
type SalesFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
