package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestSummarize(t *testing.T) {
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		orders   []domain.Order
		cfg      SummaryConfig
		validate func(t *testing.T, summary *domain.SalesSummary)
	}{
		{
			name:   "Lista vazia deve produzir resumo zerado sem divisão por zero",
			orders: []domain.Order{},
			cfg:    SummaryConfig{Percentage: 30},
			validate: func(t *testing.T, summary *domain.SalesSummary) {
				assert.Equal(t, 0, summary.TotalOrders)
				assert.Equal(t, int64(0), summary.TotalRevenueCents)
				assert.Equal(t, int64(0), summary.CommissionCents)
				assert.Equal(t, int64(0), summary.AverageTicketCents)
				assert.Equal(t, "R$ 0,00", FormatBRL(summary.AverageTicketCents))

				for _, bucket := range summary.StatusBreakdown {
					assert.Equal(t, 0, bucket.Count)
					assert.Equal(t, 0.0, bucket.Percentage)
				}
			},
		},
		{
			name: "Receita e comissão somadas em centavos",
			orders: []domain.Order{
				{ID: "o1", AmountCents: 10000, Status: domain.OrderStatusApproved, CreatedAt: base},
				{ID: "o2", AmountCents: 5050, Status: domain.OrderStatusApproved, CreatedAt: base},
			},
			cfg: SummaryConfig{Percentage: 10},
			validate: func(t *testing.T, summary *domain.SalesSummary) {
				assert.Equal(t, 2, summary.TotalOrders)
				assert.Equal(t, int64(15050), summary.TotalRevenueCents)
				assert.Equal(t, int64(1505), summary.CommissionCents)
				assert.Equal(t, int64(7525), summary.AverageTicketCents)
			},
		},
		{
			name: "Pedido com valor inválido conta como pedido de valor zero",
			orders: []domain.Order{
				{ID: "o1", AmountCents: 2000, Status: domain.OrderStatusApproved, CreatedAt: base},
				{ID: "o2", AmountCents: -1, Status: domain.OrderStatusPending, CreatedAt: base},
				{ID: "o3", Status: domain.OrderStatusPending, CreatedAt: base},
			},
			cfg: SummaryConfig{},
			validate: func(t *testing.T, summary *domain.SalesSummary) {
				assert.Equal(t, 3, summary.TotalOrders)
				assert.Equal(t, int64(2000), summary.TotalRevenueCents)
			},
		},
		{
			name: "Baldes de status cobrem todos os pedidos, inclusive status ausente",
			orders: []domain.Order{
				{ID: "o1", Status: domain.OrderStatusApproved, CreatedAt: base},
				{ID: "o2", Status: domain.OrderStatusApproved, CreatedAt: base},
				{ID: "o3", Status: domain.OrderStatusPending, CreatedAt: base},
				{ID: "o4", Status: domain.OrderStatusCancelled, CreatedAt: base},
				{ID: "o5", Status: "", CreatedAt: base},
				{ID: "o6", Status: "algo-inesperado", CreatedAt: base},
			},
			cfg: SummaryConfig{},
			validate: func(t *testing.T, summary *domain.SalesSummary) {
				total := 0
				byStatus := make(map[domain.OrderStatus]int)
				for _, bucket := range summary.StatusBreakdown {
					total += bucket.Count
					byStatus[bucket.Status] = bucket.Count
				}

				// Nenhum pedido fica fora de todos os baldes.
				assert.Equal(t, summary.TotalOrders, total)
				assert.Equal(t, 2, byStatus[domain.OrderStatusApproved])
				assert.Equal(t, 1, byStatus[domain.OrderStatusPending])
				assert.Equal(t, 1, byStatus[domain.OrderStatusCancelled])
				assert.Equal(t, 2, byStatus[domain.OrderStatusUnknown])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.orders, tt.cfg)
			tt.validate(t, summary)
		})
	}
}

func TestSummarize_NaoModificaEntrada(t *testing.T) {
	orders := []domain.Order{
		{ID: "o1", AmountCents: 100, Status: "APPROVED"},
	}

	_ = Summarize(orders, SummaryConfig{Percentage: 50})

	assert.Equal(t, domain.OrderStatus("APPROVED"), orders[0].Status)
	assert.Equal(t, int64(100), orders[0].AmountCents)
}

func TestBucketKey_FusoDeExibicao(t *testing.T) {
	loc := saoPaulo(t)

	// 23h30 em São Paulo é 02h30 UTC do dia seguinte; o balde deve ficar no
	// dia local, não no dia UTC.
	lateNight := time.Date(2024, 1, 15, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-01-16T02:30:00Z", lateNight.UTC().Format(time.RFC3339))

	tests := []struct {
		name        string
		instant     time.Time
		granularity domain.Granularity
		expected    string
	}{
		{
			name:        "Pedido perto da meia-noite cai no dia local",
			instant:     lateNight,
			granularity: domain.GranularityDay,
			expected:    "2024-01-15",
		},
		{
			name:        "Mesmo instante em UTC cairia no dia seguinte",
			instant:     lateNight.UTC(),
			granularity: domain.GranularityDay,
			expected:    "2024-01-15",
		},
		{
			name:        "Balde semanal usa a segunda-feira da semana",
			instant:     time.Date(2024, 1, 18, 10, 0, 0, 0, loc), // quinta-feira
			granularity: domain.GranularityWeek,
			expected:    "2024-01-15",
		},
		{
			name:        "Balde mensal usa ano-mês local",
			instant:     time.Date(2024, 1, 31, 23, 50, 0, 0, loc),
			granularity: domain.GranularityMonth,
			expected:    "2024-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BucketKey(tt.instant, tt.granularity, loc))
		})
	}
}

func TestSummarize_SerieTemporalOrdenada(t *testing.T) {
	loc := saoPaulo(t)

	orders := []domain.Order{
		{ID: "o1", AmountCents: 1000, Status: domain.OrderStatusApproved, CreatedAt: time.Date(2024, 1, 16, 9, 0, 0, 0, loc)},
		{ID: "o2", AmountCents: 2000, Status: domain.OrderStatusApproved, CreatedAt: time.Date(2024, 1, 15, 23, 30, 0, 0, loc)},
		{ID: "o3", AmountCents: 3000, Status: domain.OrderStatusApproved, CreatedAt: time.Date(2024, 1, 15, 8, 0, 0, 0, loc)},
	}

	summary := Summarize(orders, SummaryConfig{
		Granularity: domain.GranularityDay,
		Location:    loc,
	})

	require.Len(t, summary.Series, 2)
	assert.Equal(t, "2024-01-15", summary.Series[0].Key)
	assert.Equal(t, 2, summary.Series[0].OrderCount)
	assert.Equal(t, int64(5000), summary.Series[0].RevenueCents)
	assert.Equal(t, "2024-01-16", summary.Series[1].Key)
	assert.Equal(t, 1, summary.Series[1].OrderCount)
}

func TestFilterByAttendant(t *testing.T) {
	orders := []domain.Order{
		{ID: "o1", AttendantID: "att1"},
		{ID: "o2", AttendantID: "att2"},
		{ID: "o3", AttendantID: "att1"},
		{ID: "o4"},
	}

	filtered := FilterByAttendant(orders, "att1")

	require.Len(t, filtered, 2)
	assert.Equal(t, "o1", filtered[0].ID)
	assert.Equal(t, "o3", filtered[1].ID)

	// Pedidos sem atendente nunca casam com filtro vazio.
	assert.Empty(t, FilterByAttendant(orders, ""))
}

func TestCommissionCents(t *testing.T) {
	tests := []struct {
		name       string
		cents      int64
		percentage float64
		expected   int64
	}{
		{"Comissão de 30% sobre R$ 100,00", 10000, 30, 3000},
		{"Arredondamento para o centavo mais próximo", 3333, 10, 333},
		{"Percentual zero não gera comissão", 10000, 0, 0},
		{"Receita zero não gera comissão", 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CommissionCents(tt.cents, tt.percentage))
		})
	}
}
