// Package reporting concentra o cálculo dos resumos de vendas. Toda view
// (painel, vendas por atendente, painel de influenciador) projeta o resultado
// de Summarize em vez de reimplementar a agregação.
package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/pkg/utils"
)

// DefaultLocationName é o fuso de exibição padrão do painel.
const DefaultLocationName = "America/Sao_Paulo"

// statusBuckets é a ordem estável dos baldes de status no resumo.
var statusBuckets = []domain.OrderStatus{
	domain.OrderStatusApproved,
	domain.OrderStatusPending,
	domain.OrderStatusCancelled,
	domain.OrderStatusUnknown,
}

// SummaryConfig parametriza um resumo de vendas.
type SummaryConfig struct {
	// Percentage é a comissão (0-100) aplicada sobre a receita bruta.
	// Zero significa sem comissão (resumo global do painel).
	Percentage float64
	// Granularity define o balde da série temporal. Vazio desliga a série.
	Granularity domain.Granularity
	// Location é o fuso usado para as chaves da série. Nil usa UTC; o
	// chamador deve passar o fuso de exibição (America/Sao_Paulo).
	Location *time.Location
}

// Summarize consolida uma lista de pedidos em um SalesSummary sem modificar
// a entrada. Pedidos com valor ausente ou negativo contam como pedido de
// valor zero; nenhum pedido é excluído da contagem.
func Summarize(orders []domain.Order, cfg SummaryConfig) *domain.SalesSummary {
	summary := &domain.SalesSummary{
		TotalOrders: len(orders),
	}

	counts := make(map[domain.OrderStatus]int, len(statusBuckets))
	for _, order := range orders {
		if order.AmountCents > 0 {
			summary.TotalRevenueCents += order.AmountCents
		}

		status := order.Status
		if status == "" {
			status = domain.OrderStatusUnknown
		}
		if !knownBucket(status) {
			status = domain.OrderStatusUnknown
		}
		counts[status]++
	}

	summary.CommissionCents = CommissionCents(summary.TotalRevenueCents, cfg.Percentage)

	// Ticket médio definido como zero quando não há pedidos; nunca NaN/Inf.
	if summary.TotalOrders > 0 {
		summary.AverageTicketCents = summary.TotalRevenueCents / int64(summary.TotalOrders)
	}

	summary.StatusBreakdown = make([]domain.StatusCount, 0, len(statusBuckets))
	for _, bucket := range statusBuckets {
		percentage := 0.0
		if summary.TotalOrders > 0 {
			percentage = utils.RoundWithTwoDecimalPlace(float64(counts[bucket]) / float64(summary.TotalOrders) * 100)
		}
		summary.StatusBreakdown = append(summary.StatusBreakdown, domain.StatusCount{
			Status:     bucket,
			Count:      counts[bucket],
			Percentage: percentage,
		})
	}

	if cfg.Granularity != "" {
		summary.Series = buildSeries(orders, cfg.Granularity, cfg.Location)
	}

	return summary
}

// CommissionCents calcula a comissão em centavos sobre a receita bruta.
func CommissionCents(totalRevenueCents int64, percentage float64) int64 {
	if totalRevenueCents <= 0 || percentage <= 0 {
		return 0
	}
	return int64(math.Round(float64(totalRevenueCents) * percentage / 100))
}

// BucketKey deriva a chave de período de um instante no fuso informado. A
// chave é calculada sobre a data local, não sobre a data UTC, para que um
// pedido de 23h30 em São Paulo caia no dia certo.
func BucketKey(t time.Time, granularity domain.Granularity, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)

	switch granularity {
	case domain.GranularityWeek:
		// Chave na segunda-feira da semana.
		offset := (int(local.Weekday()) + 6) % 7
		monday := local.AddDate(0, 0, -offset)
		return monday.Format(time.DateOnly)
	case domain.GranularityMonth:
		return local.Format("2006-01")
	default:
		return local.Format(time.DateOnly)
	}
}

func buildSeries(orders []domain.Order, granularity domain.Granularity, loc *time.Location) []domain.TimeBucket {
	byKey := make(map[string]*domain.TimeBucket)
	for _, order := range orders {
		key := BucketKey(order.CreatedAt, granularity, loc)
		bucket, ok := byKey[key]
		if !ok {
			bucket = &domain.TimeBucket{Key: key}
			byKey[key] = bucket
		}
		bucket.OrderCount++
		if order.AmountCents > 0 {
			bucket.RevenueCents += order.AmountCents
		}
	}

	series := make([]domain.TimeBucket, 0, len(byKey))
	for _, bucket := range byKey {
		series = append(series, *bucket)
	}

	// As chaves (2006-01-02 e 2006-01) ordenam cronologicamente em ordem
	// lexicográfica.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Key < series[j].Key
	})

	return series
}

// FilterByAttendant retorna os pedidos atribuídos ao atendente informado.
func FilterByAttendant(orders []domain.Order, attendantID string) []domain.Order {
	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.AttendantID != "" && order.AttendantID == attendantID {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// FilterByUTMCampaign retorna os pedidos atribuídos à campanha informada.
func FilterByUTMCampaign(orders []domain.Order, campaign string) []domain.Order {
	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.UTMCampaign != "" && order.UTMCampaign == campaign {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

func knownBucket(status domain.OrderStatus) bool {
	for _, bucket := range statusBuckets {
		if status == bucket {
			return true
		}
	}
	return false
}

// LoadLocation carrega o fuso de exibição configurado, caindo para UTC se o
// nome for inválido.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultLocationName
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
