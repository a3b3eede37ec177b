package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/dashboard"
	"github.com/vfg2006/engagement-manager-api/pkg/apiErrors"
)

// OrdersListResponse embala a lista paginada de pedidos do painel
type OrdersListResponse struct {
	Orders []domain.Order `json:"orders"`
	Total  int            `json:"total"`
}

// OrderStatusResponse é a resposta da consulta pública de status de pedido.
// Não expõe dados do cliente nem valores.
type OrderStatusResponse struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	PaidAt    *time.Time         `json:"paid_at,omitempty"`
}

// GetDashboardSummary retorna o resumo agregado de vendas do painel. A
// resposta indica se os dados vieram do snapshot local ou diretamente do
// storefront, junto com o horário da última sincronização.
func GetDashboardSummary(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate, endDate, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		granularity := domain.Granularity(r.URL.Query().Get("granularity"))
		switch granularity {
		case "", domain.GranularityDay, domain.GranularityWeek, domain.GranularityMonth:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Granularidade inválida. Valores aceitos: day, week, month", nil)
			return
		}

		summary, err := service.GetSummary(r.Context(), dashboard.SummaryRequest{
			StartDate:   startDate,
			EndDate:     endDate,
			AttendantID: r.URL.Query().Get("attendant_id"),
			UTMCampaign: r.URL.Query().Get("utm_campaign"),
			Granularity: granularity,
		})
		if err != nil {
			logrus.Error("Error building dashboard summary:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao montar resumo de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// ListDashboardOrders retorna a lista paginada de pedidos do painel
func ListDashboardOrders(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate, endDate, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		filters := domain.OrderFilters{
			StartDate:   startDate,
			EndDate:     endDate,
			AttendantID: r.URL.Query().Get("attendant_id"),
			UTMCampaign: r.URL.Query().Get("utm_campaign"),
			Search:      r.URL.Query().Get("search"),
			Sort:        r.URL.Query().Get("sort"),
		}

		if raw := r.URL.Query().Get("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil || page < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro page inválido", nil)
				return
			}
			filters.Page = page
		}

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			filters.Limit = limit
		}

		orders, total, err := service.ListOrders(r.Context(), filters)
		if err != nil {
			logrus.Error("Error listing dashboard orders:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar pedidos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(OrdersListResponse{Orders: orders, Total: total}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetOrderStatus atende a consulta de status de pedido do site. A rota é
// pública: quem tem o identificador do pedido pode acompanhar a entrega.
func GetOrderStatus(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pedido é obrigatório", nil)
			return
		}

		order, err := service.GetOrder(r.Context(), id)
		if err != nil {
			if errors.Is(err, dashboard.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pedido não encontrado", nil)
				return
			}

			logrus.Error("Error fetching order status:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar pedido", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(OrderStatusResponse{
			ID:        order.ID,
			Status:    order.Status,
			CreatedAt: order.CreatedAt,
			PaidAt:    order.PaidAt,
		}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
