package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/storefrontclient"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

func newTestService(t *testing.T, handler http.Handler) (StorefrontIntegrator, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Storefront: config.Storefront{
			URL:         server.URL,
			AccessToken: "test-token",
		},
	}

	return New(cfg, storefrontclient.NewClient(cfg)), server
}

func TestGetOrders_NormalizaGrafiasDoAtendente(t *testing.T) {
	// O backend grava attendant_id ou attendantId dependendo do caminho de
	// escrita; os dois devem resultar no mesmo campo canônico.
	payload := `{
		"orders": [
			{"id": "ord-1", "amount": 1990, "status": "approved", "attendant_id": "att-1", "created_at": "2024-01-10T12:00:00Z", "updated_at": "2024-01-10T12:00:00Z"},
			{"id": "ord-2", "amount": 2990, "status": "Entregue", "attendantId": "att-1", "created_at": "2024-01-11T12:00:00Z", "updated_at": "2024-01-11T12:00:00Z"},
			{"id": "ord-3", "amount": 990, "status": "pendente", "attendantId": "att-2", "created_at": "2024-01-12T12:00:00Z", "updated_at": "2024-01-12T12:00:00Z"}
		],
		"total": 3
	}`

	service, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))

	orders, total, err := service.GetOrders(context.Background(), domain.OrderFilters{})
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, orders, 3)
	assert.Equal(t, "att-1", orders[0].AttendantID)
	assert.Equal(t, "att-1", orders[1].AttendantID)
	assert.Equal(t, "att-2", orders[2].AttendantID)

	// Status legado em português normalizado na fronteira
	assert.Equal(t, domain.OrderStatusApproved, orders[0].Status)
	assert.Equal(t, domain.OrderStatusApproved, orders[1].Status)
	assert.Equal(t, domain.OrderStatusPending, orders[2].Status)
}

func TestGetOrders_FiltraPorAtendenteLocalmente(t *testing.T) {
	payload := `{
		"orders": [
			{"id": "ord-1", "amount": 1000, "status": "approved", "attendant_id": "att-1"},
			{"id": "ord-2", "amount": 2000, "status": "approved", "attendantId": "att-2"},
			{"id": "ord-3", "amount": 3000, "status": "approved"}
		],
		"total": 3
	}`

	service, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))

	orders, _, err := service.GetOrders(context.Background(), domain.OrderFilters{AttendantID: "att-2"})
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "ord-2", orders[0].ID)
}

func TestGetAttendantSales_EndpointDedicado(t *testing.T) {
	service, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/attendants/att-1/sales", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orders": [{"id": "ord-1", "amount": 5000, "status": "approved", "attendant_id": "att-1"}], "total": 1}`))
	}))

	orders, err := service.GetAttendantSales(context.Background(), "att-1", domain.OrderFilters{})
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1", orders[0].ID)
	assert.Equal(t, int64(5000), orders[0].AmountCents)
}

func TestGetAttendantSales_FallbackEquivalente(t *testing.T) {
	// Backend antigo: a rota dedicada responde 404 e a consulta cai para a
	// listagem geral com filtro local. Os dois caminhos devem produzir o
	// mesmo conjunto de pedidos.
	ordersPayload := `{
		"orders": [
			{"id": "ord-1", "amount": 1000, "status": "approved", "attendant_id": "att-1"},
			{"id": "ord-2", "amount": 2000, "status": "pendente", "attendantId": "att-1"},
			{"id": "ord-3", "amount": 3000, "status": "approved", "attendant_id": "att-2"},
			{"id": "ord-4", "amount": 4000, "status": "approved"}
		],
		"total": 4
	}`

	dedicatedPayload := `{
		"orders": [
			{"id": "ord-1", "amount": 1000, "status": "approved", "attendant_id": "att-1"},
			{"id": "ord-2", "amount": 2000, "status": "pendente", "attendantId": "att-1"}
		],
		"total": 2
	}`

	newHandler := func(dedicatedAvailable bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			if strings.HasSuffix(r.URL.Path, "/sales") {
				if !dedicatedAvailable {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.Write([]byte(dedicatedPayload))
				return
			}

			w.Write([]byte(ordersPayload))
		})
	}

	modern, _ := newTestService(t, newHandler(true))
	legacy, _ := newTestService(t, newHandler(false))

	modernOrders, err := modern.GetAttendantSales(context.Background(), "att-1", domain.OrderFilters{})
	require.NoError(t, err)

	legacyOrders, err := legacy.GetAttendantSales(context.Background(), "att-1", domain.OrderFilters{})
	require.NoError(t, err)

	assert.Equal(t, modernOrders, legacyOrders)
	require.Len(t, legacyOrders, 2)
	assert.Equal(t, domain.OrderStatusPending, legacyOrders[1].Status)
}

func TestGetOrderByID_NormalizaStatus(t *testing.T) {
	service, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/ord-42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "ord-42", "amount": 2500, "status": "Entregue", "created_at": "2024-02-01T09:00:00Z"}`))
	}))

	order, err := service.GetOrderByID(context.Background(), "ord-42")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "ord-42", order.ID)
	assert.Equal(t, domain.OrderStatusApproved, order.Status)
	assert.Equal(t, int64(2500), order.AmountCents)
}

func TestGetOrderByID_PedidoInexistente(t *testing.T) {
	service, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	order, err := service.GetOrderByID(context.Background(), "ord-404")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestGetAttendantSales_ErroNao404Propaga(t *testing.T) {
	service, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := service.GetAttendantSales(context.Background(), "att-1", domain.OrderFilters{})
	assert.Error(t, err)
}
