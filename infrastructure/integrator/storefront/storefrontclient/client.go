package storefrontclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	storefrontdomain "github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/domain"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound indica que o backend respondeu 404 para o recurso consultado.
var ErrNotFound = errors.New("recurso não encontrado no storefront")

type Client interface {
	ListOrders(ctx context.Context, params ListOrdersParams) (OrdersResponse, error)
	GetOrderByID(ctx context.Context, orderID string) (storefrontdomain.Order, error)
	GetAttendantSales(ctx context.Context, attendantID string, params ListOrdersParams) (OrdersResponse, error)
	CreateServicePackage(ctx context.Context, pkg domain.ServicePackage) error
}

type StorefrontClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StorefrontClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// OrdersResponse é uma página de pedidos no formato de fio do storefront.
type OrdersResponse struct {
	Orders []storefrontdomain.Order `json:"orders"`
	Total  int                      `json:"total"`
	Page   int                      `json:"page"`
	Limit  int                      `json:"limit"`
}
