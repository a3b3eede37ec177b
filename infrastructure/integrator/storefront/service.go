package storefront

import (
	"context"
	"errors"

	storefrontdomain "github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/domain"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/storefrontclient"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/pkg/log"
)

type StorefrontIntegrator interface {
	GetOrders(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, int, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	GetAttendantSales(ctx context.Context, attendantID string, filters domain.OrderFilters) ([]domain.Order, error)
	PublishServicePackage(ctx context.Context, pkg domain.ServicePackage) error
}

type StorefrontService struct {
	cfg    *config.Config
	Client storefrontclient.Client
}

func New(cfg *config.Config, client storefrontclient.Client) StorefrontIntegrator {
	return &StorefrontService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *StorefrontService) GetOrders(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, int, error) {
	resp, err := s.Client.ListOrders(ctx, toClientParams(filters))
	if err != nil {
		return nil, 0, err
	}

	orders := storefrontdomain.ToDomainList(resp.Orders)

	// O filtro por atendente é aplicado localmente porque a listagem geral
	// do backend não o aceita como parâmetro de consulta.
	if filters.AttendantID != "" {
		orders = filterByAttendant(orders, filters.AttendantID)
	}

	return orders, resp.Total, nil
}

// GetOrderByID consulta um pedido específico. Retorna nil quando o pedido
// não existe no storefront.
func (s *StorefrontService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	wire, err := s.Client.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, storefrontclient.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	order := wire.ToDomain()

	return &order, nil
}

// GetAttendantSales tenta primeiro o endpoint dedicado de vendas por
// atendente. Versões antigas do backend não expõem essa rota; nesse caso a
// consulta cai para a listagem geral com filtro local, produzindo o mesmo
// resultado.
func (s *StorefrontService) GetAttendantSales(ctx context.Context, attendantID string, filters domain.OrderFilters) ([]domain.Order, error) {
	resp, err := s.Client.GetAttendantSales(ctx, attendantID, toClientParams(filters))
	if err == nil {
		return storefrontdomain.ToDomainList(resp.Orders), nil
	}

	if !errors.Is(err, storefrontclient.ErrNotFound) {
		return nil, err
	}

	log.ForContext(ctx).
		WithField("attendant_id", attendantID).
		Info("Endpoint de vendas por atendente indisponível, usando listagem geral")

	listResp, err := s.Client.ListOrders(ctx, toClientParams(filters))
	if err != nil {
		return nil, err
	}

	return filterByAttendant(storefrontdomain.ToDomainList(listResp.Orders), attendantID), nil
}

func (s *StorefrontService) PublishServicePackage(ctx context.Context, pkg domain.ServicePackage) error {
	return s.Client.CreateServicePackage(ctx, pkg)
}

func toClientParams(filters domain.OrderFilters) storefrontclient.ListOrdersParams {
	return storefrontclient.ListOrdersParams{
		StartDate:   filters.StartDate,
		EndDate:     filters.EndDate,
		UtmCampaign: filters.UTMCampaign,
		Search:      filters.Search,
		Page:        filters.Page,
		Limit:       filters.Limit,
		Sort:        filters.Sort,
	}
}

// filterByAttendant mantém apenas pedidos do atendente informado. Um
// AttendantID vazio no pedido nunca casa com um atendente.
func filterByAttendant(orders []domain.Order, attendantID string) []domain.Order {
	if attendantID == "" {
		return orders
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.AttendantID != "" && order.AttendantID == attendantID {
			filtered = append(filtered, order)
		}
	}

	return filtered
}
