// Package dashboard serve o resumo consolidado de vendas do painel
// administrativo: KPIs, distribuição por status e série temporal.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/engagement-manager-api/pkg/log"
)

var ErrOrderNotFound = errors.New("pedido não encontrado")

// SummaryRequest delimita o resumo do painel.
type SummaryRequest struct {
	StartDate   *time.Time
	EndDate     *time.Time
	AttendantID string
	UTMCampaign string
	Granularity domain.Granularity
}

// SummaryResponse é o resumo do painel com os metadados de frescor do
// snapshot.
type SummaryResponse struct {
	Summary      *domain.SalesSummary `json:"summary"`
	LastSyncedAt *time.Time           `json:"lastSyncedAt,omitempty"`
	Source       string               `json:"source"`
}

type DashboardService interface {
	GetSummary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error)
	ListOrders(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, int, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type Service struct {
	cfg            *config.Config
	snapshotRepo   repository.OrderSnapshotRepository
	storefrontIntg storefront.StorefrontIntegrator
}

func NewService(
	cfg *config.Config,
	snapshotRepo repository.OrderSnapshotRepository,
	storefrontIntg storefront.StorefrontIntegrator,
) DashboardService {
	return &Service{
		cfg:            cfg,
		snapshotRepo:   snapshotRepo,
		storefrontIntg: storefrontIntg,
	}
}

// GetSummary consolida os pedidos do período. O snapshot local responde
// primeiro; sem snapshot sincronizado, a consulta vai ao storefront.
func (s *Service) GetSummary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error) {
	granularity := req.Granularity
	if granularity == "" {
		granularity = domain.GranularityDay
	}

	filters := domain.OrderFilters{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AttendantID: req.AttendantID,
		UTMCampaign: req.UTMCampaign,
	}

	source := "snapshot"

	lastSync, err := s.snapshotRepo.LastSyncedAt()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar última sincronização: %w", err)
	}

	var orders []domain.Order
	if lastSync != nil {
		orders, err = s.snapshotRepo.ListByPeriod(filters)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar snapshot de pedidos: %w", err)
		}
	} else {
		log.ForContext(ctx).Debug("Snapshot nunca sincronizado, consultando o storefront")

		source = "storefront"
		orders, _, err = s.storefrontIntg.GetOrders(ctx, filters)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar pedidos no storefront: %w", err)
		}
	}

	summary := reporting.Summarize(orders, reporting.SummaryConfig{
		Granularity: granularity,
		Location:    reporting.LoadLocation(s.cfg.Reporting.Timezone),
	})

	return &SummaryResponse{
		Summary:      summary,
		LastSyncedAt: lastSync,
		Source:       source,
	}, nil
}

// ListOrders lista os pedidos do período direto do storefront, com
// paginação. Usado pela tabela de pedidos do painel, que mostra o dado mais
// fresco disponível.
func (s *Service) ListOrders(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, int, error) {
	orders, total, err := s.storefrontIntg.GetOrders(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar pedidos: %w", err)
	}

	return orders, total, nil
}

// GetOrder consulta um pedido específico direto no storefront. Alimenta a
// consulta pública de status de pedido do site.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.storefrontIntg.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pedido: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return order, nil
}
