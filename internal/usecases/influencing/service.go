// Package influencing administra o programa de influenciadores. As vendas
// são atribuídas pelo parâmetro utm_campaign dos pedidos, que carrega o UID
// do influenciador nos links de divulgação.
package influencing

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/engagement-manager-api/pkg/log"
	"github.com/vfg2006/engagement-manager-api/pkg/utils"
)

var ErrInfluencerNotFound = errors.New("influenciador não encontrado")

// InfluencerSales reúne as vendas atribuídas a um influenciador com o
// resumo de comissão.
type InfluencerSales struct {
	Influencer *domain.Influencer   `json:"influencer"`
	Summary    *domain.SalesSummary `json:"summary"`
	Orders     []domain.Order       `json:"orders"`
}

type InfluencerService interface {
	ListInfluencers(onlyActive bool) ([]*domain.Influencer, error)
	GetInfluencer(influencerID string) (*domain.Influencer, error)
	CreateInfluencer(influencer *domain.Influencer) (*domain.Influencer, error)
	UpdateInfluencer(influencer *domain.UpdateInfluencerRequest) error
	ToggleInfluencerActive(influencerID string) (bool, error)
	DeleteInfluencer(influencerID string) error
	GetSales(ctx context.Context, influencerID string, filters domain.SalesFilters) (*InfluencerSales, error)
}

type Service struct {
	cfg            *config.Config
	influencerRepo repository.InfluencerRepository
	snapshotRepo   repository.OrderSnapshotRepository
	storefrontIntg storefront.StorefrontIntegrator
}

func NewService(
	cfg *config.Config,
	influencerRepo repository.InfluencerRepository,
	snapshotRepo repository.OrderSnapshotRepository,
	storefrontIntg storefront.StorefrontIntegrator,
) InfluencerService {
	return &Service{
		cfg:            cfg,
		influencerRepo: influencerRepo,
		snapshotRepo:   snapshotRepo,
		storefrontIntg: storefrontIntg,
	}
}

func (s *Service) ListInfluencers(onlyActive bool) ([]*domain.Influencer, error) {
	influencers, err := s.influencerRepo.List(onlyActive)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar influenciadores: %w", err)
	}

	return influencers, nil
}

func (s *Service) GetInfluencer(influencerID string) (*domain.Influencer, error) {
	influencer, err := s.influencerRepo.GetByID(influencerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar influenciador: %w", err)
	}

	if influencer == nil {
		return nil, ErrInfluencerNotFound
	}

	return influencer, nil
}

func (s *Service) CreateInfluencer(influencer *domain.Influencer) (*domain.Influencer, error) {
	if influencer.Name == "" || influencer.Email == "" {
		return nil, errors.New("nome e email do influenciador são obrigatórios")
	}

	if influencer.Percentage < 0 || influencer.Percentage > 100 {
		return nil, errors.New("percentual de comissão deve estar entre 0 e 100")
	}

	if influencer.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o identificador do influenciador: %w", err)
		}
		influencer.ID = id
	}

	// UID é o valor que circula nos links UTM; estável e independente do ID
	// interno
	if influencer.UID == "" {
		uid, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o UID do influenciador: %w", err)
		}
		influencer.UID = uid
	}

	if err := s.influencerRepo.Create(influencer); err != nil {
		return nil, fmt.Errorf("erro ao criar influenciador: %w", err)
	}

	return influencer, nil
}

func (s *Service) UpdateInfluencer(influencer *domain.UpdateInfluencerRequest) error {
	if influencer.ID == "" {
		return errors.New("ID is required")
	}

	existing, err := s.influencerRepo.GetByID(influencer.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar influenciador: %w", err)
	}
	if existing == nil {
		return ErrInfluencerNotFound
	}

	if influencer.Percentage != nil && (*influencer.Percentage < 0 || *influencer.Percentage > 100) {
		return errors.New("percentual de comissão deve estar entre 0 e 100")
	}

	return s.influencerRepo.Update(influencer)
}

// ToggleInfluencerActive inverte o estado de ativação do influenciador e
// retorna o novo estado.
func (s *Service) ToggleInfluencerActive(influencerID string) (bool, error) {
	existing, err := s.influencerRepo.GetByID(influencerID)
	if err != nil {
		return false, fmt.Errorf("erro ao consultar influenciador: %w", err)
	}
	if existing == nil {
		return false, ErrInfluencerNotFound
	}

	newState := !existing.IsActive
	if err := s.influencerRepo.SetActive(influencerID, newState); err != nil {
		return false, fmt.Errorf("erro ao atualizar influenciador: %w", err)
	}

	return newState, nil
}

func (s *Service) DeleteInfluencer(influencerID string) error {
	existing, err := s.influencerRepo.GetByID(influencerID)
	if err != nil {
		return fmt.Errorf("erro ao consultar influenciador: %w", err)
	}
	if existing == nil {
		return ErrInfluencerNotFound
	}

	if err := s.influencerRepo.Delete(influencerID); err != nil {
		return fmt.Errorf("erro ao remover influenciador: %w", err)
	}

	return nil
}

// GetSales calcula as vendas atribuídas ao influenciador no período. A
// atribuição usa o utm_campaign do pedido, que carrega o UID do
// influenciador.
func (s *Service) GetSales(ctx context.Context, influencerID string, filters domain.SalesFilters) (*InfluencerSales, error) {
	influencer, err := s.GetInfluencer(influencerID)
	if err != nil {
		return nil, err
	}

	orderFilters := domain.OrderFilters{
		StartDate:   filters.StartDate,
		EndDate:     filters.EndDate,
		UTMCampaign: influencer.UID,
	}

	orders, err := s.snapshotRepo.ListByPeriod(orderFilters)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar snapshot de pedidos: %w", err)
	}

	if len(orders) == 0 {
		log.ForContext(ctx).
			WithField("influencer_id", influencerID).
			Debug("Snapshot vazio para o período, consultando o storefront")

		orders, _, err = s.storefrontIntg.GetOrders(ctx, orderFilters)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar vendas no storefront: %w", err)
		}

		orders = reporting.FilterByUTMCampaign(orders, influencer.UID)
	}

	summary := reporting.Summarize(orders, reporting.SummaryConfig{
		Percentage: influencer.Percentage,
		Location:   reporting.LoadLocation(s.cfg.Reporting.Timezone),
	})

	return &InfluencerSales{
		Influencer: influencer,
		Summary:    summary,
		Orders:     orders,
	}, nil
}
