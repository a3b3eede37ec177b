// Package attendanting administra os atendentes e calcula as vendas e a
// comissão de cada um. A consulta de vendas serve tanto o painel
// administrativo quanto a visão "minhas vendas" dos usuários de atendimento.
package attendanting

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

var ErrAttendantNotFound = errors.New("atendente não encontrado")

// AttendantSales reúne as vendas de um atendente com o resumo que alimenta
// os cards (total vendido, comissão, ticket médio).
type AttendantSales struct {
	Attendant *domain.Attendant    `json:"attendant"`
	Summary   *domain.SalesSummary `json:"summary"`
	Orders    []domain.Order       `json:"orders"`
}

type AttendantService interface {
	ListAttendants(onlyActive bool) ([]*domain.Attendant, error)
	GetAttendant(attendantID string) (*domain.Attendant, error)
	CreateAttendant(attendant *domain.Attendant) (*domain.Attendant, error)
	UpdateAttendant(attendant *domain.UpdateAttendantRequest) error
	ToggleAttendantActive(attendantID string) (bool, error)
	DeleteAttendant(attendantID string) error
	GetSales(ctx context.Context, attendantID string, filters domain.SalesFilters) (*AttendantSales, error)
}

type Service struct {
	cfg            *config.Config
	attendantRepo  repository.AttendantRepository
	snapshotRepo   repository.OrderSnapshotRepository
	storefrontIntg storefront.StorefrontIntegrator
}

func NewService(
	cfg *config.Config,
	attendantRepo repository.AttendantRepository,
	snapshotRepo repository.OrderSnapshotRepository,
	storefrontIntg storefront.StorefrontIntegrator,
) AttendantService {
	return &Service{
		cfg:            cfg,
		attendantRepo:  attendantRepo,
		snapshotRepo:   snapshotRepo,
		storefrontIntg: storefrontIntg,
	}
}

func (s *Service) ListAttendants(onlyActive bool) ([]*domain.Attendant, error) {
	attendants, err := s.attendantRepo.List(onlyActive)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar atendentes: %w", err)
	}

	return attendants, nil
}

func (s *Service) GetAttendant(attendantID string) (*domain.Attendant, error) {
	attendant, err := s.attendantRepo.GetByID(attendantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar atendente: %w", err)
	}

	if attendant == nil {
		return nil, ErrAttendantNotFound
	}

	return attendant, nil
}

func (s *Service) CreateAttendant(attendant *domain.Attendant) (*domain.Attendant, error) {
	if attendant.Name == "" || attendant.Email == "" {
		return nil, errors.New("nome e email do atendente são obrigatórios")
	}

	if attendant.Percentage < 0 || attendant.Percentage > 100 {
		return nil, errors.New("percentual de comissão deve estar entre 0 e 100")
	}

	if attendant.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o identificador do atendente: %w", err)
		}
		attendant.ID = id
	}

	if err := s.attendantRepo.Create(attendant); err != nil {
		return nil, fmt.Errorf("erro ao criar atendente: %w", err)
	}

	return attendant, nil
}

func (s *Service) UpdateAttendant(attendant *domain.UpdateAttendantRequest) error {
	if attendant.ID == "" {
		return errors.New("ID is required")
	}

	existing, err := s.attendantRepo.GetByID(attendant.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar atendente: %w", err)
	}
	if existing == nil {
		return ErrAttendantNotFound
	}

	if attendant.Percentage != nil && (*attendant.Percentage < 0 || *attendant.Percentage > 100) {
		return errors.New("percentual de comissão deve estar entre 0 e 100")
	}

	return s.attendantRepo.Update(attendant)
}

// ToggleAttendantActive inverte o estado de ativação do atendente e retorna
// o novo estado.
func (s *Service) ToggleAttendantActive(attendantID string) (bool, error) {
	existing, err := s.attendantRepo.GetByID(attendantID)
	if err != nil {
		return false, fmt.Errorf("erro ao consultar atendente: %w", err)
	}
	if existing == nil {
		return false, ErrAttendantNotFound
	}

	newState := !existing.IsActive
	if err := s.attendantRepo.SetActive(attendantID, newState); err != nil {
		return false, fmt.Errorf("erro ao atualizar atendente: %w", err)
	}

	return newState, nil
}

func (s *Service) DeleteAttendant(attendantID string) error {
	existing, err := s.attendantRepo.GetByID(attendantID)
	if err != nil {
		return fmt.Errorf("erro ao consultar atendente: %w", err)
	}
	if existing == nil {
		return ErrAttendantNotFound
	}

	if err := s.attendantRepo.Delete(attendantID); err != nil {
		return fmt.Errorf("erro ao remover atendente: %w", err)
	}

	return nil
}

// GetSales calcula as vendas do atendente no período. O snapshot local
// responde primeiro; quando está vazio (sincronização ainda não rodou), a
// consulta vai direto ao storefront.
func (s *Service) GetSales(ctx context.Context, attendantID string, filters domain.SalesFilters) (*AttendantSales, error) {
	attendant, err := s.GetAttendant(attendantID)
	if err != nil {
		return nil, err
	}

	orderFilters := domain.OrderFilters{
		StartDate:   filters.StartDate,
		EndDate:     filters.EndDate,
		AttendantID: attendantID,
	}

	orders, err := s.snapshotRepo.ListByPeriod(orderFilters)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar snapshot de pedidos: %w", err)
	}

	if len(orders) == 0 {
		log.ForContext(ctx).
			WithField("attendant_id", attendantID).
			Debug("Snapshot vazio para o período, consultando o storefront")

		orders, err = s.storefrontIntg.GetAttendantSales(ctx, attendantID, orderFilters)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar vendas no storefront: %w", err)
		}
	}

	summary := reporting.Summarize(orders, reporting.SummaryConfig{
		Percentage: attendant.Percentage,
		Location:   reporting.LoadLocation(s.cfg.Reporting.Timezone),
	})

	return &AttendantSales{
		Attendant: attendant,
		Summary:   summary,
		Orders:    orders,
	}, nil
}
