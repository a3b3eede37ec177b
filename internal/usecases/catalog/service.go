// Package catalog administra os pacotes de serviço vendidos no storefront
// (seguidores, curtidas, visualizações por plataforma).
package catalog

import (
	"errors"
	"fmt"

	"github.com/vfg2006/engagement-manager-api/infrastructure/repository"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/pkg/utils"
)

var (
	ErrPackageNotFound    = errors.New("pacote de serviço não encontrado")
	ErrInvalidPlatform    = errors.New("plataforma inválida")
	ErrInvalidServiceType = errors.New("tipo de serviço inválido")
	ErrInvalidPrice       = errors.New("preço deve ser maior que zero")
)

type CatalogService interface {
	ListPackages(onlyActive bool) ([]*domain.ServicePackage, error)
	GetPackage(packageID string) (*domain.ServicePackage, error)
	CreatePackage(pkg *domain.ServicePackage) (*domain.ServicePackage, error)
	UpdatePackage(pkg *domain.UpdateServicePackageRequest) error
	TogglePackageActive(packageID string) (bool, error)
	DeletePackage(packageID string) error
}

type Service struct {
	packageRepo repository.ServicePackageRepository
}

func NewService(packageRepo repository.ServicePackageRepository) CatalogService {
	return &Service{
		packageRepo: packageRepo,
	}
}

func (s *Service) ListPackages(onlyActive bool) ([]*domain.ServicePackage, error) {
	packages, err := s.packageRepo.List(onlyActive)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pacotes de serviço: %w", err)
	}

	return packages, nil
}

func (s *Service) GetPackage(packageID string) (*domain.ServicePackage, error) {
	pkg, err := s.packageRepo.GetByID(packageID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pacote de serviço: %w", err)
	}

	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	return pkg, nil
}

func (s *Service) CreatePackage(pkg *domain.ServicePackage) (*domain.ServicePackage, error) {
	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	if pkg.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o identificador do pacote: %w", err)
		}
		pkg.ID = id
	}

	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, fmt.Errorf("erro ao criar pacote de serviço: %w", err)
	}

	return pkg, nil
}

func (s *Service) UpdatePackage(pkg *domain.UpdateServicePackageRequest) error {
	if pkg.ID == "" {
		return errors.New("ID is required")
	}

	existing, err := s.packageRepo.GetByID(pkg.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar pacote de serviço: %w", err)
	}
	if existing == nil {
		return ErrPackageNotFound
	}

	if pkg.Platform != nil && !domain.ValidPlatform(*pkg.Platform) {
		return ErrInvalidPlatform
	}
	if pkg.ServiceType != nil && !domain.ValidServiceType(*pkg.ServiceType) {
		return ErrInvalidServiceType
	}
	if pkg.Price != nil && *pkg.Price <= 0 {
		return ErrInvalidPrice
	}

	return s.packageRepo.Update(pkg)
}

// TogglePackageActive inverte o estado de ativação do pacote e retorna o
// novo estado. Pacotes desativados saem do site sem perder o histórico.
func (s *Service) TogglePackageActive(packageID string) (bool, error) {
	existing, err := s.packageRepo.GetByID(packageID)
	if err != nil {
		return false, fmt.Errorf("erro ao consultar pacote de serviço: %w", err)
	}
	if existing == nil {
		return false, ErrPackageNotFound
	}

	newState := !existing.IsActive
	if err := s.packageRepo.SetActive(packageID, newState); err != nil {
		return false, fmt.Errorf("erro ao atualizar pacote de serviço: %w", err)
	}

	return newState, nil
}

func (s *Service) DeletePackage(packageID string) error {
	existing, err := s.packageRepo.GetByID(packageID)
	if err != nil {
		return fmt.Errorf("erro ao consultar pacote de serviço: %w", err)
	}
	if existing == nil {
		return ErrPackageNotFound
	}

	if err := s.packageRepo.Delete(packageID); err != nil {
		return fmt.Errorf("erro ao remover pacote de serviço: %w", err)
	}

	return nil
}

func validatePackage(pkg *domain.ServicePackage) error {
	if !domain.ValidPlatform(pkg.Platform) {
		return ErrInvalidPlatform
	}
	if !domain.ValidServiceType(pkg.ServiceType) {
		return ErrInvalidServiceType
	}
	if pkg.Price <= 0 {
		return ErrInvalidPrice
	}
	if pkg.Name == "" {
		return errors.New("nome do pacote é obrigatório")
	}
	if pkg.Quantity <= 0 {
		return errors.New("quantidade deve ser maior que zero")
	}

	return nil
}
