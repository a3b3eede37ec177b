// Package paging administra as landing pages de marketing e seus links UTM
// rastreáveis.
package paging

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vfg2006/engagement-manager-api/infrastructure/repository"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/pkg/utils"
)

var (
	ErrPageNotFound    = errors.New("página não encontrada")
	ErrUtmLinkNotFound = errors.New("link UTM não encontrado")
)

type PageService interface {
	ListPages() ([]*domain.CompanyPage, error)
	GetPage(pageID string) (*domain.CompanyPage, error)
	CreatePage(page *domain.CompanyPage) (*domain.CompanyPage, error)
	UpdatePage(page *domain.UpdateCompanyPageRequest) error
	DeletePage(pageID string) error
	CreateUtmLink(link *domain.UtmLink) (*domain.UtmLink, error)
	DeleteUtmLink(pageID, linkID string) error
}

type Service struct {
	pageRepo repository.CompanyPageRepository
}

func NewService(pageRepo repository.CompanyPageRepository) PageService {
	return &Service{
		pageRepo: pageRepo,
	}
}

func (s *Service) ListPages() ([]*domain.CompanyPage, error) {
	pages, err := s.pageRepo.ListPages()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar páginas: %w", err)
	}

	return pages, nil
}

func (s *Service) GetPage(pageID string) (*domain.CompanyPage, error) {
	page, err := s.pageRepo.GetPageByID(pageID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar página: %w", err)
	}

	if page == nil {
		return nil, ErrPageNotFound
	}

	return page, nil
}

func (s *Service) CreatePage(page *domain.CompanyPage) (*domain.CompanyPage, error) {
	if page.Name == "" {
		return nil, errors.New("nome da página é obrigatório")
	}

	if page.Slug == "" {
		page.Slug = slugify(page.Name)
	}

	if page.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o identificador da página: %w", err)
		}
		page.ID = id
	}

	if err := s.pageRepo.CreatePage(page); err != nil {
		return nil, fmt.Errorf("erro ao criar página: %w", err)
	}

	return page, nil
}

func (s *Service) UpdatePage(page *domain.UpdateCompanyPageRequest) error {
	if page.ID == "" {
		return errors.New("ID is required")
	}

	existing, err := s.pageRepo.GetPageByID(page.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar página: %w", err)
	}
	if existing == nil {
		return ErrPageNotFound
	}

	return s.pageRepo.UpdatePage(page)
}

// DeletePage remove a página e todos os links UTM dela.
func (s *Service) DeletePage(pageID string) error {
	existing, err := s.pageRepo.GetPageByID(pageID)
	if err != nil {
		return fmt.Errorf("erro ao consultar página: %w", err)
	}
	if existing == nil {
		return ErrPageNotFound
	}

	if err := s.pageRepo.DeletePage(pageID); err != nil {
		return fmt.Errorf("erro ao remover página: %w", err)
	}

	return nil
}

// CreateUtmLink cria um link rastreável da página. A URL final é montada a
// partir da URL da página com os parâmetros UTM anexados.
func (s *Service) CreateUtmLink(link *domain.UtmLink) (*domain.UtmLink, error) {
	if link.PageID == "" {
		return nil, errors.New("página do link é obrigatória")
	}
	if link.UtmSource == "" || link.UtmCampaign == "" {
		return nil, errors.New("utm_source e utm_campaign são obrigatórios")
	}

	page, err := s.pageRepo.GetPageByID(link.PageID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar página: %w", err)
	}
	if page == nil {
		return nil, ErrPageNotFound
	}

	if link.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o identificador do link: %w", err)
		}
		link.ID = id
	}

	if link.URL == "" {
		trackedURL, err := BuildTrackedURL(page.URL, link)
		if err != nil {
			return nil, err
		}
		link.URL = trackedURL
	}

	if err := s.pageRepo.CreateUtmLink(link); err != nil {
		return nil, fmt.Errorf("erro ao criar link UTM: %w", err)
	}

	return link, nil
}

func (s *Service) DeleteUtmLink(pageID, linkID string) error {
	links, err := s.pageRepo.ListUtmLinks(pageID)
	if err != nil {
		return fmt.Errorf("erro ao listar links da página: %w", err)
	}

	for _, link := range links {
		if link.ID == linkID {
			return s.pageRepo.DeleteUtmLink(linkID)
		}
	}

	return ErrUtmLinkNotFound
}

// BuildTrackedURL anexa os parâmetros UTM do link à URL base da página.
func BuildTrackedURL(baseURL string, link *domain.UtmLink) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL da página: %w", err)
	}

	query := parsed.Query()
	query.Set("utm_source", link.UtmSource)
	if link.UtmMedium != "" {
		query.Set("utm_medium", link.UtmMedium)
	}
	query.Set("utm_campaign", link.UtmCampaign)
	if link.UtmID != "" {
		query.Set("utm_id", link.UtmID)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
