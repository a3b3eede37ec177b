package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/engagement-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

const (
	companyPagesTable = "company_pages cp"
	utmLinksTable     = "utm_links ul"
)

type CompanyPageRepository interface {
	ListPages() ([]*domain.CompanyPage, error)
	GetPageByID(pageID string) (*domain.CompanyPage, error)
	CreatePage(page *domain.CompanyPage) error
	UpdatePage(page *domain.UpdateCompanyPageRequest) error
	DeletePage(pageID string) error
	ListUtmLinks(pageID string) ([]*domain.UtmLink, error)
	CreateUtmLink(link *domain.UtmLink) error
	DeleteUtmLink(linkID string) error
	UpdateUtmMetrics(linkID string, metrics domain.UtmMetrics) error
}

type companyPageRepository struct {
	conn *postgres.Connection
}

func NewCompanyPageRepository(conn *postgres.Connection) CompanyPageRepository {
	return &companyPageRepository{
		conn: conn,
	}
}

func (r *companyPageRepository) ListPages() ([]*domain.CompanyPage, error) {
	pagesSQL, pagesArgs, err := squirrel.
		Select("cp.id, cp.name, cp.slug, cp.url, cp.is_active, cp.created_at, cp.updated_at").
		From(companyPagesTable).
		OrderBy("cp.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(pagesSQL, pagesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	pages := make([]*domain.CompanyPage, 0)

	for rows.Next() {
		page := &domain.CompanyPage{}

		if err := rows.Scan(
			&page.ID,
			&page.Name,
			&page.Slug,
			&page.URL,
			&page.IsActive,
			&page.CreatedAt,
			&page.UpdatedAt,
		); err != nil {
			return nil, err
		}

		pages = append(pages, page)
	}

	return pages, nil
}

// GetPageByID retorna a página com seus links UTM já carregados.
func (r *companyPageRepository) GetPageByID(pageID string) (*domain.CompanyPage, error) {
	pageSQL, pageArgs, err := squirrel.
		Select("cp.id, cp.name, cp.slug, cp.url, cp.is_active, cp.created_at, cp.updated_at").
		From(companyPagesTable).
		Where(squirrel.Eq{"cp.id": pageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	page := &domain.CompanyPage{}

	row := r.conn.QueryRow(pageSQL, pageArgs...)
	if err := row.Scan(
		&page.ID,
		&page.Name,
		&page.Slug,
		&page.URL,
		&page.IsActive,
		&page.CreatedAt,
		&page.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	links, err := r.ListUtmLinks(pageID)
	if err != nil {
		return nil, err
	}

	for _, link := range links {
		page.UtmLinks = append(page.UtmLinks, *link)
	}

	return page, nil
}

func (r *companyPageRepository) CreatePage(page *domain.CompanyPage) error {
	now := time.Now()

	insertSQL, insertArgs, err := squirrel.
		Insert("company_pages").
		Columns("id", "name", "slug", "url", "is_active", "created_at", "updated_at").
		Values(page.ID, page.Name, page.Slug, page.URL, page.IsActive, now, now).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(insertSQL, insertArgs...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *companyPageRepository) UpdatePage(page *domain.UpdateCompanyPageRequest) error {
	queryBuilder := squirrel.
		Update("company_pages").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": page.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if page.Name != nil {
		queryBuilder = queryBuilder.Set("name", *page.Name)
	}
	if page.Slug != nil {
		queryBuilder = queryBuilder.Set("slug", *page.Slug)
	}
	if page.URL != nil {
		queryBuilder = queryBuilder.Set("url", *page.URL)
	}
	if page.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *page.IsActive)
	}

	updateSQL, updateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(updateSQL, updateArgs...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeletePage remove a página e os links UTM que pertencem a ela.
func (r *companyPageRepository) DeletePage(pageID string) error {
	linksSQL, linksArgs, err := squirrel.
		Delete("utm_links").
		Where(squirrel.Eq{"page_id": pageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(linksSQL, linksArgs...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	deleteSQL, deleteArgs, err := squirrel.
		Delete("company_pages").
		Where(squirrel.Eq{"id": pageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *companyPageRepository) ListUtmLinks(pageID string) ([]*domain.UtmLink, error) {
	linksSQL, linksArgs, err := squirrel.
		Select("ul.id, ul.page_id, ul.name, ul.url, ul.utm_source, ul.utm_medium, ul.utm_campaign, ul.utm_id, ul.clicks, ul.conversions, ul.revenue_cents, ul.created_at, ul.updated_at").
		From(utmLinksTable).
		Where(squirrel.Eq{"ul.page_id": pageID}).
		OrderBy("ul.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(linksSQL, linksArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	links := make([]*domain.UtmLink, 0)

	for rows.Next() {
		link := &domain.UtmLink{}

		if err := rows.Scan(
			&link.ID,
			&link.PageID,
			&link.Name,
			&link.URL,
			&link.UtmSource,
			&link.UtmMedium,
			&link.UtmCampaign,
			&link.UtmID,
			&link.Metrics.Clicks,
			&link.Metrics.Conversions,
			&link.Metrics.RevenueCents,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			return nil, err
		}

		links = append(links, link)
	}

	return links, nil
}

func (r *companyPageRepository) CreateUtmLink(link *domain.UtmLink) error {
	now := time.Now()

	insertSQL, insertArgs, err := squirrel.
		Insert("utm_links").
		Columns("id", "page_id", "name", "url", "utm_source", "utm_medium", "utm_campaign", "utm_id", "clicks", "conversions", "revenue_cents", "created_at", "updated_at").
		Values(
			link.ID,
			link.PageID,
			link.Name,
			link.URL,
			link.UtmSource,
			link.UtmMedium,
			link.UtmCampaign,
			link.UtmID,
			link.Metrics.Clicks,
			link.Metrics.Conversions,
			link.Metrics.RevenueCents,
			now,
			now,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(insertSQL, insertArgs...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *companyPageRepository) DeleteUtmLink(linkID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("utm_links").
		Where(squirrel.Eq{"id": linkID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateUtmMetrics grava as métricas recalculadas pelo sincronizador.
func (r *companyPageRepository) UpdateUtmMetrics(linkID string, metrics domain.UtmMetrics) error {
	updateSQL, updateArgs, err := squirrel.
		Update("utm_links").
		Set("clicks", metrics.Clicks).
		Set("conversions", metrics.Conversions).
		Set("revenue_cents", metrics.RevenueCents).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": linkID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(updateSQL, updateArgs...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
