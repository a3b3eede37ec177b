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

const servicePackagesTable = "service_packages sp"

type ServicePackageRepository interface {
	List(onlyActive bool) ([]*domain.ServicePackage, error)
	GetByID(packageID string) (*domain.ServicePackage, error)
	Create(pkg *domain.ServicePackage) error
	Update(pkg *domain.UpdateServicePackageRequest) error
	SetActive(packageID string, active bool) error
	Delete(packageID string) error
}

type servicePackageRepository struct {
	conn *postgres.Connection
}

func NewServicePackageRepository(conn *postgres.Connection) ServicePackageRepository {
	return &servicePackageRepository{
		conn: conn,
	}
}

const servicePackageColumns = "sp.id, sp.name, sp.platform, sp.service_type, sp.quantity, sp.price, sp.original_price, sp.features, sp.is_popular, sp.is_recommended, sp.delivery_time, sp.service_id, sp.sort_order, sp.is_active, sp.created_at, sp.updated_at"

func (r *servicePackageRepository) List(onlyActive bool) ([]*domain.ServicePackage, error) {
	queryBuilder := squirrel.
		Select(servicePackageColumns).
		From(servicePackagesTable).
		OrderBy("sp.platform ASC, sp.sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sp.is_active": true})
	}

	packagesSQL, packagesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(packagesSQL, packagesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	packages := make([]*domain.ServicePackage, 0)

	for rows.Next() {
		pkg, err := r.deserializePackage(rows)
		if err != nil {
			return nil, err
		}

		packages = append(packages, pkg)
	}

	return packages, nil
}

func (r *servicePackageRepository) GetByID(packageID string) (*domain.ServicePackage, error) {
	packageSQL, packageArgs, err := squirrel.
		Select(servicePackageColumns).
		From(servicePackagesTable).
		Where(squirrel.Eq{"sp.id": packageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(packageSQL, packageArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	return r.deserializePackage(rows)
}

func (r *servicePackageRepository) deserializePackage(rows *sql.Rows) (*domain.ServicePackage, error) {
	pkg := &domain.ServicePackage{}

	if err := rows.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Platform,
		&pkg.ServiceType,
		&pkg.Quantity,
		&pkg.Price,
		&pkg.OriginalPrice,
		pq.Array(&pkg.Features),
		&pkg.IsPopular,
		&pkg.IsRecommended,
		&pkg.DeliveryTime,
		&pkg.ServiceID,
		&pkg.SortOrder,
		&pkg.IsActive,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return pkg, nil
}

func (r *servicePackageRepository) Create(pkg *domain.ServicePackage) error {
	now := time.Now()

	insertSQL, insertArgs, err := squirrel.
		Insert("service_packages").
		Columns("id", "name", "platform", "service_type", "quantity", "price", "original_price", "features", "is_popular", "is_recommended", "delivery_time", "service_id", "sort_order", "is_active", "created_at", "updated_at").
		Values(
			pkg.ID,
			pkg.Name,
			pkg.Platform,
			pkg.ServiceType,
			pkg.Quantity,
			pkg.Price,
			pkg.OriginalPrice,
			pq.Array(pkg.Features),
			pkg.IsPopular,
			pkg.IsRecommended,
			pkg.DeliveryTime,
			pkg.ServiceID,
			pkg.SortOrder,
			pkg.IsActive,
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

func (r *servicePackageRepository) Update(pkg *domain.UpdateServicePackageRequest) error {
	queryBuilder := squirrel.
		Update("service_packages").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": pkg.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if pkg.Name != nil {
		queryBuilder = queryBuilder.Set("name", *pkg.Name)
	}
	if pkg.Platform != nil {
		queryBuilder = queryBuilder.Set("platform", *pkg.Platform)
	}
	if pkg.ServiceType != nil {
		queryBuilder = queryBuilder.Set("service_type", *pkg.ServiceType)
	}
	if pkg.Quantity != nil {
		queryBuilder = queryBuilder.Set("quantity", *pkg.Quantity)
	}
	if pkg.Price != nil {
		queryBuilder = queryBuilder.Set("price", *pkg.Price)
	}
	if pkg.OriginalPrice != nil {
		queryBuilder = queryBuilder.Set("original_price", *pkg.OriginalPrice)
	}
	if pkg.Features != nil {
		queryBuilder = queryBuilder.Set("features", pq.Array(*pkg.Features))
	}
	if pkg.IsPopular != nil {
		queryBuilder = queryBuilder.Set("is_popular", *pkg.IsPopular)
	}
	if pkg.IsRecommended != nil {
		queryBuilder = queryBuilder.Set("is_recommended", *pkg.IsRecommended)
	}
	if pkg.DeliveryTime != nil {
		queryBuilder = queryBuilder.Set("delivery_time", *pkg.DeliveryTime)
	}
	if pkg.ServiceID != nil {
		queryBuilder = queryBuilder.Set("service_id", *pkg.ServiceID)
	}
	if pkg.SortOrder != nil {
		queryBuilder = queryBuilder.Set("sort_order", *pkg.SortOrder)
	}
	if pkg.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *pkg.IsActive)
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

func (r *servicePackageRepository) SetActive(packageID string, active bool) error {
	updateSQL, updateArgs, err := squirrel.
		Update("service_packages").
		Set("is_active", active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": packageID}).
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

func (r *servicePackageRepository) Delete(packageID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("service_packages").
		Where(squirrel.Eq{"id": packageID}).
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
