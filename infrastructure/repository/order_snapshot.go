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

const orderSnapshotsTable = "order_snapshots os"

// OrderSnapshotRepository guarda a cópia local dos pedidos do storefront.
// O snapshot serve consultas de dashboard e relatórios sem bater no
// backend a cada requisição; a sincronização é responsabilidade do
// agendador de pedidos.
type OrderSnapshotRepository interface {
	SaveOrUpdate(orders []domain.Order) error
	ListByPeriod(filters domain.OrderFilters) ([]domain.Order, error)
	LastSyncedAt() (*time.Time, error)
}

type orderSnapshotRepository struct {
	conn *postgres.Connection
}

func NewOrderSnapshotRepository(conn *postgres.Connection) OrderSnapshotRepository {
	return &orderSnapshotRepository{
		conn: conn,
	}
}

func (r *orderSnapshotRepository) SaveOrUpdate(orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("order_snapshots").
		Columns("id", "amount_cents", "status", "customer_email", "customer_first_name", "customer_last_name", "attendant_id", "utm_source", "utm_medium", "utm_campaign", "created_at", "updated_at", "paid_at", "synced_at").
		PlaceholderFormat(squirrel.Dollar)

	now := time.Now()

	for _, order := range orders {
		query = query.Values(
			order.ID,
			order.AmountCents,
			order.Status,
			order.Customer.Email,
			order.Customer.FirstName,
			order.Customer.LastName,
			order.AttendantID,
			order.UTMSource,
			order.UTMMedium,
			order.UTMCampaign,
			order.CreatedAt,
			order.UpdatedAt,
			order.PaidAt,
			now,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				amount_cents = EXCLUDED.amount_cents,
				status = EXCLUDED.status,
				attendant_id = EXCLUDED.attendant_id,
				utm_source = EXCLUDED.utm_source,
				utm_medium = EXCLUDED.utm_medium,
				utm_campaign = EXCLUDED.utm_campaign,
				updated_at = EXCLUDED.updated_at,
				paid_at = EXCLUDED.paid_at,
				synced_at = EXCLUDED.synced_at
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *orderSnapshotRepository) ListByPeriod(filters domain.OrderFilters) ([]domain.Order, error) {
	queryBuilder := squirrel.
		Select("os.id, os.amount_cents, os.status, os.customer_email, os.customer_first_name, os.customer_last_name, os.attendant_id, os.utm_source, os.utm_medium, os.utm_campaign, os.created_at, os.updated_at, os.paid_at").
		From(orderSnapshotsTable).
		OrderBy("os.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"os.created_at": *filters.StartDate})
	}
	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"os.created_at": *filters.EndDate})
	}
	if filters.AttendantID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"os.attendant_id": filters.AttendantID})
	}
	if filters.UTMCampaign != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"os.utm_campaign": filters.UTMCampaign})
	}
	if filters.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		if filters.Page > 1 {
			queryBuilder = queryBuilder.Offset(uint64((filters.Page - 1) * filters.Limit))
		}
	}

	ordersSQL, ordersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ordersSQL, ordersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)

	for rows.Next() {
		var order domain.Order

		if err := rows.Scan(
			&order.ID,
			&order.AmountCents,
			&order.Status,
			&order.Customer.Email,
			&order.Customer.FirstName,
			&order.Customer.LastName,
			&order.AttendantID,
			&order.UTMSource,
			&order.UTMMedium,
			&order.UTMCampaign,
			&order.CreatedAt,
			&order.UpdatedAt,
			&order.PaidAt,
		); err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// LastSyncedAt retorna o momento da última sincronização bem-sucedida, ou
// nil quando o snapshot ainda está vazio.
func (r *orderSnapshotRepository) LastSyncedAt() (*time.Time, error) {
	syncSQL, syncArgs, err := squirrel.
		Select("MAX(os.synced_at)").
		From(orderSnapshotsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var lastSync sql.NullTime
	if err := r.conn.QueryRow(syncSQL, syncArgs...).Scan(&lastSync); err != nil {
		return nil, err
	}

	if !lastSync.Valid {
		return nil, nil
	}

	return &lastSync.Time, nil
}
