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

const attendantsTable = "attendants att"

type AttendantRepository interface {
	List(onlyActive bool) ([]*domain.Attendant, error)
	GetByID(attendantID string) (*domain.Attendant, error)
	Create(attendant *domain.Attendant) error
	Update(attendant *domain.UpdateAttendantRequest) error
	SetActive(attendantID string, active bool) error
	Delete(attendantID string) error
}

type attendantRepository struct {
	conn *postgres.Connection
}

func NewAttendantRepository(conn *postgres.Connection) AttendantRepository {
	return &attendantRepository{
		conn: conn,
	}
}

func (r *attendantRepository) List(onlyActive bool) ([]*domain.Attendant, error) {
	queryBuilder := squirrel.
		Select("att.id, att.name, att.email, att.percentage, att.is_active, att.created_at").
		From(attendantsTable).
		OrderBy("att.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"att.is_active": true})
	}

	attendantsSQL, attendantsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(attendantsSQL, attendantsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	attendants := make([]*domain.Attendant, 0)

	for rows.Next() {
		attendant := &domain.Attendant{}

		if err := rows.Scan(
			&attendant.ID,
			&attendant.Name,
			&attendant.Email,
			&attendant.Percentage,
			&attendant.IsActive,
			&attendant.CreatedAt,
		); err != nil {
			return nil, err
		}

		attendants = append(attendants, attendant)
	}

	return attendants, nil
}

func (r *attendantRepository) GetByID(attendantID string) (*domain.Attendant, error) {
	attendantSQL, attendantArgs, err := squirrel.
		Select("att.id, att.name, att.email, att.percentage, att.is_active, att.created_at").
		From(attendantsTable).
		Where(squirrel.Eq{"att.id": attendantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	attendant := &domain.Attendant{}

	row := r.conn.QueryRow(attendantSQL, attendantArgs...)
	if err := row.Scan(
		&attendant.ID,
		&attendant.Name,
		&attendant.Email,
		&attendant.Percentage,
		&attendant.IsActive,
		&attendant.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return attendant, nil
}

func (r *attendantRepository) Create(attendant *domain.Attendant) error {
	insertSQL, insertArgs, err := squirrel.
		Insert("attendants").
		Columns("id", "name", "email", "percentage", "is_active", "created_at").
		Values(
			attendant.ID,
			attendant.Name,
			attendant.Email,
			attendant.Percentage,
			attendant.IsActive,
			time.Now(),
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

func (r *attendantRepository) Update(attendant *domain.UpdateAttendantRequest) error {
	queryBuilder := squirrel.
		Update("attendants").
		Where(squirrel.Eq{"id": attendant.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if attendant.Name != nil {
		queryBuilder = queryBuilder.Set("name", *attendant.Name)
	}
	if attendant.Email != nil {
		queryBuilder = queryBuilder.Set("email", *attendant.Email)
	}
	if attendant.Percentage != nil {
		queryBuilder = queryBuilder.Set("percentage", *attendant.Percentage)
	}
	if attendant.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *attendant.IsActive)
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

func (r *attendantRepository) SetActive(attendantID string, active bool) error {
	updateSQL, updateArgs, err := squirrel.
		Update("attendants").
		Set("is_active", active).
		Where(squirrel.Eq{"id": attendantID}).
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

func (r *attendantRepository) Delete(attendantID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("attendants").
		Where(squirrel.Eq{"id": attendantID}).
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
