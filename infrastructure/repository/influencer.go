package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/engagement-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

const influencersTable = "influencers inf"

type InfluencerRepository interface {
	List(onlyActive bool) ([]*domain.Influencer, error)
	GetByID(influencerID string) (*domain.Influencer, error)
	GetByUID(uid string) (*domain.Influencer, error)
	Create(influencer *domain.Influencer) error
	Update(influencer *domain.UpdateInfluencerRequest) error
	SetActive(influencerID string, active bool) error
	Delete(influencerID string) error
}

type influencerRepository struct {
	conn *postgres.Connection
}

func NewInfluencerRepository(conn *postgres.Connection) InfluencerRepository {
	return &influencerRepository{
		conn: conn,
	}
}

const influencerColumns = "inf.id, inf.uid, inf.name, inf.email, inf.percentage, inf.profile_pages, inf.is_active, inf.created_at"

func (r *influencerRepository) List(onlyActive bool) ([]*domain.Influencer, error) {
	queryBuilder := squirrel.
		Select(influencerColumns).
		From(influencersTable).
		OrderBy("inf.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"inf.is_active": true})
	}

	influencersSQL, influencersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(influencersSQL, influencersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	influencers := make([]*domain.Influencer, 0)

	for rows.Next() {
		influencer, err := r.deserializeInfluencer(rows)
		if err != nil {
			return nil, err
		}

		influencers = append(influencers, influencer)
	}

	return influencers, nil
}

func (r *influencerRepository) GetByID(influencerID string) (*domain.Influencer, error) {
	return r.getInfluencer(squirrel.Eq{"inf.id": influencerID})
}

func (r *influencerRepository) GetByUID(uid string) (*domain.Influencer, error) {
	return r.getInfluencer(squirrel.Eq{"inf.uid": uid})
}

func (r *influencerRepository) getInfluencer(whereClause map[string]interface{}) (*domain.Influencer, error) {
	influencerSQL, influencerArgs, err := squirrel.
		Select(influencerColumns).
		From(influencersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(influencerSQL, influencerArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	return r.deserializeInfluencer(rows)
}

func (r *influencerRepository) deserializeInfluencer(rows *sql.Rows) (*domain.Influencer, error) {
	influencer := &domain.Influencer{}
	var profilePagesJSON []byte

	if err := rows.Scan(
		&influencer.ID,
		&influencer.UID,
		&influencer.Name,
		&influencer.Email,
		&influencer.Percentage,
		&profilePagesJSON,
		&influencer.IsActive,
		&influencer.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(profilePagesJSON) > 0 {
		if err := json.Unmarshal(profilePagesJSON, &influencer.ProfilePages); err != nil {
			return nil, fmt.Errorf("erro ao decodificar os perfis do influenciador: %w", err)
		}
	}

	return influencer, nil
}

func (r *influencerRepository) Create(influencer *domain.Influencer) error {
	profilePagesJSON, err := json.Marshal(influencer.ProfilePages)
	if err != nil {
		return fmt.Errorf("erro ao serializar os perfis do influenciador: %w", err)
	}

	insertSQL, insertArgs, err := squirrel.
		Insert("influencers").
		Columns("id", "uid", "name", "email", "percentage", "profile_pages", "is_active", "created_at").
		Values(
			influencer.ID,
			influencer.UID,
			influencer.Name,
			influencer.Email,
			influencer.Percentage,
			profilePagesJSON,
			influencer.IsActive,
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

func (r *influencerRepository) Update(influencer *domain.UpdateInfluencerRequest) error {
	queryBuilder := squirrel.
		Update("influencers").
		Where(squirrel.Eq{"id": influencer.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if influencer.Name != nil {
		queryBuilder = queryBuilder.Set("name", *influencer.Name)
	}
	if influencer.Email != nil {
		queryBuilder = queryBuilder.Set("email", *influencer.Email)
	}
	if influencer.Percentage != nil {
		queryBuilder = queryBuilder.Set("percentage", *influencer.Percentage)
	}
	if influencer.ProfilePages != nil {
		profilePagesJSON, err := json.Marshal(*influencer.ProfilePages)
		if err != nil {
			return fmt.Errorf("erro ao serializar os perfis do influenciador: %w", err)
		}
		queryBuilder = queryBuilder.Set("profile_pages", profilePagesJSON)
	}
	if influencer.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *influencer.IsActive)
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

func (r *influencerRepository) SetActive(influencerID string, active bool) error {
	updateSQL, updateArgs, err := squirrel.
		Update("influencers").
		Set("is_active", active).
		Where(squirrel.Eq{"id": influencerID}).
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

func (r *influencerRepository) Delete(influencerID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("influencers").
		Where(squirrel.Eq{"id": influencerID}).
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
