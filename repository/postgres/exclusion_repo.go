package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/repository"
)

type exclusionRepository struct {
	pool *pgxpool.Pool
}

// NewExclusionRepository returns a Postgres-backed implementation of ExclusionRepository.
func NewExclusionRepository(pool *pgxpool.Pool) repository.ExclusionRepository {
	return &exclusionRepository{pool: pool}
}

func (r *exclusionRepository) ListByUser(ctx context.Context, userID string) ([]domain.ExcludedInterval, error) {
	const query = `
	SELECT id, user_id, frequency, type, value, created_at
	FROM excluded_intervals
	WHERE user_id = $1
	ORDER BY frequency ASC, type ASC, value ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []domain.ExcludedInterval
	for rows.Next() {
		var (
			interval  domain.ExcludedInterval
			frequency string
			kind      string
		)
		if err := rows.Scan(&interval.ID, &interval.UserID, &frequency, &kind, &interval.Value, &interval.CreatedAt); err != nil {
			return nil, err
		}
		interval.Frequency = domain.Frequency(frequency)
		interval.Type = domain.IntervalType(kind)
		intervals = append(intervals, interval)
	}
	return intervals, rows.Err()
}

func (r *exclusionRepository) Create(ctx context.Context, interval *domain.ExcludedInterval) (*domain.ExcludedInterval, error) {
	if interval == nil {
		return nil, domain.ErrInvalidPayload
	}
	if interval.ID == "" {
		interval.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO excluded_intervals (id, user_id, frequency, type, value)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		interval.ID,
		interval.UserID,
		string(interval.Frequency),
		string(interval.Type),
		interval.Value,
	).Scan(&interval.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateInterval
		}
		return nil, err
	}

	return interval, nil
}

func (r *exclusionRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM excluded_intervals WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIntervalNotFound
	}
	return nil
}
