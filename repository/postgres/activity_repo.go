package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/repository"
)

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed implementation of ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) repository.ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	const query = `
	SELECT id, user_id, title, description, frequency, duration, category, start_date, end_date, created_at, updated_at
	FROM activities
	WHERE id = $1
	`
	return scanActivity(r.pool.QueryRow(ctx, query, id))
}

func (r *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.Activity, error) {
	const query = `
	SELECT id, user_id, title, description, frequency, duration, category, start_date, end_date, created_at, updated_at
	FROM activities
	WHERE ($1 = '' OR user_id = $1)
	  AND ($2 = '' OR frequency = $2)
	  AND ($3 = '' OR category = $3)
	  AND ($4::timestamptz IS NULL OR start_date >= $4)
	  AND ($5::timestamptz IS NULL OR end_date <= $5)
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query,
		filter.UserID,
		string(filter.Frequency),
		filter.Category,
		nullTime(filter.StartDateFrom),
		nullTime(filter.EndDateTo),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, rows.Err()
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if activity == nil {
		return nil, domain.ErrInvalidPayload
	}
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO activities (id, user_id, title, description, frequency, duration, category, start_date, end_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Title,
		activity.Description,
		string(activity.Frequency),
		nullInt(activity.Duration),
		nullString(activity.Category),
		nullTime(activity.StartDate),
		nullTime(activity.EndDate),
	).Scan(&activity.CreatedAt, &activity.UpdatedAt); err != nil {
		return nil, err
	}

	return activity, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	if activity == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE activities
	SET title = $3,
		description = $4,
		frequency = $5,
		duration = $6,
		category = $7,
		start_date = $8,
		end_date = $9,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Title,
		activity.Description,
		string(activity.Frequency),
		nullInt(activity.Duration),
		nullString(activity.Category),
		nullTime(activity.StartDate),
		nullTime(activity.EndDate),
	).Scan(&activity.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrActivityNotFound
		}
		return err
	}

	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM activities WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepository) Categories(ctx context.Context, userID string) ([]string, error) {
	const query = `
	SELECT DISTINCT category
	FROM activities
	WHERE user_id = $1 AND category IS NOT NULL
	ORDER BY category
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func scanActivity(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Activity, error) {
	var (
		activity  domain.Activity
		frequency string
		duration  *int
		category  *string
		start     *time.Time
		end       *time.Time
	)

	if err := row.Scan(
		&activity.ID,
		&activity.UserID,
		&activity.Title,
		&activity.Description,
		&frequency,
		&duration,
		&category,
		&start,
		&end,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}

	activity.Frequency = domain.Frequency(frequency)
	activity.Duration = duration
	activity.Category = category
	activity.StartDate = start
	activity.EndDate = end

	return &activity, nil
}
