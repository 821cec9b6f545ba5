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

type logRepository struct {
	pool *pgxpool.Pool
}

// NewLogRepository returns a Postgres-backed implementation of ActivityLogRepository.
func NewLogRepository(pool *pgxpool.Pool) repository.ActivityLogRepository {
	return &logRepository{pool: pool}
}

const logColumns = `id, activity_id, user_id, start_date, end_date, status, duration, completed_at, created_at, updated_at`

func (r *logRepository) GetByID(ctx context.Context, id, userID string) (*domain.ActivityLog, error) {
	const query = `
	SELECT ` + logColumns + `
	FROM activity_logs
	WHERE id = $1 AND user_id = $2
	`
	log, err := scanLog(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, err
	}

	comments, err := r.ListComments(ctx, log.ID)
	if err != nil {
		return nil, err
	}
	log.Comments = comments

	return log, nil
}

func (r *logRepository) List(ctx context.Context, filter repository.LogFilter) ([]domain.ActivityLog, error) {
	query := `
	SELECT ` + logColumns + `
	FROM activity_logs
	WHERE ($1 = '' OR user_id = $1)
	  AND ($2 = '' OR activity_id = $2)
	  AND ($3 = '' OR status = $3)
	  AND ($4 = '' OR status <> $4)
	  AND ($5::timestamptz IS NULL OR start_date >= $5)
	  AND ($6::timestamptz IS NULL OR start_date < $6)
	  AND ($7::timestamptz IS NULL OR end_date <= $7)
	`
	if filter.Order == repository.OrderEndAsc {
		query += ` ORDER BY end_date ASC`
	} else {
		query += ` ORDER BY start_date DESC`
	}

	rows, err := r.pool.Query(ctx, query,
		filter.UserID,
		filter.ActivityID,
		string(filter.Status),
		string(filter.NotStatus),
		nullTime(filter.StartDateFrom),
		nullTime(filter.StartDateTo),
		nullTime(filter.EndDateTo),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLogs(rows)
}

func (r *logRepository) Create(ctx context.Context, log *domain.ActivityLog) (*domain.ActivityLog, error) {
	if log == nil {
		return nil, domain.ErrInvalidPayload
	}
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.Status == "" {
		log.Status = domain.StatusTodo
	}

	const query = `
	INSERT INTO activity_logs (id, activity_id, user_id, start_date, end_date, status, duration)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		log.ID,
		log.ActivityID,
		log.UserID,
		log.StartDate,
		log.EndDate,
		string(log.Status),
		nullInt(log.Duration),
	).Scan(&log.CreatedAt, &log.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrLogAlreadyExists
		}
		return nil, err
	}

	return log, nil
}

func (r *logRepository) UpdateStatus(ctx context.Context, log *domain.ActivityLog) error {
	if log == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE activity_logs
	SET status = $3,
		completed_at = $4,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		log.ID,
		log.UserID,
		string(log.Status),
		nullTime(log.CompletedAt),
	).Scan(&log.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrLogNotFound
		}
		return err
	}

	return nil
}

func (r *logRepository) ExistsInRange(ctx context.Context, activityID string, from, to time.Time) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1 FROM activity_logs
		WHERE activity_id = $1 AND start_date >= $2 AND start_date < $3
	)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, activityID, from, to).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *logRepository) ExistsForUserInRange(ctx context.Context, userID string, from, to time.Time) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1 FROM activity_logs
		WHERE user_id = $1 AND start_date >= $2 AND start_date < $3
	)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, from, to).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *logRepository) TodayView(ctx context.Context, userID string, startOfDay time.Time) ([]domain.ActivityLog, error) {
	const query = `
	SELECT ` + logColumns + `
	FROM activity_logs
	WHERE user_id = $1
	  AND (end_date >= $2 OR status <> 'DONE' OR completed_at >= $2)
	ORDER BY end_date ASC
	`
	rows, err := r.pool.Query(ctx, query, userID, startOfDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLogs(rows)
}

func (r *logRepository) AddComment(ctx context.Context, comment *domain.ActivityLogComment) (*domain.ActivityLogComment, error) {
	if comment == nil {
		return nil, domain.ErrInvalidPayload
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO activity_log_comments (id, activity_log_id, comment)
	VALUES ($1, $2, $3)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.ActivityLogID,
		comment.Comment,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt); err != nil {
		return nil, err
	}

	return comment, nil
}

func (r *logRepository) ListComments(ctx context.Context, logID string) ([]domain.ActivityLogComment, error) {
	const query = `
	SELECT id, activity_log_id, comment, created_at, updated_at
	FROM activity_log_comments
	WHERE activity_log_id = $1
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, logID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.ActivityLogComment
	for rows.Next() {
		var c domain.ActivityLogComment
		if err := rows.Scan(&c.ID, &c.ActivityLogID, &c.Comment, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *logRepository) DeleteComment(ctx context.Context, logID, commentID string) error {
	const query = `DELETE FROM activity_log_comments WHERE id = $1 AND activity_log_id = $2`
	tag, err := r.pool.Exec(ctx, query, commentID, logID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func collectLogs(rows pgx.Rows) ([]domain.ActivityLog, error) {
	var logs []domain.ActivityLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, rows.Err()
}

func scanLog(row interface {
	Scan(dest ...interface{}) error
}) (*domain.ActivityLog, error) {
	var (
		log        domain.ActivityLog
		activityID *string
		status     string
		duration   *int
		completed  *time.Time
	)

	if err := row.Scan(
		&log.ID,
		&activityID,
		&log.UserID,
		&log.StartDate,
		&log.EndDate,
		&status,
		&duration,
		&completed,
		&log.CreatedAt,
		&log.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLogNotFound
		}
		return nil, err
	}

	// activity_id goes NULL when the parent activity is deleted.
	if activityID != nil {
		log.ActivityID = *activityID
	}
	log.Status = domain.LogStatus(status)
	log.Duration = duration
	log.CompletedAt = completed

	return &log, nil
}
