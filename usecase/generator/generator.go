// Package generator implements the recurring-activity log generation engine:
// deciding, for a target date, which activity definitions spawn a concrete
// log entry, and creating those entries idempotently.
package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/pkg/period"
	"github.com/routinely/backend/repository"
)

// Result summarizes one generation invocation.
type Result struct {
	Created     int      `json:"created"`
	Skipped     int      `json:"skipped"`
	Frequencies []string `json:"frequencies"`
}

// Service orchestrates the period calculator, eligibility checks and
// exclusion rules to materialize activity logs for a target date.
type Service struct {
	activities repository.ActivityRepository
	logs       repository.ActivityLogRepository
	exclusions repository.ExclusionRepository
	users      repository.UserRepository
	cal        *period.Calendar
	logger     *zap.Logger
}

func New(
	activities repository.ActivityRepository,
	logs repository.ActivityLogRepository,
	exclusions repository.ExclusionRepository,
	users repository.UserRepository,
	cal *period.Calendar,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cal == nil {
		cal = period.NewCalendar(nil)
	}
	return &Service{
		activities: activities,
		logs:       logs,
		exclusions: exclusions,
		users:      users,
		cal:        cal,
		logger:     logger,
	}
}

// Calendar exposes the process-wide calendar the generator operates in.
func (s *Service) Calendar() *period.Calendar {
	return s.cal
}

// GenerateForUser runs the core algorithm for one user's definitions. The
// target date is truncated to the start of day in the configured location.
// Re-invocation for the same date is a no-op for already-generated entries.
func (s *Service) GenerateForUser(ctx context.Context, userID string, date time.Time) (*Result, error) {
	day := s.cal.StartOfDay(date)

	rules, err := s.exclusions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &Result{Frequencies: []string{}}
	for _, freq := range domain.Frequencies {
		if !s.classActiveOn(freq, day) {
			continue
		}
		if IsSuppressed(s.cal, freq, day, rules) {
			s.logger.Info("generation suppressed by exclusion rule",
				zap.String("user_id", userID),
				zap.String("frequency", string(freq)),
				zap.Time("date", day))
			continue
		}

		created, err := s.generateClass(ctx, userID, freq, day)
		if err != nil {
			return nil, err
		}
		result.Created += created
		result.Frequencies = append(result.Frequencies, strings.ToLower(string(freq)))
	}

	return result, nil
}

// GenerateManual is the user-facing generation path: it refuses with a
// conflict when any of the user's logs already start on the target date,
// then delegates to the core algorithm.
func (s *Service) GenerateManual(ctx context.Context, userID string, date time.Time) (*Result, error) {
	day := s.cal.StartOfDay(date)

	exists, err := s.logs.ExistsForUserInRange(ctx, userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrLogAlreadyExists
	}

	return s.GenerateForUser(ctx, userID, day)
}

// GenerateAll runs the same per-user algorithm for every registered user.
// Any persistence failure aborts the whole invocation; re-running the same
// date is safe.
func (s *Service) GenerateAll(ctx context.Context, date time.Time) (*Result, error) {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	total := &Result{Frequencies: []string{}}
	seen := map[string]bool{}
	for _, id := range ids {
		result, err := s.GenerateForUser(ctx, id, date)
		if err != nil {
			return nil, err
		}
		total.Created += result.Created
		total.Skipped += result.Skipped
		for _, freq := range result.Frequencies {
			if !seen[freq] {
				seen[freq] = true
				total.Frequencies = append(total.Frequencies, freq)
			}
		}
	}

	s.logger.Info("generation run finished",
		zap.Time("date", s.cal.StartOfDay(date)),
		zap.Int("users", len(ids)),
		zap.Int("created", total.Created),
		zap.Strings("frequencies", total.Frequencies))

	return total, nil
}

// classActiveOn implements the per-class trigger gating: daily fires every
// date, weekly only on Sundays, monthly only on the first of the month.
func (s *Service) classActiveOn(freq domain.Frequency, day time.Time) bool {
	switch freq {
	case domain.FrequencyDaily:
		return true
	case domain.FrequencyWeekly:
		return s.cal.DayOfWeek(day) == 0
	case domain.FrequencyMonthly:
		return s.cal.DayOfMonth(day) == 1
	}
	return false
}

func (s *Service) generateClass(ctx context.Context, userID string, freq domain.Frequency, day time.Time) (int, error) {
	bounds := s.cal.ForFrequency(freq, day)

	activities, err := s.activities.List(ctx, repository.ActivityFilter{
		UserID:    userID,
		Frequency: freq,
	})
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range activities {
		activity := &activities[i]
		if !activity.EligibleAt(bounds.Start) {
			continue
		}

		exists, err := s.logs.ExistsInRange(ctx, activity.ID, bounds.Start, s.cal.NextBucket(freq, bounds.Start))
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		log := &domain.ActivityLog{
			ActivityID: activity.ID,
			UserID:     activity.UserID,
			StartDate:  bounds.Start,
			EndDate:    bounds.End,
			Status:     domain.StatusTodo,
			Duration:   activity.Duration,
		}
		if _, err := s.logs.Create(ctx, log); err != nil {
			// A concurrent invocation may win the race between the
			// existence check and the insert; the storage unique
			// constraint reports that as an already-generated entry.
			if errors.Is(err, domain.ErrLogAlreadyExists) {
				continue
			}
			return created, err
		}

		created++
		s.logger.Info("created activity log",
			zap.String("activity_id", activity.ID),
			zap.String("frequency", string(freq)),
			zap.Time("period_start", bounds.Start))
	}

	return created, nil
}
