package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/repository"
)

type fakeActivityRepo struct {
	activities []domain.Activity
}

func (f *fakeActivityRepo) GetByID(_ context.Context, id string) (*domain.Activity, error) {
	for i := range f.activities {
		if f.activities[i].ID == id {
			return &f.activities[i], nil
		}
	}
	return nil, domain.ErrActivityNotFound
}

func (f *fakeActivityRepo) List(_ context.Context, filter repository.ActivityFilter) ([]domain.Activity, error) {
	var out []domain.Activity
	for _, a := range f.activities {
		if filter.UserID != "" && a.UserID != filter.UserID {
			continue
		}
		if filter.Frequency != "" && a.Frequency != filter.Frequency {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *domain.Activity) (*domain.Activity, error) {
	f.activities = append(f.activities, *activity)
	return activity, nil
}

func (f *fakeActivityRepo) Update(context.Context, *domain.Activity) error { return nil }
func (f *fakeActivityRepo) Delete(context.Context, string, string) error { return nil }
func (f *fakeActivityRepo) Categories(context.Context, string) ([]string, error) {
	return nil, nil
}

type fakeLogRepo struct {
	logs []domain.ActivityLog
	// blindExistenceCheck makes ExistsInRange report false regardless of
	// stored rows, so tests can drive the insert into a unique conflict.
	blindExistenceCheck bool
}

func (f *fakeLogRepo) GetByID(_ context.Context, id, userID string) (*domain.ActivityLog, error) {
	for i := range f.logs {
		if f.logs[i].ID == id && f.logs[i].UserID == userID {
			return &f.logs[i], nil
		}
	}
	return nil, domain.ErrLogNotFound
}

func (f *fakeLogRepo) List(_ context.Context, filter repository.LogFilter) ([]domain.ActivityLog, error) {
	var out []domain.ActivityLog
	for _, l := range f.logs {
		if filter.UserID != "" && l.UserID != filter.UserID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLogRepo) Create(_ context.Context, log *domain.ActivityLog) (*domain.ActivityLog, error) {
	for _, existing := range f.logs {
		if existing.ActivityID == log.ActivityID && existing.StartDate.Equal(log.StartDate) {
			return nil, domain.ErrLogAlreadyExists
		}
	}
	if log.ID == "" {
		log.ID = fmt.Sprintf("log-%d", len(f.logs)+1)
	}
	f.logs = append(f.logs, *log)
	return log, nil
}

func (f *fakeLogRepo) UpdateStatus(_ context.Context, log *domain.ActivityLog) error {
	for i := range f.logs {
		if f.logs[i].ID == log.ID {
			f.logs[i].Status = log.Status
			f.logs[i].CompletedAt = log.CompletedAt
			return nil
		}
	}
	return domain.ErrLogNotFound
}

func (f *fakeLogRepo) ExistsInRange(_ context.Context, activityID string, from, to time.Time) (bool, error) {
	if f.blindExistenceCheck {
		return false, nil
	}
	for _, l := range f.logs {
		if l.ActivityID == activityID && !l.StartDate.Before(from) && l.StartDate.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLogRepo) ExistsForUserInRange(_ context.Context, userID string, from, to time.Time) (bool, error) {
	for _, l := range f.logs {
		if l.UserID == userID && !l.StartDate.Before(from) && l.StartDate.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLogRepo) TodayView(_ context.Context, userID string, startOfDay time.Time) ([]domain.ActivityLog, error) {
	var out []domain.ActivityLog
	for i := range f.logs {
		if f.logs[i].UserID == userID && f.logs[i].RelevantToday(startOfDay) {
			out = append(out, f.logs[i])
		}
	}
	return out, nil
}

func (f *fakeLogRepo) AddComment(_ context.Context, comment *domain.ActivityLogComment) (*domain.ActivityLogComment, error) {
	return comment, nil
}

func (f *fakeLogRepo) ListComments(context.Context, string) ([]domain.ActivityLogComment, error) {
	return nil, nil
}

func (f *fakeLogRepo) DeleteComment(context.Context, string, string) error { return nil }

type fakeExclusionRepo struct {
	rules []domain.ExcludedInterval
}

func (f *fakeExclusionRepo) ListByUser(_ context.Context, userID string) ([]domain.ExcludedInterval, error) {
	var out []domain.ExcludedInterval
	for _, r := range f.rules {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeExclusionRepo) Create(_ context.Context, interval *domain.ExcludedInterval) (*domain.ExcludedInterval, error) {
	f.rules = append(f.rules, *interval)
	return interval, nil
}

func (f *fakeExclusionRepo) Delete(context.Context, string, string) error { return nil }

type fakeUserRepo struct {
	ids []string
}

func (f *fakeUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	f.ids = append(f.ids, user.ID)
	return user, nil
}

func (f *fakeUserRepo) ListIDs(context.Context) ([]string, error) {
	return f.ids, nil
}
