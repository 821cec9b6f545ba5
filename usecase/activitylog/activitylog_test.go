package activitylog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/pkg/period"
	"github.com/routinely/backend/repository"
)

type stubLogRepo struct {
	logs     map[string]*domain.ActivityLog
	comments []domain.ActivityLogComment
}

func newStubLogRepo() *stubLogRepo {
	return &stubLogRepo{logs: map[string]*domain.ActivityLog{}}
}

func (s *stubLogRepo) GetByID(_ context.Context, id, userID string) (*domain.ActivityLog, error) {
	log, ok := s.logs[id]
	if !ok || log.UserID != userID {
		return nil, domain.ErrLogNotFound
	}
	clone := *log
	return &clone, nil
}

func (s *stubLogRepo) List(context.Context, repository.LogFilter) ([]domain.ActivityLog, error) {
	return nil, nil
}

func (s *stubLogRepo) Create(_ context.Context, log *domain.ActivityLog) (*domain.ActivityLog, error) {
	if log.ID == "" {
		log.ID = "log-1"
	}
	clone := *log
	s.logs[log.ID] = &clone
	return log, nil
}

func (s *stubLogRepo) UpdateStatus(_ context.Context, log *domain.ActivityLog) error {
	stored, ok := s.logs[log.ID]
	if !ok {
		return domain.ErrLogNotFound
	}
	stored.Status = log.Status
	stored.CompletedAt = log.CompletedAt
	return nil
}

func (s *stubLogRepo) ExistsInRange(context.Context, string, time.Time, time.Time) (bool, error) {
	return false, nil
}

func (s *stubLogRepo) ExistsForUserInRange(context.Context, string, time.Time, time.Time) (bool, error) {
	return false, nil
}

func (s *stubLogRepo) TodayView(_ context.Context, userID string, startOfDay time.Time) ([]domain.ActivityLog, error) {
	var out []domain.ActivityLog
	for _, log := range s.logs {
		if log.UserID == userID && log.RelevantToday(startOfDay) {
			out = append(out, *log)
		}
	}
	return out, nil
}

func (s *stubLogRepo) AddComment(_ context.Context, comment *domain.ActivityLogComment) (*domain.ActivityLogComment, error) {
	if comment.ID == "" {
		comment.ID = "c-1"
	}
	s.comments = append(s.comments, *comment)
	return comment, nil
}

func (s *stubLogRepo) ListComments(context.Context, string) ([]domain.ActivityLogComment, error) {
	return s.comments, nil
}

func (s *stubLogRepo) DeleteComment(context.Context, string, string) error { return nil }

type stubActivityRepo struct {
	activity *domain.Activity
}

func (s *stubActivityRepo) GetByID(context.Context, string) (*domain.Activity, error) {
	if s.activity == nil {
		return nil, domain.ErrActivityNotFound
	}
	return s.activity, nil
}

func (s *stubActivityRepo) List(context.Context, repository.ActivityFilter) ([]domain.Activity, error) {
	return nil, nil
}

func (s *stubActivityRepo) Create(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	return a, nil
}

func (s *stubActivityRepo) Update(context.Context, *domain.Activity) error { return nil }
func (s *stubActivityRepo) Delete(context.Context, string, string) error { return nil }
func (s *stubActivityRepo) Categories(context.Context, string) ([]string, error) {
	return nil, nil
}

type stubExclusionRepo struct{}

func (stubExclusionRepo) ListByUser(context.Context, string) ([]domain.ExcludedInterval, error) {
	return nil, nil
}

func (stubExclusionRepo) Create(_ context.Context, i *domain.ExcludedInterval) (*domain.ExcludedInterval, error) {
	return i, nil
}

func (stubExclusionRepo) Delete(context.Context, string, string) error { return nil }

func newTestUseCase(logs *stubLogRepo, activities *stubActivityRepo) *UseCase {
	return New(logs, activities, stubExclusionRepo{}, period.NewCalendar(time.UTC), nil)
}

func TestUpdateStatusStampsCompletedAt(t *testing.T) {
	logs := newStubLogRepo()
	logs.logs["log-1"] = &domain.ActivityLog{ID: "log-1", UserID: "u1", Status: domain.StatusTodo}
	uc := newTestUseCase(logs, &stubActivityRepo{})

	updated, err := uc.UpdateStatus(context.Background(), "log-1", "u1", domain.StatusDone)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.CompletedAt == nil {
		t.Fatal("expected CompletedAt to be set when entering DONE")
	}
}

func TestUpdateStatusKeepsCompletedAtWhenLeavingDone(t *testing.T) {
	completed := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	logs := newStubLogRepo()
	logs.logs["log-1"] = &domain.ActivityLog{
		ID:          "log-1",
		UserID:      "u1",
		Status:      domain.StatusDone,
		CompletedAt: &completed,
	}
	uc := newTestUseCase(logs, &stubActivityRepo{})

	updated, err := uc.UpdateStatus(context.Background(), "log-1", "u1", domain.StatusTodo)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(completed) {
		t.Fatalf("expected original CompletedAt to survive, got %v", updated.CompletedAt)
	}
}

func TestUpdateStatusDoesNotRestampWhenAlreadyDone(t *testing.T) {
	completed := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	logs := newStubLogRepo()
	logs.logs["log-1"] = &domain.ActivityLog{
		ID:          "log-1",
		UserID:      "u1",
		Status:      domain.StatusDone,
		CompletedAt: &completed,
	}
	uc := newTestUseCase(logs, &stubActivityRepo{})

	updated, err := uc.UpdateStatus(context.Background(), "log-1", "u1", domain.StatusDone)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if !updated.CompletedAt.Equal(completed) {
		t.Fatalf("expected CompletedAt unchanged, got %v", updated.CompletedAt)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := newTestUseCase(newStubLogRepo(), &stubActivityRepo{})

	if _, err := uc.UpdateStatus(context.Background(), "log-1", "u1", "SOMEDAY"); err == nil {
		t.Fatal("expected an error for an unknown status")
	}
}

func TestUpdateStatusEnforcesOwnership(t *testing.T) {
	logs := newStubLogRepo()
	logs.logs["log-1"] = &domain.ActivityLog{ID: "log-1", UserID: "u1", Status: domain.StatusTodo}
	uc := newTestUseCase(logs, &stubActivityRepo{})

	if _, err := uc.UpdateStatus(context.Background(), "log-1", "intruder", domain.StatusDone); err == nil {
		t.Fatal("expected not-found for another user's log")
	}
}

func TestCreateSnapshotsDuration(t *testing.T) {
	duration := 30
	logs := newStubLogRepo()
	activities := &stubActivityRepo{activity: &domain.Activity{ID: "a1", UserID: "u1", Duration: &duration}}
	uc := newTestUseCase(logs, activities)

	start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 15, 23, 59, 59, 999000000, time.UTC)

	created, err := uc.Create(context.Background(), "u1", "a1", start, end, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Duration == nil || *created.Duration != 30 {
		t.Fatalf("expected duration snapshot 30, got %v", created.Duration)
	}
	if created.Status != domain.StatusTodo {
		t.Fatalf("expected default TODO status, got %s", created.Status)
	}
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	uc := newTestUseCase(newStubLogRepo(), &stubActivityRepo{activity: &domain.Activity{ID: "a1"}})

	start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	if _, err := uc.Create(context.Background(), "u1", "a1", start, end, ""); err == nil {
		t.Fatal("expected an error for end before start")
	}
}

func TestTodayViewMergesDueOpenAndCompletedToday(t *testing.T) {
	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	completedToday := today.Add(8 * time.Hour)
	completedYesterday := yesterday.Add(8 * time.Hour)

	logs := newStubLogRepo()
	// Due today.
	logs.logs["due"] = &domain.ActivityLog{ID: "due", UserID: "u1", EndDate: today.Add(23 * time.Hour), Status: domain.StatusTodo}
	// Overdue but still open.
	logs.logs["open"] = &domain.ActivityLog{ID: "open", UserID: "u1", EndDate: yesterday, Status: domain.StatusInProgress}
	// Finished earlier today.
	logs.logs["done-today"] = &domain.ActivityLog{ID: "done-today", UserID: "u1", EndDate: yesterday, Status: domain.StatusDone, CompletedAt: &completedToday}
	// Finished yesterday: out.
	logs.logs["done-old"] = &domain.ActivityLog{ID: "done-old", UserID: "u1", EndDate: yesterday, Status: domain.StatusDone, CompletedAt: &completedYesterday}

	view, err := logs.TodayView(context.Background(), "u1", today)
	if err != nil {
		t.Fatalf("TodayView: %v", err)
	}

	got := map[string]bool{}
	for _, log := range view {
		got[log.ID] = true
	}
	for _, want := range []string{"due", "open", "done-today"} {
		if !got[want] {
			t.Errorf("expected %q in today view", want)
		}
	}
	if got["done-old"] {
		t.Error("did not expect yesterday's completed log in today view")
	}
}

func TestAddCommentValidates(t *testing.T) {
	logs := newStubLogRepo()
	logs.logs["log-1"] = &domain.ActivityLog{ID: "log-1", UserID: "u1"}
	uc := newTestUseCase(logs, &stubActivityRepo{})

	if _, err := uc.AddComment(context.Background(), "log-1", "u1", ""); err == nil {
		t.Fatal("expected an error for an empty comment")
	}
	if _, err := uc.AddComment(context.Background(), "log-1", "u1", strings.Repeat("x", 1001)); err == nil {
		t.Fatal("expected an error for an oversized comment")
	}

	comment, err := uc.AddComment(context.Background(), "log-1", "u1", "went well")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.ActivityLogID != "log-1" {
		t.Fatalf("unexpected log binding: %s", comment.ActivityLogID)
	}
}

func TestAddCommentEnforcesLogOwnership(t *testing.T) {
	logs := newStubLogRepo()
	logs.logs["log-1"] = &domain.ActivityLog{ID: "log-1", UserID: "u1"}
	uc := newTestUseCase(logs, &stubActivityRepo{})

	if _, err := uc.AddComment(context.Background(), "log-1", "intruder", "hi"); err == nil {
		t.Fatal("expected not-found for another user's log")
	}
}
