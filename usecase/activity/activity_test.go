package activity

import (
	"context"
	"testing"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/repository"
)

type memoryRepo struct {
	items map[string]domain.Activity
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[string]domain.Activity{}}
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*domain.Activity, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &a, nil
}

func (m *memoryRepo) List(_ context.Context, filter repository.ActivityFilter) ([]domain.Activity, error) {
	var out []domain.Activity
	for _, a := range m.items {
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

func (m *memoryRepo) Create(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	if a.ID == "" {
		a.ID = "a-1"
	}
	m.items[a.ID] = *a
	return a, nil
}

func (m *memoryRepo) Update(_ context.Context, a *domain.Activity) error {
	if _, ok := m.items[a.ID]; !ok {
		return domain.ErrActivityNotFound
	}
	m.items[a.ID] = *a
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id, userID string) error {
	a, ok := m.items[id]
	if !ok || a.UserID != userID {
		return domain.ErrActivityNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memoryRepo) Categories(context.Context, string) ([]string, error) {
	return nil, nil
}

func TestCreateDefaultsToDaily(t *testing.T) {
	uc := New(newMemoryRepo(), nil)

	created, err := uc.Create(context.Background(), &domain.Activity{UserID: "u1", Title: "Read"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Frequency != domain.FrequencyDaily {
		t.Fatalf("expected DAILY default, got %s", created.Frequency)
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	uc := New(newMemoryRepo(), nil)

	if _, err := uc.Create(context.Background(), &domain.Activity{UserID: "u1"}); err == nil {
		t.Fatal("expected a validation error for a missing title")
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := newMemoryRepo()
	repo.items["a-1"] = domain.Activity{ID: "a-1", UserID: "u1", Title: "Read", Frequency: domain.FrequencyDaily}
	uc := New(repo, nil)

	if _, err := uc.Get(context.Background(), "a-1", "u1"); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if _, err := uc.Get(context.Background(), "a-1", "intruder"); err == nil {
		t.Fatal("expected not-found for another user's activity")
	}
}

func TestGroupedByFrequency(t *testing.T) {
	repo := newMemoryRepo()
	repo.items["a"] = domain.Activity{ID: "a", UserID: "u1", Title: "Read", Frequency: domain.FrequencyDaily}
	repo.items["b"] = domain.Activity{ID: "b", UserID: "u1", Title: "Review", Frequency: domain.FrequencyWeekly}
	repo.items["c"] = domain.Activity{ID: "c", UserID: "u2", Title: "Budget", Frequency: domain.FrequencyMonthly}
	uc := New(repo, nil)

	grouped, err := uc.GroupedByFrequency(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GroupedByFrequency: %v", err)
	}
	if len(grouped.Daily) != 1 || len(grouped.Weekly) != 1 {
		t.Fatalf("unexpected grouping: %+v", grouped)
	}
	if len(grouped.Monthly) != 0 {
		t.Fatal("another user's activity leaked into the grouping")
	}
}
