package events

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-zoo/internal/domain/zoo"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[string]Event
	getErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Event{}}
}

func (r *testRepo) Create(ctx context.Context, e Event) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Event, error) {
	if r.getErr != nil {
		return Event{}, r.getErr
	}
	e, ok := r.byID[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Event, error) {
	out := make([]Event, 0)
	for _, e := range r.byID {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Holder != "" && e.Holder != f.Holder {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func newTestService(now time.Time) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestPublishStoresEvent(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)

	occurred := now.Add(-time.Second)
	err := svc.Publish(context.Background(), zoo.Notification{
		Type:       zoo.NotificationAdded,
		Category:   zoo.CategoryFish,
		Count:      5,
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	require.Len(t, repo.byID, 1)

	for id, e := range repo.byID {
		assert.Equal(t, id, e.ID)
		assert.Equal(t, zoo.NotificationAdded, e.Type)
		assert.Equal(t, uint64(5), e.Count)
		assert.Equal(t, occurred, e.OccurredAt)
		assert.Equal(t, now, e.RecordedAt)
	}
}

func TestPublishDefaultsOccurredAt(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)

	require.NoError(t, svc.Publish(context.Background(), zoo.Notification{
		Type:     zoo.NotificationReturned,
		Category: zoo.CategoryDog,
		Holder:   " u-1 ",
	}))
	for _, e := range repo.byID {
		assert.Equal(t, now, e.OccurredAt)
		assert.Equal(t, "u-1", e.Holder)
	}
}

func TestPublishRejectsInvalidNotification(t *testing.T) {
	svc, _ := newTestService(time.Now())

	err := svc.Publish(context.Background(), zoo.Notification{Type: zoo.NotificationAdded})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Publish(context.Background(), zoo.Notification{Category: zoo.CategoryCat})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	svc, repo := newTestService(time.Now())
	repo.byID["e-1"] = Event{ID: "e-1", Type: zoo.NotificationBorrowed, Category: zoo.CategoryFish}

	e, err := svc.GetByID(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, zoo.NotificationBorrowed, e.Type)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByIDKeepsStorageFailures(t *testing.T) {
	svc, repo := newTestService(time.Now())
	outage := errors.New("connection refused")
	repo.getErr = outage

	_, err := svc.GetByID(context.Background(), "e-1")
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListAppliesLimitBounds(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(base)
	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		repo.byID[id] = Event{ID: id, Category: zoo.CategoryFish, OccurredAt: base.Add(time.Duration(i) * time.Minute)}
	}

	items, err := svc.List(context.Background(), ListFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].ID)

	items, err = svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestEffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ListFilter{}.EffectiveLimit())
	assert.Equal(t, 10, ListFilter{Limit: 10}.EffectiveLimit())
	assert.Equal(t, MaxLimit, ListFilter{Limit: MaxLimit + 1}.EffectiveLimit())
}
