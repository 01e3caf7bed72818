package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"animal-zoo/internal/domain/zoo"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("event not found")
)

// Service persiste las notificaciones del registro. Implementa zoo.Publisher.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Publish(ctx context.Context, n zoo.Notification) error {
	if n.Type == "" || !n.Category.Valid() {
		return ErrInvalidInput
	}

	now := s.now().UTC()
	occurred := n.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}

	e := Event{
		ID:         uuid.NewString(),
		Type:       n.Type,
		Category:   n.Category,
		Count:      n.Count,
		Holder:     strings.TrimSpace(n.Holder),
		OccurredAt: occurred,
		RecordedAt: now,
	}
	return s.repo.Create(ctx, e)
}

func (s *Service) GetByID(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Event{}, ErrNotFound
		}
		return Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// List devuelve eventos del más reciente al más antiguo.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Event, error) {
	filter.Holder = strings.TrimSpace(filter.Holder)
	filter.Limit = filter.EffectiveLimit()
	return s.repo.List(ctx, filter)
}
