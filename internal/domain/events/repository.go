package events

import (
	"context"
	"time"

	"animal-zoo/internal/domain/zoo"
)

// Repository persiste el log. GetByID devuelve ErrNotFound si el id no existe.
type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	List(ctx context.Context, filter ListFilter) ([]Event, error)
}

type ListFilter struct {
	Types    []zoo.NotificationType
	Category zoo.Category
	Holder   string
	From     *time.Time
	To       *time.Time
	Limit    int
}

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// EffectiveLimit normaliza Limit al rango [1, MaxLimit].
func (f ListFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultLimit
	}
	if f.Limit > MaxLimit {
		return MaxLimit
	}
	return f.Limit
}
