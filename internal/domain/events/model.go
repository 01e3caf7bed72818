package events

import (
	"time"

	"animal-zoo/internal/domain/zoo"
)

// Event es una notificación del registro ya persistida en el log.
type Event struct {
	ID string

	Type     zoo.NotificationType
	Category zoo.Category

	// Count solo aplica a ADDED.
	Count uint64

	// Holder es quien pidió o devolvió; vacío en ADDED.
	Holder string

	OccurredAt time.Time
	RecordedAt time.Time
}
