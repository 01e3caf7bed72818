package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"animal-zoo/internal/domain/events"
	"animal-zoo/internal/domain/zoo"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO zoo_events (
			id, type, category, count, holder_id,
			occurred_at, recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID,
		string(e.Type),
		string(e.Category),
		int64(e.Count),
		e.Holder,
		e.OccurredAt,
		e.RecordedAt,
	)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return events.Event{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, type, category, count, holder_id, occurred_at, recorded_at
		FROM zoo_events
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}
	return e, nil
}

func (r *EventsRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, type, category, count, holder_id, occurred_at, recorded_at
		FROM zoo_events
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}
	if filter.Category != "" {
		sb.WriteString(fmt.Sprintf(" AND category = $%d", argN))
		args = append(args, string(filter.Category))
		argN++
	}
	if filter.Holder != "" {
		sb.WriteString(fmt.Sprintf(" AND holder_id = $%d", argN))
		args = append(args, filter.Holder)
		argN++
	}
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	sb.WriteString(" ORDER BY occurred_at DESC, recorded_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, filter.EffectiveLimit())

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (events.Event, error) {
	var (
		e             events.Event
		typ, category string
		count         int64
	)
	if err := s.Scan(
		&e.ID,
		&typ,
		&category,
		&count,
		&e.Holder,
		&e.OccurredAt,
		&e.RecordedAt,
	); err != nil {
		return events.Event{}, err
	}
	e.Type = zoo.NotificationType(typ)
	e.Category = zoo.Category(category)
	e.Count = uint64(count)
	return e, nil
}
