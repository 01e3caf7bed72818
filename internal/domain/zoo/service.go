package zoo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"animal-zoo/internal/platform/logger"
	"animal-zoo/internal/platform/metrics"
)

// maxCount es el tope de inventario por categoría (BIGINT en Postgres).
const maxCount = uint64(math.MaxInt64)

type Service struct {
	store      Store
	trainerID  string
	publishers []Publisher

	log     logger.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

type Option func(s *Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithPublisher agrega un destino para las notificaciones (se pueden combinar varios).
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publishers = append(s.publishers, p)
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService crea el registro. trainerID es el único principal que puede agregar inventario.
func NewService(store Store, trainerID string, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	trainerID = strings.TrimSpace(trainerID)
	if trainerID == "" {
		return nil, errors.New("trainer id is required")
	}

	s := &Service{
		store:     store,
		trainerID: trainerID,
		log:       logger.Nop(),
		tracer:    otel.Tracer("animal-zoo/zoo"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TrainerID devuelve el principal administrador configurado.
func (s *Service) TrainerID() string {
	return s.trainerID
}

// Add suma count unidades de category al inventario. Solo el trainer.
func (s *Service) Add(ctx context.Context, caller string, category Category, count uint64) (uint64, error) {
	ctx, span := s.tracer.Start(ctx, "zoo.Add", trace.WithAttributes(
		attribute.String("zoo.category", string(category)),
		attribute.Int64("zoo.count", int64(min(count, maxCount))),
	))
	defer span.End()
	start := time.Now()

	var total uint64
	err := func() error {
		if strings.TrimSpace(caller) != s.trainerID {
			return ErrUnauthorized
		}
		if !category.Valid() {
			return ErrInvalidCategory
		}
		return s.store.Update(ctx, func(tx Tx) error {
			current, err := tx.Count(ctx, category)
			if err != nil {
				return err
			}
			if count > maxCount-current {
				return ErrCountOverflow
			}
			total = current + count
			return tx.SetCount(ctx, category, total)
		})
	}()

	s.finish(ctx, span, "add", start, err, map[string]any{
		"caller":   caller,
		"category": category,
		"count":    count,
	})
	if err != nil {
		return 0, err
	}

	s.metrics.SetInventory(string(category), total)
	s.publish(ctx, Notification{
		Type:       NotificationAdded,
		Category:   category,
		Count:      count,
		OccurredAt: s.now().UTC(),
	})
	return total, nil
}

// Borrow presta una unidad de category al caller si cumple las reglas de elegibilidad.
func (s *Service) Borrow(ctx context.Context, caller string, age uint32, gender Gender, category Category) (Loan, error) {
	ctx, span := s.tracer.Start(ctx, "zoo.Borrow", trace.WithAttributes(
		attribute.String("zoo.category", string(category)),
		attribute.String("zoo.gender", string(gender)),
		attribute.Int("zoo.age", int(age)),
	))
	defer span.End()
	start := time.Now()

	caller = strings.TrimSpace(caller)

	var (
		loan      Loan
		remaining uint64
	)
	err := func() error {
		if caller == "" {
			return ErrInvalidInput
		}
		if age == 0 {
			return ErrInvalidAge
		}
		if !gender.Valid() {
			return ErrInvalidGender
		}
		if !category.Valid() {
			return ErrInvalidCategory
		}

		return s.store.Update(ctx, func(tx Tx) error {
			available, err := tx.Count(ctx, category)
			if err != nil {
				return err
			}
			if available == 0 {
				return ErrUnavailable
			}

			// Con un préstamo activo no importa la categoría pedida.
			active, ok, err := tx.Loan(ctx, caller)
			if err != nil {
				return err
			}
			if ok {
				return checkActiveLoan(active, age, gender)
			}

			if err := CheckEligibility(gender, category, age); err != nil {
				return err
			}

			remaining = available - 1
			if err := tx.SetCount(ctx, category, remaining); err != nil {
				return err
			}

			loan = Loan{
				ID:         uuid.NewString(),
				Holder:     caller,
				Category:   category,
				Age:        age,
				Gender:     gender,
				BorrowedAt: s.now().UTC(),
			}
			return tx.PutLoan(ctx, loan)
		})
	}()

	s.finish(ctx, span, "borrow", start, err, map[string]any{
		"caller":   caller,
		"category": category,
		"age":      age,
		"gender":   gender,
	})
	if err != nil {
		return Loan{}, err
	}

	s.metrics.SetInventory(string(category), remaining)
	s.publish(ctx, Notification{
		Type:       NotificationBorrowed,
		Category:   category,
		Holder:     caller,
		OccurredAt: loan.BorrowedAt,
	})
	return loan, nil
}

// GiveBack devuelve el préstamo activo del caller al inventario.
func (s *Service) GiveBack(ctx context.Context, caller string) (Loan, error) {
	ctx, span := s.tracer.Start(ctx, "zoo.GiveBack")
	defer span.End()
	start := time.Now()

	caller = strings.TrimSpace(caller)

	var (
		loan  Loan
		total uint64
	)
	err := func() error {
		if caller == "" {
			return ErrInvalidInput
		}
		return s.store.Update(ctx, func(tx Tx) error {
			active, ok, err := tx.Loan(ctx, caller)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNoActiveLoan
			}

			current, err := tx.Count(ctx, active.Category)
			if err != nil {
				return err
			}
			if current == maxCount {
				return ErrCountOverflow
			}
			total = current + 1
			if err := tx.SetCount(ctx, active.Category, total); err != nil {
				return err
			}
			if err := tx.DeleteLoan(ctx, caller); err != nil {
				return err
			}
			loan = active
			return nil
		})
	}()

	s.finish(ctx, span, "give_back", start, err, map[string]any{
		"caller":   caller,
		"category": loan.Category,
	})
	if err != nil {
		return Loan{}, err
	}

	s.metrics.SetInventory(string(loan.Category), total)
	s.publish(ctx, Notification{
		Type:       NotificationReturned,
		Category:   loan.Category,
		Holder:     caller,
		OccurredAt: s.now().UTC(),
	})
	return loan, nil
}

// AnimalCount devuelve las unidades disponibles de category.
func (s *Service) AnimalCount(ctx context.Context, category Category) (uint64, error) {
	if !category.Valid() {
		return 0, ErrInvalidCategory
	}

	var n uint64
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		n, err = tx.Count(ctx, category)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("read animal count: %w", err)
	}
	return n, nil
}

// Inventory devuelve todas las categorías válidas, incluidas las que están en 0.
func (s *Service) Inventory(ctx context.Context) ([]CategoryCount, error) {
	var counts map[Category]uint64
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		counts, err = tx.Counts(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}

	out := make([]CategoryCount, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out, nil
}

// ActiveLoan devuelve el préstamo activo del caller o ErrNoActiveLoan.
func (s *Service) ActiveLoan(ctx context.Context, caller string) (Loan, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return Loan{}, ErrInvalidInput
	}

	var (
		loan Loan
		ok   bool
	)
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		loan, ok, err = tx.Loan(ctx, caller)
		return err
	})
	if err != nil {
		return Loan{}, fmt.Errorf("read active loan: %w", err)
	}
	if !ok {
		return Loan{}, ErrNoActiveLoan
	}
	return loan, nil
}

// finish registra span, métricas y log de una operación de escritura.
func (s *Service) finish(ctx context.Context, span trace.Span, op string, start time.Time, err error, fields map[string]any) {
	s.metrics.ObserveOperation(op, start)

	l := s.log.With(fields)
	switch {
	case err == nil:
		s.metrics.IncOperation(op, "ok")
		span.SetStatus(codes.Ok, "")
		l.Info("zoo "+op, nil)
	case IsRuleError(err):
		s.metrics.IncOperation(op, Code(err))
		span.SetAttributes(attribute.String("zoo.rejection", Code(err)))
		l.Warn("zoo "+op+" rejected", map[string]any{"reason": err.Error()})
	default:
		s.metrics.IncOperation(op, "error")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		l.Error("zoo "+op+" failed", map[string]any{"error": err.Error()})
	}
}

// publish es best-effort: la operación ya quedó confirmada en el store.
func (s *Service) publish(ctx context.Context, n Notification) {
	for _, p := range s.publishers {
		if err := p.Publish(ctx, n); err != nil {
			s.metrics.IncPublishFailure(string(n.Type))
			s.log.Error("publish notification failed", map[string]any{
				"type":     n.Type,
				"category": n.Category,
				"error":    err.Error(),
			})
		}
	}
}
