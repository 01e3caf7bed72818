package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-zoo/internal/domain/zoo"
)

var (
	ErrNotFound   = errors.New("not found")
	errReadOnlyTx = errors.New("write in read-only transaction")
)

// zooStore guarda inventario y préstamos detrás de un único lock.
// Update serializa todas las escrituras; los cambios se aplican solo si fn no falla.
type zooStore struct {
	mu     sync.RWMutex
	counts map[zoo.Category]uint64
	loans  map[string]zoo.Loan
}

func NewZooStore() zoo.Store {
	return &zooStore{
		counts: make(map[zoo.Category]uint64),
		loans:  make(map[string]zoo.Loan),
	}
}

func (s *zooStore) Update(ctx context.Context, fn func(tx zoo.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newZooTx(s, false)
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (s *zooStore) View(ctx context.Context, fn func(tx zoo.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(newZooTx(s, true))
}

// zooTx acumula escrituras; loans con valor nil = borrado.
type zooTx struct {
	store    *zooStore
	readOnly bool

	counts map[zoo.Category]uint64
	loans  map[string]*zoo.Loan
}

func newZooTx(s *zooStore, readOnly bool) *zooTx {
	return &zooTx{
		store:    s,
		readOnly: readOnly,
		counts:   map[zoo.Category]uint64{},
		loans:    map[string]*zoo.Loan{},
	}
}

func (tx *zooTx) Count(ctx context.Context, c zoo.Category) (uint64, error) {
	if n, ok := tx.counts[c]; ok {
		return n, nil
	}
	return tx.store.counts[c], nil
}

func (tx *zooTx) SetCount(ctx context.Context, c zoo.Category, n uint64) error {
	if tx.readOnly {
		return errReadOnlyTx
	}
	tx.counts[c] = n
	return nil
}

func (tx *zooTx) Counts(ctx context.Context) (map[zoo.Category]uint64, error) {
	out := make(map[zoo.Category]uint64, len(tx.store.counts)+len(tx.counts))
	for c, n := range tx.store.counts {
		out[c] = n
	}
	for c, n := range tx.counts {
		out[c] = n
	}
	return out, nil
}

func (tx *zooTx) Loan(ctx context.Context, holder string) (zoo.Loan, bool, error) {
	if l, ok := tx.loans[holder]; ok {
		if l == nil {
			return zoo.Loan{}, false, nil
		}
		return *l, true, nil
	}
	l, ok := tx.store.loans[holder]
	return l, ok, nil
}

func (tx *zooTx) PutLoan(ctx context.Context, l zoo.Loan) error {
	if tx.readOnly {
		return errReadOnlyTx
	}
	if strings.TrimSpace(l.Holder) == "" {
		return errors.New("loan holder required")
	}
	tx.loans[l.Holder] = &l
	return nil
}

func (tx *zooTx) DeleteLoan(ctx context.Context, holder string) error {
	if tx.readOnly {
		return errReadOnlyTx
	}
	if _, ok, _ := tx.Loan(ctx, holder); !ok {
		return ErrNotFound
	}
	tx.loans[holder] = nil
	return nil
}

func (tx *zooTx) commit() {
	for c, n := range tx.counts {
		tx.store.counts[c] = n
	}
	for h, l := range tx.loans {
		if l == nil {
			delete(tx.store.loans, h)
			continue
		}
		tx.store.loans[h] = *l
	}
}
