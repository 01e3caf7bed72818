package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"animal-zoo/internal/domain/zoo"
)

const (
	sqlStateUniqueViolation      = "23505"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"

	maxTxAttempts = 3
)

// ZooStore implementa zoo.Store con transacciones SERIALIZABLE.
// Dos Adds concurrentes sobre una categoría nueva no pierden escrituras:
// uno de los dos falla con 40001 y se reintenta.
type ZooStore struct {
	db *sql.DB
}

func NewZooStore(db *sql.DB) *ZooStore {
	return &ZooStore{db: db}
}

func (s *ZooStore) Update(ctx context.Context, fn func(tx zoo.Tx) error) error {
	return s.run(ctx, false, fn)
}

func (s *ZooStore) View(ctx context.Context, fn func(tx zoo.Tx) error) error {
	return s.run(ctx, true, fn)
}

func (s *ZooStore) run(ctx context.Context, readOnly bool, fn func(tx zoo.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runOnce(ctx, readOnly, fn)
		if err == nil || !retryable(err) {
			break
		}
		// backoff corto y lineal; los conflictos se resuelven rápido
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 5 * time.Millisecond):
		}
	}

	// Dos borrows concurrentes del mismo holder: el segundo choca con la PK de loans.
	if isSQLState(err, sqlStateUniqueViolation) {
		return zoo.ErrAlreadyBorrowed
	}
	return err
}

func (s *ZooStore) runOnce(ctx context.Context, readOnly bool, fn func(tx zoo.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
		ReadOnly:  readOnly,
	})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&zooTx{tx: sqlTx, forUpdate: !readOnly}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type zooTx struct {
	tx        *sql.Tx
	forUpdate bool
}

func (t *zooTx) lockClause() string {
	if t.forUpdate {
		return " FOR UPDATE"
	}
	return ""
}

func (t *zooTx) Count(ctx context.Context, c zoo.Category) (uint64, error) {
	var n int64
	err := t.tx.QueryRowContext(ctx,
		`SELECT count FROM animal_counts WHERE category = $1`+t.lockClause(),
		string(c),
	).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

func (t *zooTx) SetCount(ctx context.Context, c zoo.Category, n uint64) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO animal_counts (category, count, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (category)
		DO UPDATE SET count = EXCLUDED.count, updated_at = EXCLUDED.updated_at
	`, string(c), int64(n))
	return err
}

func (t *zooTx) Counts(ctx context.Context) (map[zoo.Category]uint64, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT category, count FROM animal_counts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[zoo.Category]uint64)
	for rows.Next() {
		var (
			c string
			n int64
		)
		if err := rows.Scan(&c, &n); err != nil {
			return nil, err
		}
		out[zoo.Category(c)] = uint64(n)
	}
	return out, rows.Err()
}

func (t *zooTx) Loan(ctx context.Context, holder string) (zoo.Loan, bool, error) {
	var (
		l              zoo.Loan
		category, gndr string
		age            int64
	)
	err := t.tx.QueryRowContext(ctx, `
		SELECT id, holder_id, category, age, gender, borrowed_at
		FROM loans
		WHERE holder_id = $1
	`+t.lockClause(), holder).Scan(
		&l.ID,
		&l.Holder,
		&category,
		&age,
		&gndr,
		&l.BorrowedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return zoo.Loan{}, false, nil
	}
	if err != nil {
		return zoo.Loan{}, false, err
	}

	l.Category = zoo.Category(category)
	l.Age = uint32(age)
	l.Gender = zoo.Gender(gndr)
	return l, true, nil
}

func (t *zooTx) PutLoan(ctx context.Context, l zoo.Loan) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO loans (holder_id, id, category, age, gender, borrowed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		l.Holder,
		l.ID,
		string(l.Category),
		int64(l.Age),
		string(l.Gender),
		l.BorrowedAt,
	)
	return err
}

func (t *zooTx) DeleteLoan(ctx context.Context, holder string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM loans WHERE holder_id = $1`, holder)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func retryable(err error) bool {
	return isSQLState(err, sqlStateSerializationFailure) || isSQLState(err, sqlStateDeadlockDetected)
}

func isSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
