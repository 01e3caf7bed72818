package zoo

import "context"

//go:generate mockgen -destination=mocks/mocks.go -package=mocks animal-zoo/internal/domain/zoo Publisher,Store

// Store es el límite transaccional del registro.
// Update ejecuta fn con acceso exclusivo: si fn devuelve error no queda ningún cambio.
type Store interface {
	Update(ctx context.Context, fn func(tx Tx) error) error
	View(ctx context.Context, fn func(tx Tx) error) error
}

// Tx expone el estado del registro dentro de una transacción.
// Una categoría sin filas se lee como 0; un holder sin préstamo devuelve ok=false.
type Tx interface {
	Count(ctx context.Context, c Category) (uint64, error)
	SetCount(ctx context.Context, c Category, n uint64) error
	Counts(ctx context.Context) (map[Category]uint64, error)

	Loan(ctx context.Context, holder string) (Loan, bool, error)
	PutLoan(ctx context.Context, l Loan) error
	DeleteLoan(ctx context.Context, holder string) error
}

// Publisher recibe las notificaciones ya confirmadas.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}
