package cart

import (
	"context"

	"triply/internal/domain"
)

type Repository interface {
	// Get returns the cart joined against live product rows, ordered by
	// product id ascending.
	Get(ctx context.Context) (*domain.Cart, error)
	// AddItem increases the line for productID by quantity, creating it
	// when absent.
	AddItem(ctx context.Context, productID int64, quantity int) error
	// SetQuantity overwrites the line quantity. A quantity of zero or
	// below deletes the line instead; zero-quantity rows are never stored.
	SetQuantity(ctx context.Context, productID int64, quantity int) error
	// RemoveItem deletes the line. Absent lines are a silent no-op.
	RemoveItem(ctx context.Context, productID int64) error
	// Clear deletes every line.
	Clear(ctx context.Context) error
}
