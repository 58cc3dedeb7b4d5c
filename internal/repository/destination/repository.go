package destination

import (
	"context"

	"triply/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Create(ctx context.Context, d domain.Destination) (*domain.Destination, error)
	Count(ctx context.Context) (int, error)
}
