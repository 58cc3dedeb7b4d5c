package post

import (
	"context"

	"triply/internal/domain"
)

type Repository interface {
	// List returns all posts, newest date first.
	List(ctx context.Context) ([]domain.Post, error)
	Create(ctx context.Context, p domain.Post) (*domain.Post, error)
	Count(ctx context.Context) (int, error)
}
