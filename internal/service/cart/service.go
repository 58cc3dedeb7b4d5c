package cart

import (
	"context"
	"errors"

	"triply/internal/domain"
)

// Service validates cart mutations and always answers with the full cart
// re-read from storage, never a locally patched copy.
type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	Get(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) error
	SetQuantity(ctx context.Context, productID int64, quantity int) error
	RemoveItem(ctx context.Context, productID int64) error
	Clear(ctx context.Context) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo cartRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Get(ctx context.Context) (*domain.Cart, error) {
	return s.repo.Get(ctx)
}

// Add upserts quantity onto the product's line (additive, not overwrite).
func (s *Service) Add(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	if productID <= 0 {
		return nil, domain.Invalid("productId is required")
	}
	if quantity <= 0 {
		return nil, domain.Invalid("quantity must be greater than 0")
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.repo.AddItem(ctx, productID, quantity); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx)
}

// SetQuantity overwrites the line to the exact quantity; zero or below
// deletes the line.
func (s *Service) SetQuantity(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	if productID <= 0 {
		return nil, domain.Invalid("productId is required")
	}
	if quantity > 0 {
		if err := s.ensureProduct(ctx, productID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.SetQuantity(ctx, productID, quantity); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx)
}

// Remove deletes the line unconditionally; removing an absent line is
// not an error.
func (s *Service) Remove(ctx context.Context, productID int64) (*domain.Cart, error) {
	if productID <= 0 {
		return nil, domain.Invalid("productId is required")
	}
	if err := s.repo.RemoveItem(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx)
}

func (s *Service) Clear(ctx context.Context) (*domain.Cart, error) {
	if err := s.repo.Clear(ctx); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx)
}

func (s *Service) ensureProduct(ctx context.Context, productID int64) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Invalid("product not found")
		}
		return err
	}
	return nil
}
