package catalog

import (
	"context"

	"triply/internal/domain"
	destinationrepo "triply/internal/repository/destination"
	postrepo "triply/internal/repository/post"
	productrepo "triply/internal/repository/product"
)

// Service is the read side of the catalog: the three collections are
// independent, so a failure on one never touches the others.
type Service struct {
	products     productrepo.Repository
	posts        postrepo.Repository
	destinations destinationrepo.Repository
}

func New(products productrepo.Repository, posts postrepo.Repository, destinations destinationrepo.Repository) *Service {
	return &Service{products: products, posts: posts, destinations: destinations}
}

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// Posts returns all posts, newest date first.
func (s *Service) Posts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *Service) Destinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.List(ctx)
}

// Summary holds row counts for the three catalog collections.
type Summary struct {
	Products     int `json:"products"`
	Posts        int `json:"posts"`
	Destinations int `json:"destinations"`
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	destinations, err := s.destinations.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{Products: products, Posts: posts, Destinations: destinations}, nil
}
