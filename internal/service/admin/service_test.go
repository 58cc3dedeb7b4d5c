package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"triply/internal/domain"
)

type stubProductRepo struct {
	created *domain.Product
	err     error
	last    domain.Product
}

func (s *stubProductRepo) List(_ context.Context) ([]domain.Product, error) { return nil, nil }
func (s *stubProductRepo) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}
func (s *stubProductRepo) Count(_ context.Context) (int, error) { return 0, nil }
func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.last = p
	if s.err != nil {
		return nil, s.err
	}
	if s.created != nil {
		return s.created, nil
	}
	p.ID = 42
	return &p, nil
}

type stubPostRepo struct {
	last domain.Post
	err  error
}

func (s *stubPostRepo) List(_ context.Context) ([]domain.Post, error) { return nil, nil }
func (s *stubPostRepo) Count(_ context.Context) (int, error)          { return 0, nil }
func (s *stubPostRepo) Create(_ context.Context, p domain.Post) (*domain.Post, error) {
	s.last = p
	if s.err != nil {
		return nil, s.err
	}
	p.ID = 7
	return &p, nil
}

type stubDestinationRepo struct {
	last domain.Destination
	err  error
}

func (s *stubDestinationRepo) List(_ context.Context) ([]domain.Destination, error) {
	return nil, nil
}
func (s *stubDestinationRepo) Count(_ context.Context) (int, error) { return 0, nil }
func (s *stubDestinationRepo) Create(_ context.Context, d domain.Destination) (*domain.Destination, error) {
	s.last = d
	if s.err != nil {
		return nil, s.err
	}
	d.ID = 7
	return &d, nil
}

func newTestService() (*Service, *stubProductRepo, *stubPostRepo, *stubDestinationRepo) {
	products := &stubProductRepo{}
	posts := &stubPostRepo{}
	destinations := &stubDestinationRepo{}
	return New(products, posts, destinations), products, posts, destinations
}

func validProduct() ProductInput {
	return ProductInput{
		Name:        "Dune Field Journal",
		Price:       24,
		Category:    "guides",
		Rating:      4.4,
		Image:       "https://example.com/i.jpg",
		Description: "Pocket notes for desert routes.",
	}
}

func expectInvalid(t *testing.T, err error, reason string) {
	t.Helper()
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Reason != reason {
		t.Fatalf("unexpected reason %q", vErr.Reason)
	}
}

func TestCreateProduct_HappyPath(t *testing.T) {
	svc, products, _, _ := newTestService()

	created, err := svc.CreateProduct(context.Background(), validProduct())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected server-assigned id, got %+v", created)
	}
	if products.last.Badge != nil {
		t.Fatalf("blank badge should be stored as null, got %v", *products.last.Badge)
	}
}

func TestCreateProduct_ZeroPriceRejected(t *testing.T) {
	svc, _, _, _ := newTestService()
	in := validProduct()
	in.Price = 0
	_, err := svc.CreateProduct(context.Background(), in)
	expectInvalid(t, err, "price must be greater than 0")
}

func TestCreateProduct_CentPriceAccepted(t *testing.T) {
	svc, _, _, _ := newTestService()
	in := validProduct()
	in.Price = 0.01
	if _, err := svc.CreateProduct(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateProduct_RatingOutOfRange(t *testing.T) {
	svc, _, _, _ := newTestService()
	in := validProduct()
	in.Rating = 5.1
	_, err := svc.CreateProduct(context.Background(), in)
	expectInvalid(t, err, "rating must be between 0 and 5")
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	svc, _, _, _ := newTestService()
	in := validProduct()
	in.Category = "snacks"
	_, err := svc.CreateProduct(context.Background(), in)
	expectInvalid(t, err, "category must be one of gear, prints, guides")
}

func TestCreateProduct_BlankNameRejected(t *testing.T) {
	svc, _, _, _ := newTestService()
	in := validProduct()
	in.Name = "   "
	_, err := svc.CreateProduct(context.Background(), in)
	expectInvalid(t, err, "name is required")
}

func TestCreateProduct_BadgeKept(t *testing.T) {
	svc, products, _, _ := newTestService()
	in := validProduct()
	in.Badge = "New"
	if _, err := svc.CreateProduct(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products.last.Badge == nil || *products.last.Badge != "New" {
		t.Fatalf("expected badge to survive, got %v", products.last.Badge)
	}
}

func TestCreatePost_DefaultsDateToToday(t *testing.T) {
	svc, _, posts, _ := newTestService()
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 9, 23, 30, 0, 0, time.UTC)
	}

	created, err := svc.CreatePost(context.Background(), PostInput{
		Title:   "Oaxaca on Foot",
		Excerpt: "Markets and mezcal without a car.",
		City:    "Oaxaca",
		Days:    3,
		Cover:   "https://example.com/c.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Date != "2026-03-09" {
		t.Fatalf("expected defaulted date, got %q", created.Date)
	}
	if posts.last.Date != "2026-03-09" {
		t.Fatalf("stored date mismatch: %q", posts.last.Date)
	}
}

func TestCreatePost_KeepsExplicitDate(t *testing.T) {
	svc, _, _, _ := newTestService()
	created, err := svc.CreatePost(context.Background(), PostInput{
		Title:   "Oaxaca on Foot",
		Excerpt: "Markets and mezcal without a car.",
		City:    "Oaxaca",
		Days:    3,
		Cover:   "https://example.com/c.jpg",
		Date:    "2025-06-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Date != "2025-06-01" {
		t.Fatalf("expected explicit date, got %q", created.Date)
	}
}

func TestCreatePost_NonPositiveDaysRejected(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.CreatePost(context.Background(), PostInput{
		Title:   "Oaxaca on Foot",
		Excerpt: "Markets.",
		City:    "Oaxaca",
		Days:    0,
		Cover:   "https://example.com/c.jpg",
	})
	expectInvalid(t, err, "days must be greater than 0")
}

func TestCreateDestination_HappyPath(t *testing.T) {
	svc, _, _, _ := newTestService()
	created, err := svc.CreateDestination(context.Background(), DestinationInput{
		Name:        "Hoi An",
		Country:     "Vietnam",
		Temperature: "24-30C",
		Season:      "Spring",
		Image:       "https://example.com/h.jpg",
		Highlight:   "Lantern riverfront",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected server-assigned id, got %+v", created)
	}
}

func TestCreateDestination_MissingFieldRejected(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.CreateDestination(context.Background(), DestinationInput{
		Name:        "Hoi An",
		Country:     "Vietnam",
		Temperature: "",
		Season:      "Spring",
		Image:       "https://example.com/h.jpg",
		Highlight:   "Lantern riverfront",
	})
	expectInvalid(t, err, "temperature is required")
}
