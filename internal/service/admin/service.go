package admin

import (
	"context"
	"math"
	"strings"
	"time"

	"triply/internal/domain"
	destinationrepo "triply/internal/repository/destination"
	postrepo "triply/internal/repository/post"
	productrepo "triply/internal/repository/product"
)

// Service performs the authoritative validation for catalog writes. The
// client mirrors these rules for UX only; rejections here are final.
type Service struct {
	products     productrepo.Repository
	posts        postrepo.Repository
	destinations destinationrepo.Repository
	now          func() time.Time
}

func New(products productrepo.Repository, posts postrepo.Repository, destinations destinationrepo.Repository) *Service {
	return &Service{
		products:     products,
		posts:        posts,
		destinations: destinations,
		now:          time.Now,
	}
}

// ProductInput mirrors the admin product form payload.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Badge       string  `json:"badge"`
	Description string  `json:"description"`
}

// PostInput mirrors the admin post form payload.
type PostInput struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	City    string `json:"city"`
	Days    int    `json:"days"`
	Cover   string `json:"cover"`
	Date    string `json:"date"`
}

// DestinationInput mirrors the admin destination form payload.
type DestinationInput struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Temperature string `json:"temperature"`
	Season      string `json:"season"`
	Image       string `json:"image"`
	Highlight   string `json:"highlight"`
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	if !isFinite(in.Price) || in.Price <= 0 {
		return nil, domain.Invalid("price must be greater than 0")
	}
	if !domain.ValidCategory(in.Category) {
		return nil, domain.Invalid("category must be one of gear, prints, guides")
	}
	if !isFinite(in.Rating) || in.Rating < 0 || in.Rating > 5 {
		return nil, domain.Invalid("rating must be between 0 and 5")
	}
	image := strings.TrimSpace(in.Image)
	if image == "" {
		return nil, domain.Invalid("image is required")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.Invalid("description is required")
	}

	// Blank badges are stored as NULL, matching seeded rows without one.
	var badge *string
	if b := strings.TrimSpace(in.Badge); b != "" {
		badge = &b
	}

	return s.products.Create(ctx, domain.Product{
		Name:        name,
		Price:       in.Price,
		Category:    in.Category,
		Rating:      in.Rating,
		Image:       image,
		Badge:       badge,
		Description: description,
	})
}

func (s *Service) CreatePost(ctx context.Context, in PostInput) (*domain.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.Invalid("title is required")
	}
	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		return nil, domain.Invalid("excerpt is required")
	}
	city := strings.TrimSpace(in.City)
	if city == "" {
		return nil, domain.Invalid("city is required")
	}
	if in.Days <= 0 {
		return nil, domain.Invalid("days must be greater than 0")
	}
	cover := strings.TrimSpace(in.Cover)
	if cover == "" {
		return nil, domain.Invalid("cover is required")
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.now().UTC().Format("2006-01-02")
	}

	return s.posts.Create(ctx, domain.Post{
		Title:   title,
		Excerpt: excerpt,
		City:    city,
		Days:    in.Days,
		Cover:   cover,
		Date:    date,
	})
}

func (s *Service) CreateDestination(ctx context.Context, in DestinationInput) (*domain.Destination, error) {
	fields := map[string]string{
		"name":        strings.TrimSpace(in.Name),
		"country":     strings.TrimSpace(in.Country),
		"temperature": strings.TrimSpace(in.Temperature),
		"season":      strings.TrimSpace(in.Season),
		"image":       strings.TrimSpace(in.Image),
		"highlight":   strings.TrimSpace(in.Highlight),
	}
	// Temperature and season stay free-form display strings; only presence
	// is checked.
	for _, field := range []string{"name", "country", "temperature", "season", "image", "highlight"} {
		if fields[field] == "" {
			return nil, domain.Invalid(field + " is required")
		}
	}

	return s.destinations.Create(ctx, domain.Destination{
		Name:        fields["name"],
		Country:     fields["country"],
		Temperature: fields["temperature"],
		Season:      fields["season"],
		Image:       fields["image"],
		Highlight:   fields["highlight"],
	})
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
