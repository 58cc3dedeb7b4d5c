package seed

import (
	"context"
	"database/sql"
	"fmt"
)

type productSeed struct {
	ID          int64
	Name        string
	Price       float64
	Category    string
	Rating      float64
	Image       string
	Badge       *string
	Description string
}

type postSeed struct {
	ID      int64
	Title   string
	Excerpt string
	City    string
	Days    int
	Cover   string
	Date    string
}

type destinationSeed struct {
	ID          int64
	Name        string
	Country     string
	Temperature string
	Season      string
	Image       string
	Highlight   string
}

func badge(v string) *string { return &v }

var products = []productSeed{
	{1, "Summit Packing Cubes", 38, "gear", 4.8, "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=800&q=80", badge("Best Seller"), "Lightweight organization for fast-moving itineraries."},
	{2, "Mapmaker Print Set", 56, "prints", 4.6, "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=800&q=80", badge("New"), "Studio-grade travel posters printed on matte art stock."},
	{3, "Trail to Table Guide", 22, "guides", 4.9, "https://images.unsplash.com/photo-1496307042754-b4aa456c4a2d?auto=format&fit=crop&w=800&q=80", nil, "A minimalist food guide for hikers and city wanderers."},
	{4, "Wanderlight Daypack", 88, "gear", 4.7, "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=800&q=80", badge("Limited"), "Carry-on friendly daypack with modular storage."},
	{5, "Midnight City Prints", 44, "prints", 4.5, "https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=800&q=80", nil, "A trio of night cityscapes designed for gallery walls."},
}

var posts = []postSeed{
	{1, "Lisbon in 48 Hours", "Neighborhood strolls, azulejo trails, and the pastry loop worth repeating.", "Lisbon", 2, "https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=900&q=80", "2026-01-07"},
	{2, "Kyoto for First-Timers", "How to balance temple mornings with river evenings and slow dinners.", "Kyoto", 4, "https://images.unsplash.com/photo-1501785888041-af3ef285b470?auto=format&fit=crop&w=900&q=80", "2025-12-18"},
	{3, "Reykjavik: Winter Layers", "A cozy itinerary with hot pools, harbor soup, and geothermal day trips.", "Reykjavik", 3, "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=900&q=80", "2025-11-23"},
}

var destinations = []destinationSeed{
	{1, "Porto", "Portugal", "12-18C", "Spring", "https://images.unsplash.com/photo-1471879832106-c7ab9e0cee23?auto=format&fit=crop&w=900&q=80", "Riverside walks and tiled facades"},
	{2, "Queenstown", "New Zealand", "7-14C", "Autumn", "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=900&q=80", "Lake views with alpine switchbacks"},
	{3, "Tulum", "Mexico", "26-30C", "Winter", "https://images.unsplash.com/photo-1473625247510-8ceb1760943f?auto=format&fit=crop&w=900&q=80", "Beach mornings and cenote afternoons"},
}

// Apply inserts the demo catalog for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, conn *sql.DB) error {
	for _, p := range products {
		if err := upsertProduct(ctx, conn, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}
	for _, p := range posts {
		if err := upsertPost(ctx, conn, p); err != nil {
			return fmt.Errorf("upsert post %q: %w", p.Title, err)
		}
	}
	for _, d := range destinations {
		if err := upsertDestination(ctx, conn, d); err != nil {
			return fmt.Errorf("upsert destination %q: %w", d.Name, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, conn *sql.DB, p productSeed) error {
	const q = `
INSERT INTO products (id, name, price, category, rating, image, badge, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    price = excluded.price,
    category = excluded.category,
    rating = excluded.rating,
    image = excluded.image,
    badge = excluded.badge,
    description = excluded.description
`
	_, err := conn.ExecContext(ctx, q, p.ID, p.Name, p.Price, p.Category, p.Rating, p.Image, p.Badge, p.Description)
	return err
}

func upsertPost(ctx context.Context, conn *sql.DB, p postSeed) error {
	const q = `
INSERT INTO posts (id, title, excerpt, city, days, cover, date)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    title = excluded.title,
    excerpt = excluded.excerpt,
    city = excluded.city,
    days = excluded.days,
    cover = excluded.cover,
    date = excluded.date
`
	_, err := conn.ExecContext(ctx, q, p.ID, p.Title, p.Excerpt, p.City, p.Days, p.Cover, p.Date)
	return err
}

func upsertDestination(ctx context.Context, conn *sql.DB, d destinationSeed) error {
	const q = `
INSERT INTO destinations (id, name, country, temperature, season, image, highlight)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    country = excluded.country,
    temperature = excluded.temperature,
    season = excluded.season,
    image = excluded.image,
    highlight = excluded.highlight
`
	_, err := conn.ExecContext(ctx, q, d.ID, d.Name, d.Country, d.Temperature, d.Season, d.Image, d.Highlight)
	return err
}
