package destination

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"triply/internal/db"
	"triply/internal/domain"
	"triply/internal/migrate"
)

func testDB(ctx context.Context, t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(ctx, filepath.Join(t.TempDir(), "triply_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := migrate.Apply(conn); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return conn
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLite(testDB(ctx, t), nil)

	created, err := repo.Create(ctx, domain.Destination{
		Name:        "Porto",
		Country:     "Portugal",
		Temperature: "12-18C",
		Season:      "Spring",
		Image:       "https://example.com/p.jpg",
		Highlight:   "Riverside walks and tiled facades",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected server-assigned id, got %+v", created)
	}

	destinations, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(destinations) != 1 {
		t.Fatalf("expected one destination, got %d", len(destinations))
	}
	if destinations[0].Name != "Porto" || destinations[0].Temperature != "12-18C" {
		t.Fatalf("unexpected destination %+v", destinations[0])
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
}
