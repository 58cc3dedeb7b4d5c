package destination

import (
	"context"
	"database/sql"
	"io"
	"log"

	"triply/internal/domain"
)

type sqliteRepo struct {
	conn   *sql.DB
	logger *log.Logger
}

func NewSQLite(conn *sql.DB, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &sqliteRepo{conn: conn, logger: logger}
}

func (r *sqliteRepo) List(ctx context.Context) ([]domain.Destination, error) {
	const q = `
SELECT id, name, country, temperature, season, image, highlight
FROM destinations
`
	rows, err := r.conn.QueryContext(ctx, q)
	if err != nil {
		r.logger.Printf("destination repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Destination
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Country, &d.Temperature, &d.Season, &d.Image, &d.Highlight); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("destination repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *sqliteRepo) Create(ctx context.Context, d domain.Destination) (*domain.Destination, error) {
	const q = `
INSERT INTO destinations (name, country, temperature, season, image, highlight)
VALUES (?, ?, ?, ?, ?, ?)
`
	res, err := r.conn.ExecContext(ctx, q, d.Name, d.Country, d.Temperature, d.Season, d.Image, d.Highlight)
	if err != nil {
		r.logger.Printf("destination repo: create name=%q error=%v", d.Name, err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	d.ID = id
	r.logger.Printf("destination repo: created id=%d name=%q", d.ID, d.Name)
	return &d, nil
}

func (r *sqliteRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
