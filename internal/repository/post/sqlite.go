package post

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

func (r *sqliteRepo) List(ctx context.Context) ([]domain.Post, error) {
	const q = `
SELECT id, title, excerpt, city, days, cover, date
FROM posts
ORDER BY date DESC
`
	rows, err := r.conn.QueryContext(ctx, q)
	if err != nil {
		r.logger.Printf("post repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.City, &p.Days, &p.Cover, &p.Date); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("post repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *sqliteRepo) Create(ctx context.Context, p domain.Post) (*domain.Post, error) {
	const q = `
INSERT INTO posts (title, excerpt, city, days, cover, date)
VALUES (?, ?, ?, ?, ?, ?)
`
	res, err := r.conn.ExecContext(ctx, q, p.Title, p.Excerpt, p.City, p.Days, p.Cover, p.Date)
	if err != nil {
		r.logger.Printf("post repo: create title=%q error=%v", p.Title, err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	p.ID = id
	r.logger.Printf("post repo: created id=%d title=%q", p.ID, p.Title)
	return &p, nil
}

func (r *sqliteRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
