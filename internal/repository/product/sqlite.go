package product

import (
	"context"
	"database/sql"
	"errors"
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

func (r *sqliteRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, price, category, rating, image, badge, description
FROM products
`
	rows, err := r.conn.QueryContext(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Rating, &p.Image, &p.Badge, &p.Description); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, name, price, category, rating, image, badge, description
FROM products
WHERE id = ?
`
	var p domain.Product
	err := r.conn.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Rating, &p.Image, &p.Badge, &p.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, price, category, rating, image, badge, description)
VALUES (?, ?, ?, ?, ?, ?, ?)
`
	res, err := r.conn.ExecContext(ctx, q, p.Name, p.Price, p.Category, p.Rating, p.Image, p.Badge, p.Description)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	p.ID = id
	r.logger.Printf("product repo: created id=%d name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *sqliteRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
