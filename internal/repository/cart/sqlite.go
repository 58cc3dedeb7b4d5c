package cart

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

func (r *sqliteRepo) Get(ctx context.Context) (*domain.Cart, error) {
	const q = `
SELECT
    products.id,
    products.name,
    products.price,
    products.category,
    products.rating,
    products.image,
    products.badge,
    products.description,
    cart_items.quantity
FROM cart_items
JOIN products ON products.id = cart_items.product_id
ORDER BY cart_items.product_id
`
	rows, err := r.conn.QueryContext(ctx, q)
	if err != nil {
		r.logger.Printf("cart repo: get error=%v", err)
		return nil, err
	}
	defer rows.Close()

	cart := &domain.Cart{Items: []domain.CartLine{}}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.Product.ID,
			&line.Product.Name,
			&line.Product.Price,
			&line.Product.Category,
			&line.Product.Rating,
			&line.Product.Image,
			&line.Product.Badge,
			&line.Product.Description,
			&line.Quantity,
		); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, line)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("cart repo: get rows error=%v", err)
		return nil, err
	}
	return cart, nil
}

func (r *sqliteRepo) AddItem(ctx context.Context, productID int64, quantity int) error {
	// Upsert keyed by product id keeps the one-line-per-product invariant
	// atomic within a single statement.
	const q = `
INSERT INTO cart_items (product_id, quantity)
VALUES (?, ?)
ON CONFLICT(product_id)
DO UPDATE SET quantity = quantity + excluded.quantity
`
	if _, err := r.conn.ExecContext(ctx, q, productID, quantity); err != nil {
		r.logger.Printf("cart repo: add product_id=%d error=%v", productID, err)
		return err
	}
	return nil
}

func (r *sqliteRepo) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return r.RemoveItem(ctx, productID)
	}
	const q = `
INSERT INTO cart_items (product_id, quantity)
VALUES (?, ?)
ON CONFLICT(product_id)
DO UPDATE SET quantity = excluded.quantity
`
	if _, err := r.conn.ExecContext(ctx, q, productID, quantity); err != nil {
		r.logger.Printf("cart repo: set product_id=%d quantity=%d error=%v", productID, quantity, err)
		return err
	}
	return nil
}

func (r *sqliteRepo) RemoveItem(ctx context.Context, productID int64) error {
	if _, err := r.conn.ExecContext(ctx, `DELETE FROM cart_items WHERE product_id = ?`, productID); err != nil {
		r.logger.Printf("cart repo: remove product_id=%d error=%v", productID, err)
		return err
	}
	return nil
}

func (r *sqliteRepo) Clear(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		r.logger.Printf("cart repo: clear error=%v", err)
		return err
	}
	return nil
}
