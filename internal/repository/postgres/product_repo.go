package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRow struct {
	ID        string
	Name      string
	Price     int64
	Category  string
	ImageURL  *string
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, name string, price int64, category string, imageURL *string) (*ProductRow, error) {
	const q = `
INSERT INTO products (name, price, category, image_url)
VALUES ($1, $2, $3, $4)
RETURNING id::text, name, price, category, image_url, deleted_at, created_at, updated_at;
`
	row := r.db.QueryRow(ctx, q, name, price, category, imageURL)

	var out ProductRow
	if err := row.Scan(&out.ID, &out.Name, &out.Price, &out.Category, &out.ImageURL, &out.DeletedAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns non-deleted products only; deleted rows stay behind for
// historical sale lines.
func (r *ProductRepo) List(ctx context.Context) ([]ProductRow, error) {
	const q = `
SELECT id::text, name, price, category, image_url, deleted_at, created_at, updated_at
FROM products
WHERE deleted_at IS NULL
ORDER BY category, name;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductRow
	for rows.Next() {
		var p ProductRow
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.ImageURL, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) Update(ctx context.Context, id string, name *string, price *int64, category *string, imageURL *string) (*ProductRow, error) {
	const q = `
UPDATE products
SET
  name = COALESCE($2, name),
  price = COALESCE($3, price),
  category = COALESCE($4, category),
  image_url = COALESCE($5, image_url),
  updated_at = now()
WHERE id = $1::uuid AND deleted_at IS NULL
RETURNING id::text, name, price, category, image_url, deleted_at, created_at, updated_at;
`
	row := r.db.QueryRow(ctx, q, id, name, price, category, imageURL)

	var out ProductRow
	if err := row.Scan(&out.ID, &out.Name, &out.Price, &out.Category, &out.ImageURL, &out.DeletedAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	const q = `
UPDATE products
SET deleted_at = now(),
    updated_at = now()
WHERE id = $1::uuid AND deleted_at IS NULL;
`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
