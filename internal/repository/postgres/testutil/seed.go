package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func MustInsertEmployee(t *testing.T, db *pgxpool.Pool, name, email, role string) string {
	t.Helper()

	uniq := fmt.Sprintf("%d", time.Now().UnixNano())
	emailUniq := fmt.Sprintf("%s.%s", uniq, email)

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO employees (name, email, password_hash, role)
		VALUES ($1, $2, 'x', $3)
		RETURNING id::text
	`, name, emailUniq, role).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertProduct(t *testing.T, db *pgxpool.Pool, name string, price int64, category string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (name, price, category)
		VALUES ($1, $2, $3)
		RETURNING id::text
	`, name, price, category).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

// MustInsertSale inserts a committed sale header directly, with an explicit
// created_at, for window-boundary tests.
func MustInsertSale(t *testing.T, db *pgxpool.Pool, employeeID string, subtotal, tax, discount, total int64, paymentMethod string, createdAt time.Time) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO sales (employee_id, subtotal, tax, discount, total, payment_method, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
		RETURNING id::text
	`, employeeID, subtotal, tax, discount, total, paymentMethod, createdAt).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertSaleItem(t *testing.T, db *pgxpool.Pool, saleID, productID string, quantity int, unitPrice int64) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, saleID, productID, quantity, unitPrice).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}
