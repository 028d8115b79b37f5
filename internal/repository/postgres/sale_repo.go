package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleRow struct {
	ID            string
	EmployeeID    string
	Subtotal      int64
	Tax           int64
	Discount      int64
	Total         int64
	PaymentMethod string
	CreatedAt     time.Time
}

type SaleItemRow struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   int64
}

type SaleRepo struct {
	db *pgxpool.Pool
}

func NewSaleRepo(db *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{db: db}
}

func (r *SaleRepo) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.BeginTx(ctx, pgx.TxOptions{})
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func ensureEmployeeExists(ctx context.Context, q queryer, employeeID string) error {
	const sql = `SELECT 1 FROM employees WHERE id = $1::uuid`
	var one int
	if err := q.QueryRow(ctx, sql, employeeID).Scan(&one); err != nil {
		return err
	}
	return nil
}

// getProductForSale resolves the name and live unit price of a
// non-deleted product. Pricing happens here, inside the commit
// transaction, never from the caller's payload.
func getProductForSale(ctx context.Context, q queryer, productID string) (string, int64, error) {
	const sql = `
SELECT name, price
FROM products
WHERE id = $1::uuid AND deleted_at IS NULL;
`
	var (
		name  string
		price int64
	)
	if err := q.QueryRow(ctx, sql, productID).Scan(&name, &price); err != nil {
		return "", 0, err
	}
	return name, price, nil
}

func insertSale(ctx context.Context, tx pgx.Tx, employeeID string, subtotal, tax, discount, total int64, paymentMethod string) (*SaleRow, error) {
	const q = `
INSERT INTO sales (employee_id, subtotal, tax, discount, total, payment_method)
VALUES ($1::uuid, $2, $3, $4, $5, $6)
RETURNING id::text, employee_id::text, subtotal, tax, discount, total, payment_method, created_at;
`
	row := tx.QueryRow(ctx, q, employeeID, subtotal, tax, discount, total, paymentMethod)

	var out SaleRow
	if err := row.Scan(&out.ID, &out.EmployeeID, &out.Subtotal, &out.Tax, &out.Discount, &out.Total, &out.PaymentMethod, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func insertSaleItem(ctx context.Context, tx pgx.Tx, saleID, productID string, qty int, unitPrice int64) (*SaleItemRow, error) {
	const q = `
INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
VALUES ($1::uuid, $2::uuid, $3, $4)
RETURNING id::text, sale_id::text, product_id::text, quantity, unit_price;
`
	row := tx.QueryRow(ctx, q, saleID, productID, qty, unitPrice)

	var out SaleItemRow
	if err := row.Scan(&out.ID, &out.SaleID, &out.ProductID, &out.Quantity, &out.UnitPrice); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByEmployeeBetween returns sale headers for one employee with
// created_at in [from, to), oldest first when asc.
func (r *SaleRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time, asc bool) ([]SaleRow, error) {
	const base = `
SELECT id::text, employee_id::text, subtotal, tax, discount, total, payment_method, created_at
FROM sales
WHERE employee_id = $1::uuid
  AND created_at >= $2
  AND created_at < $3
ORDER BY created_at `
	q := base + "DESC;"
	if asc {
		q = base + "ASC;"
	}

	rows, err := r.db.Query(ctx, q, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SaleRow
	for rows.Next() {
		var s SaleRow
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Subtotal, &s.Tax, &s.Discount, &s.Total, &s.PaymentMethod, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListItemsForSales returns the item lines, with product names, for every
// sale an employee committed inside [from, to).
func (r *SaleRepo) ListItemsForSales(ctx context.Context, employeeID string, from, to time.Time) ([]SaleItemRow, error) {
	const q = `
SELECT si.id::text, si.sale_id::text, si.product_id::text, p.name, si.quantity, si.unit_price
FROM sale_items si
JOIN sales s ON s.id = si.sale_id
JOIN products p ON p.id = si.product_id
WHERE s.employee_id = $1::uuid
  AND s.created_at >= $2
  AND s.created_at < $3
ORDER BY s.created_at, si.sale_id, p.name;
`
	rows, err := r.db.Query(ctx, q, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SaleItemRow
	for rows.Next() {
		var it SaleItemRow
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
