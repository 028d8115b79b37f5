package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	reportuc "github.com/FaisalHDT/kasir-app/internal/usecase/report"
)

type ReportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepo(db *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{db: db}
}

// BeginSnapshot opens the read-only repeatable-read transaction the report
// queries share, so per-employee rows and the figures derived from them come
// from a single snapshot.
func (r *ReportRepo) BeginSnapshot(ctx context.Context) (pgx.Tx, error) {
	return r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
}

type rowQueryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func listStaff(ctx context.Context, q rowQueryer) ([]reportuc.StaffRow, error) {
	const sql = `
SELECT id::text, name
FROM employees
WHERE role = 'staff'
ORDER BY created_at, id;
`
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reportuc.StaffRow
	for rows.Next() {
		var s reportuc.StaffRow
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func employeeTotalsBetween(ctx context.Context, q rowQueryer, from, to time.Time) ([]reportuc.EmployeeTotalsRow, error) {
	const sql = `
SELECT
  employee_id::text,
  COUNT(*),
  COALESCE(SUM(total), 0),
  COALESCE(SUM(total) FILTER (WHERE payment_method = 'Cash'), 0),
  COALESCE(SUM(total) FILTER (WHERE payment_method = 'QRIS'), 0)
FROM sales
WHERE created_at >= $1 AND created_at < $2
GROUP BY employee_id;
`
	rows, err := q.Query(ctx, sql, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reportuc.EmployeeTotalsRow
	for rows.Next() {
		var t reportuc.EmployeeTotalsRow
		if err := rows.Scan(&t.EmployeeID, &t.TransactionCount, &t.TotalSales, &t.TotalCash, &t.TotalQris); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func productQuantitiesBetween(ctx context.Context, q rowQueryer, from, to time.Time) ([]reportuc.ProductQtyRow, error) {
	const sql = `
SELECT
  s.employee_id::text,
  p.name,
  SUM(si.quantity)::int
FROM sale_items si
JOIN sales s ON s.id = si.sale_id
JOIN products p ON p.id = si.product_id
WHERE s.created_at >= $1 AND s.created_at < $2
GROUP BY s.employee_id, p.name
ORDER BY s.employee_id, SUM(si.quantity) DESC, p.name;
`
	rows, err := q.Query(ctx, sql, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reportuc.ProductQtyRow
	for rows.Next() {
		var p reportuc.ProductQtyRow
		if err := rows.Scan(&p.EmployeeID, &p.ProductName, &p.Quantity); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func totalRevenueAllTime(ctx context.Context, q rowQueryer) (int64, error) {
	const sql = `SELECT COALESCE(SUM(total), 0) FROM sales;`
	var total int64
	if err := q.QueryRow(ctx, sql).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func staffCount(ctx context.Context, q rowQueryer) (int, error) {
	const sql = `SELECT COUNT(*) FROM employees WHERE role = 'staff';`
	var n int
	if err := q.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func topProductsAllTime(ctx context.Context, q rowQueryer, limit int) ([]reportuc.ProductSold, error) {
	const sql = `
SELECT p.name, SUM(si.quantity)::int
FROM sale_items si
JOIN products p ON p.id = si.product_id
GROUP BY p.name
ORDER BY SUM(si.quantity) DESC, p.name
LIMIT $1;
`
	rows, err := q.Query(ctx, sql, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reportuc.ProductSold
	for rows.Next() {
		var p reportuc.ProductSold
		if err := rows.Scan(&p.Name, &p.Quantity); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func employeeTotalsAllTime(ctx context.Context, q rowQueryer) ([]reportuc.AllTimeRow, error) {
	const sql = `
SELECT
  e.id::text,
  e.name,
  COALESCE(SUM(s.total), 0),
  COUNT(s.id)::int
FROM employees e
LEFT JOIN sales s ON s.employee_id = e.id
WHERE e.role = 'staff'
GROUP BY e.id, e.name
ORDER BY e.created_at, e.id;
`
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reportuc.AllTimeRow
	for rows.Next() {
		var r reportuc.AllTimeRow
		if err := rows.Scan(&r.EmployeeID, &r.Name, &r.TotalSales, &r.TransactionCount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
