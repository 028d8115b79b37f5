package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/FaisalHDT/kasir-app/internal/money"
	saleuc "github.com/FaisalHDT/kasir-app/internal/usecase/sale"
)

type SaleStoreAdapter struct {
	repo *SaleRepo
}

func NewSaleStoreAdapter(repo *SaleRepo) *SaleStoreAdapter {
	return &SaleStoreAdapter{repo: repo}
}

// Record commits the whole sale in one transaction: employee check, per-line
// price resolution against the live product rows, totals, header and item
// inserts. A failure anywhere rolls everything back.
func (a *SaleStoreAdapter) Record(ctx context.Context, in saleuc.RecordInput) (*saleuc.Sale, error) {
	tx, err := a.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := ensureEmployeeExists(ctx, tx, in.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, saleuc.ErrEmployeeMissing
		}
		return nil, err
	}

	type pricedLine struct {
		productID   string
		productName string
		qty         int
		unitPrice   int64
	}

	var (
		lines    []pricedLine
		subtotal int64
	)
	for _, it := range in.Items {
		name, unitPrice, err := getProductForSale(ctx, tx, it.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, saleuc.ErrProductMissing
			}
			return nil, err
		}

		subtotal += money.Line(it.Qty, unitPrice)
		lines = append(lines, pricedLine{productID: it.ProductID, productName: name, qty: it.Qty, unitPrice: unitPrice})
	}

	tax := money.Tax(subtotal)
	if in.Discount > subtotal+tax {
		return nil, saleuc.ErrDiscountTooLarge
	}
	total := money.Total(subtotal, tax, in.Discount)

	saleRow, err := insertSale(ctx, tx, in.EmployeeID, subtotal, tax, in.Discount, total, in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]saleuc.Item, 0, len(lines))
	for _, l := range lines {
		itemRow, err := insertSaleItem(ctx, tx, saleRow.ID, l.productID, l.qty, l.unitPrice)
		if err != nil {
			return nil, err
		}
		it := mapSaleItemRow(itemRow)
		it.ProductName = l.productName
		items = append(items, it)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	out := mapSaleRow(saleRow)
	out.Items = items
	return out, nil
}

func (a *SaleStoreAdapter) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]saleuc.Sale, error) {
	headers, err := a.repo.ListByEmployeeBetween(ctx, employeeID, from, to, false)
	if err != nil {
		return nil, err
	}
	itemRows, err := a.repo.ListItemsForSales(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	itemsBySale := make(map[string][]saleuc.Item, len(headers))
	for i := range itemRows {
		it := mapSaleItemRow(&itemRows[i])
		itemsBySale[it.SaleID] = append(itemsBySale[it.SaleID], it)
	}

	out := make([]saleuc.Sale, 0, len(headers))
	for i := range headers {
		s := mapSaleRow(&headers[i])
		s.Items = itemsBySale[s.ID]
		out = append(out, *s)
	}
	return out, nil
}

func mapSaleRow(r *SaleRow) *saleuc.Sale {
	return &saleuc.Sale{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Subtotal:      r.Subtotal,
		Tax:           r.Tax,
		Discount:      r.Discount,
		Total:         r.Total,
		PaymentMethod: r.PaymentMethod,
		CreatedAt:     r.CreatedAt,
	}
}

func mapSaleItemRow(r *SaleItemRow) saleuc.Item {
	return saleuc.Item{
		ID:          r.ID,
		SaleID:      r.SaleID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

// Compile-time check
var _ saleuc.Store = (*SaleStoreAdapter)(nil)
