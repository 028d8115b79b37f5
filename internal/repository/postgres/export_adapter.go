package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	exportuc "github.com/FaisalHDT/kasir-app/internal/usecase/export"
)

type ExportStoreAdapter struct {
	employees *EmployeeRepo
	sales     *SaleRepo
}

func NewExportStoreAdapter(employees *EmployeeRepo, sales *SaleRepo) *ExportStoreAdapter {
	return &ExportStoreAdapter{employees: employees, sales: sales}
}

func (a *ExportStoreAdapter) GetEmployee(ctx context.Context, id string) (*exportuc.Employee, error) {
	e, err := a.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, exportuc.ErrEmployeeMissing
		}
		return nil, err
	}
	return &exportuc.Employee{ID: e.ID, Name: e.Name}, nil
}

func (a *ExportStoreAdapter) ListSales(ctx context.Context, employeeID string, from, to time.Time) ([]exportuc.SaleRecord, error) {
	headers, err := a.sales.ListByEmployeeBetween(ctx, employeeID, from, to, true)
	if err != nil {
		return nil, err
	}
	itemRows, err := a.sales.ListItemsForSales(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	itemsBySale := make(map[string][]exportuc.SaleRecordItem, len(headers))
	for _, it := range itemRows {
		itemsBySale[it.SaleID] = append(itemsBySale[it.SaleID], exportuc.SaleRecordItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
		})
	}

	out := make([]exportuc.SaleRecord, 0, len(headers))
	for _, h := range headers {
		out = append(out, exportuc.SaleRecord{
			ID:            h.ID,
			CreatedAt:     h.CreatedAt,
			PaymentMethod: h.PaymentMethod,
			Total:         h.Total,
			Items:         itemsBySale[h.ID],
		})
	}
	return out, nil
}

// Compile-time check
var _ exportuc.Store = (*ExportStoreAdapter)(nil)
