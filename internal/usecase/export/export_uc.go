// Package export flattens committed sales into the row shape the spreadsheet
// collaborator consumes. It produces ordered flat records and the employee's
// window summary; file generation is not its concern.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FaisalHDT/kasir-app/internal/usecase/report"
	"github.com/FaisalHDT/kasir-app/internal/usecase/sale"
)

var (
	ErrAccessDenied    = errors.New("access denied")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmployeeMissing = errors.New("employee not found")
)

const (
	dateFormat = "02/01/2006"
	timeFormat = "15:04"
)

// Actor is the externally authenticated identity making the request. The
// role check is repeated here, not only at the route, because this read path
// exposes other employees' transaction detail.
type Actor struct {
	EmployeeID string
	Role       string
}

type Row struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ItemsSummary  string `json:"itemsSummary"`
	PaymentMethod string `json:"paymentMethod"`
	Total         int64  `json:"total"`
}

// Result carries the ordered rows plus the summary figures the export
// collaborator appends as footer lines. Zero sales in range is a valid
// Result with empty Rows, not an error.
type Result struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Rows         []Row  `json:"rows"`
	TotalCash    int64  `json:"totalCash"`
	TotalQris    int64  `json:"totalQris"`
	Total        int64  `json:"total"`
}

type Employee struct {
	ID   string
	Name string
}

type SaleRecord struct {
	ID            string
	CreatedAt     time.Time
	PaymentMethod string
	Total         int64
	Items         []SaleRecordItem
}

type SaleRecordItem struct {
	ProductName string
	Quantity    int
}

type Store interface {
	GetEmployee(ctx context.Context, id string) (*Employee, error)

	// ListSales returns the employee's sales with item lines and product
	// names, createdAt in [from, to), ascending.
	ListSales(ctx context.Context, employeeID string, from, to time.Time) ([]SaleRecord, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Project(ctx context.Context, actor Actor, employeeID, startDate, endDate string) (*Result, error) {
	// authorization first, before any store read
	if actor.Role != "admin" {
		return nil, ErrAccessDenied
	}

	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidInput
	}

	from, to, err := report.ParseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	emp, err := u.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	sales, err := u.store.ListSales(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	out := &Result{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Rows:         make([]Row, 0, len(sales)),
	}

	for _, s := range sales {
		created := s.CreatedAt.UTC()
		out.Rows = append(out.Rows, Row{
			ID:            s.ID,
			Date:          created.Format(dateFormat),
			Time:          created.Format(timeFormat),
			ItemsSummary:  summarizeItems(s.Items),
			PaymentMethod: s.PaymentMethod,
			Total:         s.Total,
		})

		out.Total += s.Total
		switch s.PaymentMethod {
		case sale.PaymentCash:
			out.TotalCash += s.Total
		case sale.PaymentQRIS:
			out.TotalQris += s.Total
		}
	}

	return out, nil
}

// "2x Kopi Susu Gula Aren, 1x Teh Manis"
func summarizeItems(items []SaleRecordItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.ProductName))
	}
	return strings.Join(parts, ", ")
}
