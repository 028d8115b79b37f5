package sale

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmployeeMissing  = errors.New("employee not found")
	ErrProductMissing   = errors.New("product not found")
	ErrDiscountTooLarge = errors.New("discount exceeds payable amount")
)

const (
	PaymentCash = "Cash"
	PaymentQRIS = "QRIS"
)

type Store interface {
	// Record persists the sale header and all items in one storage
	// transaction. Unit prices are resolved from the live product rows
	// inside that transaction; caller-supplied prices are never accepted.
	Record(ctx context.Context, in RecordInput) (*Sale, error)

	// ListByEmployeeBetween returns the employee's sales with items and
	// product names, createdAt in [from, to), newest first.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Sale, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Record(ctx context.Context, in RecordInput) (*Sale, error) {
	if _, err := uuid.Parse(in.EmployeeID); err != nil {
		return nil, ErrInvalidInput
	}
	if !isValidPaymentMethod(in.PaymentMethod) {
		return nil, ErrInvalidInput
	}
	if in.Discount < 0 || len(in.Items) == 0 {
		return nil, ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Qty < 1 {
			return nil, ErrInvalidInput
		}
		if _, err := uuid.Parse(it.ProductID); err != nil {
			return nil, ErrInvalidInput
		}
	}

	return u.store.Record(ctx, in)
}

// History returns the employee's sales for the current UTC day plus the
// summed total of those sales.
func (u *Usecase) History(ctx context.Context, employeeID string) (*TodayHistory, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	sales, err := u.store.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, s := range sales {
		total += s.Total
	}

	return &TodayHistory{Sales: sales, DailyTotal: total}, nil
}

func isValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentQRIS:
		return true
	default:
		return false
	}
}
