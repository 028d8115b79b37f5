package sale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FaisalHDT/kasir-app/internal/money"
)

const (
	employeeID = "5f2e1c3a-9b1d-4a7e-8c2f-1a2b3c4d5e6f"
	productA   = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
	productB   = "1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e"
)

// fakeStore prices every product at a fixed amount and commits sales in
// memory, mirroring what the postgres adapter does in one transaction.
type fakeStore struct {
	prices      map[string]int64
	recorded    []Sale
	listed      []Sale
	recordCalls int
	lastFrom    time.Time
	lastTo      time.Time
}

func (f *fakeStore) Record(_ context.Context, in RecordInput) (*Sale, error) {
	f.recordCalls++

	var subtotal int64
	items := make([]Item, 0, len(in.Items))
	for _, it := range in.Items {
		price, ok := f.prices[it.ProductID]
		if !ok {
			return nil, ErrProductMissing
		}
		subtotal += money.Line(it.Qty, price)
		items = append(items, Item{ProductID: it.ProductID, Quantity: it.Qty, UnitPrice: price})
	}

	tax := money.Tax(subtotal)
	if in.Discount > subtotal+tax {
		return nil, ErrDiscountTooLarge
	}

	s := Sale{
		ID:            "sale-1",
		EmployeeID:    in.EmployeeID,
		Subtotal:      subtotal,
		Tax:           tax,
		Discount:      in.Discount,
		Total:         money.Total(subtotal, tax, in.Discount),
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
		Items:         items,
	}
	f.recorded = append(f.recorded, s)
	return &s, nil
}

func (f *fakeStore) ListByEmployeeBetween(_ context.Context, _ string, from, to time.Time) ([]Sale, error) {
	f.lastFrom, f.lastTo = from, to
	return f.listed, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{prices: map[string]int64{
		productA: 15000,
		productB: 20000,
	}}
}

func TestRecord_TotalsSatisfyFormulas(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	out, err := uc.Record(context.Background(), RecordInput{
		EmployeeID:    employeeID,
		PaymentMethod: PaymentCash,
		Items: []RecordItemIn{
			{ProductID: productA, Qty: 2},
			{ProductID: productB, Qty: 1},
		},
	})
	require.NoError(t, err)

	require.Equal(t, int64(50000), out.Subtotal)
	require.Equal(t, money.Tax(50000), out.Tax)
	require.Equal(t, out.Subtotal+out.Tax-out.Discount, out.Total)
	require.Equal(t, PaymentCash, out.PaymentMethod)
	require.Len(t, out.Items, 2)
	// captured price, not whatever the caller might have sent
	require.Equal(t, int64(15000), out.Items[0].UnitPrice)
}

func TestRecord_RejectsBeforeAnyWrite(t *testing.T) {
	cases := []struct {
		name string
		in   RecordInput
	}{
		{"empty items", RecordInput{EmployeeID: employeeID, PaymentMethod: PaymentCash}},
		{"zero quantity", RecordInput{EmployeeID: employeeID, PaymentMethod: PaymentCash,
			Items: []RecordItemIn{{ProductID: productA, Qty: 0}}}},
		{"negative discount", RecordInput{EmployeeID: employeeID, PaymentMethod: PaymentCash, Discount: -1,
			Items: []RecordItemIn{{ProductID: productA, Qty: 1}}}},
		{"unknown payment method", RecordInput{EmployeeID: employeeID, PaymentMethod: "Transfer",
			Items: []RecordItemIn{{ProductID: productA, Qty: 1}}}},
		{"malformed employee id", RecordInput{EmployeeID: "nope", PaymentMethod: PaymentCash,
			Items: []RecordItemIn{{ProductID: productA, Qty: 1}}}},
		{"malformed product id", RecordInput{EmployeeID: employeeID, PaymentMethod: PaymentCash,
			Items: []RecordItemIn{{ProductID: "nope", Qty: 1}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			uc := New(store)

			_, err := uc.Record(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Zero(t, store.recordCalls, "store must not be touched on invalid input")
		})
	}
}

func TestRecord_DiscountBounds(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	// subtotal 15000, tax 225; discount equal to subtotal+tax is allowed
	out, err := uc.Record(context.Background(), RecordInput{
		EmployeeID:    employeeID,
		PaymentMethod: PaymentQRIS,
		Discount:      15225,
		Items:         []RecordItemIn{{ProductID: productA, Qty: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), out.Total)

	// one rupiah more would drive the total negative
	_, err = uc.Record(context.Background(), RecordInput{
		EmployeeID:    employeeID,
		PaymentMethod: PaymentQRIS,
		Discount:      15226,
		Items:         []RecordItemIn{{ProductID: productA, Qty: 1}},
	})
	require.ErrorIs(t, err, ErrDiscountTooLarge)
}

func TestRecord_UnknownProduct(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	_, err := uc.Record(context.Background(), RecordInput{
		EmployeeID:    employeeID,
		PaymentMethod: PaymentCash,
		Items:         []RecordItemIn{{ProductID: "2c3d4e5f-6a7b-4c8d-9e0f-1a2b3c4d5e6f", Qty: 1}},
	})
	require.ErrorIs(t, err, ErrProductMissing)
}

func TestHistory_SumsTodayWindow(t *testing.T) {
	store := newFakeStore()
	store.listed = []Sale{{Total: 35525}, {Total: 20300}}
	uc := New(store)

	out, err := uc.History(context.Background(), employeeID)
	require.NoError(t, err)
	require.Equal(t, int64(55825), out.DailyTotal)
	require.Len(t, out.Sales, 2)

	// window is the current UTC calendar day, half open
	require.Equal(t, time.UTC, store.lastFrom.Location())
	require.Equal(t, 0, store.lastFrom.Hour())
	require.Equal(t, store.lastFrom.AddDate(0, 0, 1), store.lastTo)
}

func TestHistory_InvalidEmployeeID(t *testing.T) {
	uc := New(newFakeStore())
	_, err := uc.History(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidInput)
}
