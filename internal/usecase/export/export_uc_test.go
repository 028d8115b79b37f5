package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FaisalHDT/kasir-app/internal/usecase/report"
)

const targetEmployee = "5f2e1c3a-9b1d-4a7e-8c2f-1a2b3c4d5e6f"

type fakeStore struct {
	employee *Employee
	sales    []SaleRecord
	calls    int
}

func (f *fakeStore) GetEmployee(_ context.Context, id string) (*Employee, error) {
	f.calls++
	if f.employee == nil || f.employee.ID != id {
		return nil, ErrEmployeeMissing
	}
	return f.employee, nil
}

func (f *fakeStore) ListSales(_ context.Context, _ string, _, _ time.Time) ([]SaleRecord, error) {
	f.calls++
	return f.sales, nil
}

func admin() Actor {
	return Actor{EmployeeID: "00000000-0000-0000-0000-000000000001", Role: "admin"}
}

func TestProject_Rows(t *testing.T) {
	createdFirst := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	createdSecond := time.Date(2024, 3, 1, 14, 5, 0, 0, time.UTC)

	store := &fakeStore{
		employee: &Employee{ID: targetEmployee, Name: "Pegawai Satu"},
		sales: []SaleRecord{
			{
				ID:            "s1",
				CreatedAt:     createdFirst,
				PaymentMethod: "Cash",
				Total:         30450,
				Items: []SaleRecordItem{
					{ProductName: "Kopi Susu Gula Aren", Quantity: 2},
				},
			},
			{
				ID:            "s2",
				CreatedAt:     createdSecond,
				PaymentMethod: "QRIS",
				Total:         20300,
				Items: []SaleRecordItem{
					{ProductName: "Caffe Latte", Quantity: 1},
					{ProductName: "Teh Manis", Quantity: 3},
				},
			},
		},
	}
	uc := New(store)

	out, err := uc.Project(context.Background(), admin(), targetEmployee, "2024-03-01", "2024-03-01")
	require.NoError(t, err)
	require.Equal(t, "Pegawai Satu", out.EmployeeName)
	require.Len(t, out.Rows, 2)

	first := out.Rows[0]
	require.Equal(t, "s1", first.ID)
	require.Equal(t, "01/03/2024", first.Date)
	require.Equal(t, "09:30", first.Time)
	require.Equal(t, "2x Kopi Susu Gula Aren", first.ItemsSummary)
	require.Equal(t, "Cash", first.PaymentMethod)
	require.Equal(t, int64(30450), first.Total)

	second := out.Rows[1]
	require.Equal(t, "1x Caffe Latte, 3x Teh Manis", second.ItemsSummary)

	require.Equal(t, int64(30450), out.TotalCash)
	require.Equal(t, int64(20300), out.TotalQris)
	require.Equal(t, int64(50750), out.Total)
}

func TestProject_EmptyWindowIsNotAnError(t *testing.T) {
	store := &fakeStore{employee: &Employee{ID: targetEmployee, Name: "Pegawai Satu"}}
	uc := New(store)

	out, err := uc.Project(context.Background(), admin(), targetEmployee, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.NotNil(t, out.Rows)
	require.Empty(t, out.Rows)
	require.Zero(t, out.Total)
}

func TestProject_NonAdminDeniedBeforeAnyRead(t *testing.T) {
	store := &fakeStore{employee: &Employee{ID: targetEmployee, Name: "Pegawai Satu"}}
	uc := New(store)

	staff := Actor{EmployeeID: "00000000-0000-0000-0000-000000000002", Role: "staff"}
	_, err := uc.Project(context.Background(), staff, targetEmployee, "2024-03-01", "2024-03-01")
	require.ErrorIs(t, err, ErrAccessDenied)
	require.Zero(t, store.calls, "no sale data may be read on a denied request")
}

func TestProject_InvalidRangeSkipsStore(t *testing.T) {
	store := &fakeStore{employee: &Employee{ID: targetEmployee, Name: "Pegawai Satu"}}
	uc := New(store)

	_, err := uc.Project(context.Background(), admin(), targetEmployee, "2024-03-02", "2024-03-01")
	require.ErrorIs(t, err, report.ErrInvalidDateRange)
	require.Zero(t, store.calls)
}

func TestProject_UnknownEmployee(t *testing.T) {
	store := &fakeStore{}
	uc := New(store)

	_, err := uc.Project(context.Background(), admin(), targetEmployee, "2024-03-01", "2024-03-01")
	require.ErrorIs(t, err, ErrEmployeeMissing)
}

func TestProject_MalformedEmployeeID(t *testing.T) {
	uc := New(&fakeStore{})
	_, err := uc.Project(context.Background(), admin(), "nope", "2024-03-01", "2024-03-01")
	require.ErrorIs(t, err, ErrInvalidInput)
}
