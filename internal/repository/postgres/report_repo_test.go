package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FaisalHDT/kasir-app/internal/repository/postgres/testutil"
	reportuc "github.com/FaisalHDT/kasir-app/internal/usecase/report"
)

func TestReport_EmployeeReportEndToEnd(t *testing.T) {
	pool := testutil.MustOpenDB(t)
	testutil.TruncateAll(t, pool)

	budi := testutil.MustInsertEmployee(t, pool, "Budi", "budi@toko.com", "staff")
	sari := testutil.MustInsertEmployee(t, pool, "Sari", "sari@toko.com", "staff")
	testutil.MustInsertEmployee(t, pool, "Admin Utama", "admin@toko.com", "admin")

	kopi := testutil.MustInsertProduct(t, pool, "Kopi Susu Gula Aren", 18000, "Kopi")
	teh := testutil.MustInsertProduct(t, pool, "Teh Manis", 5000, "Minuman Lain")

	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// Budi: 2x kopi by Cash, 1x teh by QRIS
	s1 := testutil.MustInsertSale(t, pool, budi, 36000, 540, 0, 36540, "Cash", day)
	testutil.MustInsertSaleItem(t, pool, s1, kopi, 2, 18000)
	s2 := testutil.MustInsertSale(t, pool, budi, 5000, 75, 0, 5075, "QRIS", day.Add(time.Hour))
	testutil.MustInsertSaleItem(t, pool, s2, teh, 1, 5000)

	// Sari: outside the window
	s3 := testutil.MustInsertSale(t, pool, sari, 18000, 270, 0, 18270, "Cash", day.AddDate(0, 0, 5))
	testutil.MustInsertSaleItem(t, pool, s3, kopi, 1, 18000)

	uc := reportuc.New(NewReportStoreAdapter(NewReportRepo(pool)))

	out, err := uc.EmployeeReport(context.Background(), "2024-03-01", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, out.Employees, 2, "every staff employee appears")

	first := out.Employees[0]
	require.Equal(t, "Budi", first.Name)
	require.Equal(t, int64(41615), first.TotalSales)
	require.Equal(t, 2, first.TransactionCount)
	require.Equal(t, int64(36540), first.TotalCash)
	require.Equal(t, int64(5075), first.TotalQris)
	require.Equal(t, []reportuc.ProductSold{
		{Name: "Kopi Susu Gula Aren", Quantity: 2},
		{Name: "Teh Manis", Quantity: 1},
	}, first.ProductsSold)

	second := out.Employees[1]
	require.Equal(t, "Sari", second.Name)
	require.Zero(t, second.TotalSales)
	require.Empty(t, second.ProductsSold)

	require.Equal(t, first.TotalSales+second.TotalSales, out.Summary.GrandTotalSales)
	require.Equal(t, first.TotalCash, out.Summary.GrandTotalCash)
	require.Equal(t, first.TotalQris, out.Summary.GrandTotalQris)
}

func TestReport_DeletedProductNameStillResolves(t *testing.T) {
	pool := testutil.MustOpenDB(t)
	testutil.TruncateAll(t, pool)

	budi := testutil.MustInsertEmployee(t, pool, "Budi", "budi@toko.com", "staff")
	kopi := testutil.MustInsertProduct(t, pool, "Kopi Susu Gula Aren", 18000, "Kopi")

	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s1 := testutil.MustInsertSale(t, pool, budi, 18000, 270, 0, 18270, "Cash", day)
	testutil.MustInsertSaleItem(t, pool, s1, kopi, 1, 18000)

	_, err := pool.Exec(context.Background(),
		`UPDATE products SET deleted_at = now() WHERE id = $1::uuid`, kopi)
	require.NoError(t, err)

	uc := reportuc.New(NewReportStoreAdapter(NewReportRepo(pool)))
	out, err := uc.EmployeeReport(context.Background(), "2024-03-01", "2024-03-01")
	require.NoError(t, err)
	require.Equal(t, []reportuc.ProductSold{
		{Name: "Kopi Susu Gula Aren", Quantity: 1},
	}, out.Employees[0].ProductsSold)
}

func TestReport_Dashboard(t *testing.T) {
	pool := testutil.MustOpenDB(t)
	testutil.TruncateAll(t, pool)

	budi := testutil.MustInsertEmployee(t, pool, "Budi", "budi@toko.com", "staff")
	sari := testutil.MustInsertEmployee(t, pool, "Sari", "sari@toko.com", "staff")
	testutil.MustInsertEmployee(t, pool, "Admin Utama", "admin@toko.com", "admin")

	kopi := testutil.MustInsertProduct(t, pool, "Kopi Susu Gula Aren", 18000, "Kopi")
	teh := testutil.MustInsertProduct(t, pool, "Teh Manis", 5000, "Minuman Lain")

	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s1 := testutil.MustInsertSale(t, pool, budi, 36000, 540, 0, 36540, "Cash", day)
	testutil.MustInsertSaleItem(t, pool, s1, kopi, 2, 18000)
	s2 := testutil.MustInsertSale(t, pool, sari, 25000, 375, 0, 25375, "QRIS", day.Add(time.Hour))
	testutil.MustInsertSaleItem(t, pool, s2, teh, 5, 5000)

	uc := reportuc.New(NewReportStoreAdapter(NewReportRepo(pool)))
	out, err := uc.DashboardSummary(context.Background())
	require.NoError(t, err)

	require.Equal(t, int64(36540+25375), out.TotalRevenue)
	require.Equal(t, 2, out.StaffCount)
	require.NotNil(t, out.BestSeller)
	require.Equal(t, "Teh Manis", out.BestSeller.Name)
	require.Equal(t, 5, out.BestSeller.Quantity)

	require.Equal(t, "Budi", out.Employees[0].Name)
	require.Equal(t, int64(36540), out.Employees[0].TotalSales)
	require.Equal(t, 1, out.Employees[0].TransactionCount)
}
