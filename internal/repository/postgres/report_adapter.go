package postgres

import (
	"context"
	"time"

	reportuc "github.com/FaisalHDT/kasir-app/internal/usecase/report"
)

type ReportStoreAdapter struct {
	repo *ReportRepo
}

func NewReportStoreAdapter(repo *ReportRepo) *ReportStoreAdapter {
	return &ReportStoreAdapter{repo: repo}
}

func (a *ReportStoreAdapter) FetchWindow(ctx context.Context, from, to time.Time) (*reportuc.WindowData, error) {
	tx, err := a.repo.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	staff, err := listStaff(ctx, tx)
	if err != nil {
		return nil, err
	}
	totals, err := employeeTotalsBetween(ctx, tx, from, to)
	if err != nil {
		return nil, err
	}
	productQty, err := productQuantitiesBetween(ctx, tx, from, to)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &reportuc.WindowData{
		Staff:      staff,
		Totals:     totals,
		ProductQty: productQty,
	}, nil
}

func (a *ReportStoreAdapter) FetchAllTime(ctx context.Context) (*reportuc.AllTimeData, error) {
	tx, err := a.repo.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	revenue, err := totalRevenueAllTime(ctx, tx)
	if err != nil {
		return nil, err
	}
	staff, err := staffCount(ctx, tx)
	if err != nil {
		return nil, err
	}
	tops, err := topProductsAllTime(ctx, tx, 1)
	if err != nil {
		return nil, err
	}
	employees, err := employeeTotalsAllTime(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &reportuc.AllTimeData{
		TotalRevenue: revenue,
		StaffCount:   staff,
		TopProducts:  tops,
		Employees:    employees,
	}, nil
}

// Compile-time check
var _ reportuc.Store = (*ReportStoreAdapter)(nil)
