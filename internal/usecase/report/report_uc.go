package report

import (
	"context"
	"sort"
	"time"
)

type Store interface {
	// FetchWindow reads every grouped figure for the window [from, to)
	// from one consistent snapshot.
	FetchWindow(ctx context.Context, from, to time.Time) (*WindowData, error)

	// FetchAllTime reads the all-time dashboard figures.
	FetchAllTime(ctx context.Context) (*AllTimeData, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// EmployeeReport aggregates the window [startDate, endDate] (inclusive
// calendar dates) per staff employee. Every staff employee appears, zeroed
// when they sold nothing in range. Grand totals are the sums of the
// per-employee figures, from the same snapshot.
func (u *Usecase) EmployeeReport(ctx context.Context, startDate, endDate string) (*Report, error) {
	from, to, err := ParseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	data, err := u.store.FetchWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	totalsByEmployee := make(map[string]EmployeeTotalsRow, len(data.Totals))
	for _, t := range data.Totals {
		totalsByEmployee[t.EmployeeID] = t
	}

	productsByEmployee := make(map[string][]ProductSold)
	for _, p := range data.ProductQty {
		productsByEmployee[p.EmployeeID] = append(productsByEmployee[p.EmployeeID], ProductSold{
			Name:     p.ProductName,
			Quantity: p.Quantity,
		})
	}

	out := &Report{Employees: make([]EmployeeReport, 0, len(data.Staff))}
	for _, st := range data.Staff {
		r := EmployeeReport{
			ID:           st.ID,
			Name:         st.Name,
			ProductsSold: []ProductSold{},
		}
		if t, ok := totalsByEmployee[st.ID]; ok {
			r.TotalSales = t.TotalSales
			r.TransactionCount = t.TransactionCount
			r.TotalCash = t.TotalCash
			r.TotalQris = t.TotalQris
		}
		if ps := productsByEmployee[st.ID]; len(ps) > 0 {
			sortProductsSold(ps)
			r.ProductsSold = ps
		}

		out.Summary.GrandTotalSales += r.TotalSales
		out.Summary.GrandTotalCash += r.TotalCash
		out.Summary.GrandTotalQris += r.TotalQris

		out.Employees = append(out.Employees, r)
	}

	sort.SliceStable(out.Employees, func(i, j int) bool {
		return out.Employees[i].TotalSales > out.Employees[j].TotalSales
	})

	return out, nil
}

// DashboardSummary aggregates all sales without a date filter.
func (u *Usecase) DashboardSummary(ctx context.Context) (*Dashboard, error) {
	data, err := u.store.FetchAllTime(ctx)
	if err != nil {
		return nil, err
	}

	out := &Dashboard{
		TotalRevenue: data.TotalRevenue,
		StaffCount:   data.StaffCount,
		Employees:    make([]DashboardEmployee, 0, len(data.Employees)),
	}

	if len(data.TopProducts) > 0 {
		tops := make([]ProductSold, len(data.TopProducts))
		copy(tops, data.TopProducts)
		sortProductsSold(tops)
		best := tops[0]
		out.BestSeller = &best
	}

	for _, e := range data.Employees {
		out.Employees = append(out.Employees, DashboardEmployee{
			ID:               e.EmployeeID,
			Name:             e.Name,
			TotalSales:       e.TotalSales,
			TransactionCount: e.TransactionCount,
		})
	}
	sort.SliceStable(out.Employees, func(i, j int) bool {
		return out.Employees[i].TotalSales > out.Employees[j].TotalSales
	})

	return out, nil
}

// quantity desc, name asc on ties
func sortProductsSold(ps []ProductSold) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].Quantity != ps[j].Quantity {
			return ps[i].Quantity > ps[j].Quantity
		}
		return ps[i].Name < ps[j].Name
	})
}
