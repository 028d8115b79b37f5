package report

type ProductSold struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type EmployeeReport struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	TotalSales       int64         `json:"totalSales"`
	TransactionCount int           `json:"transactionCount"`
	TotalCash        int64         `json:"totalCash"`
	TotalQris        int64         `json:"totalQris"`
	ProductsSold     []ProductSold `json:"productsSold"`
}

type Summary struct {
	GrandTotalSales int64 `json:"grandTotalSales"`
	GrandTotalCash  int64 `json:"grandTotalCash"`
	GrandTotalQris  int64 `json:"grandTotalQris"`
}

type Report struct {
	Employees []EmployeeReport `json:"reportData"`
	Summary   Summary          `json:"summary"`
}

type DashboardEmployee struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TotalSales       int64  `json:"totalSales"`
	TransactionCount int    `json:"transactionCount"`
}

type Dashboard struct {
	TotalRevenue int64               `json:"totalRevenue"`
	StaffCount   int                 `json:"staffCount"`
	BestSeller   *ProductSold        `json:"bestSeller,omitempty"`
	Employees    []DashboardEmployee `json:"employees"`
}

// Rows handed back by the store, grouped in SQL.

type StaffRow struct {
	ID   string
	Name string
}

type EmployeeTotalsRow struct {
	EmployeeID       string
	TransactionCount int
	TotalSales       int64
	TotalCash        int64
	TotalQris        int64
}

type ProductQtyRow struct {
	EmployeeID  string
	ProductName string
	Quantity    int
}

// WindowData is everything a date-windowed report needs, read from a single
// consistent snapshot so the summary cannot skew against the rows it is
// derived from.
type WindowData struct {
	Staff      []StaffRow
	Totals     []EmployeeTotalsRow
	ProductQty []ProductQtyRow
}

type AllTimeRow struct {
	EmployeeID       string
	Name             string
	TotalSales       int64
	TransactionCount int
}

type AllTimeData struct {
	TotalRevenue int64
	StaffCount   int
	TopProducts  []ProductSold
	Employees    []AllTimeRow
}
