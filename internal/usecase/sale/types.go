package sale

import "time"

type Sale struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	Subtotal      int64     `json:"subtotal"`
	Tax           int64     `json:"tax"`
	Discount      int64     `json:"discount"`
	Total         int64     `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
	Items         []Item    `json:"items,omitempty"`
}

type Item struct {
	ID          string `json:"id"`
	SaleID      string `json:"saleId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"qty"`
	UnitPrice   int64  `json:"unitPrice"`
}

type RecordInput struct {
	EmployeeID    string         `json:"-"`
	PaymentMethod string         `json:"paymentMethod"`
	Discount      int64          `json:"discount"`
	Items         []RecordItemIn `json:"items"`
}

type RecordItemIn struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type TodayHistory struct {
	Sales      []Sale `json:"salesHistory"`
	DailyTotal int64  `json:"dailyTotal"`
}
