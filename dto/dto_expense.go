package dto

type CreateExpenseReq struct {
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Description string  `json:"description"`
	ReceiptURL  string  `json:"receiptUrl"`
}

type MonthlySummaryResp struct {
	Month      string             `json:"month"` // YYYY-MM
	Total      float64            `json:"total"`
	Approved   float64            `json:"approved"`
	Reimbursed float64            `json:"reimbursed"`
	Pending    float64            `json:"pending"`
	ByCategory map[string]float64 `json:"byCategory"`
	Count      int                `json:"count"`
}
