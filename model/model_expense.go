package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Expense statuses.
const (
	ExpensePending    = "pending"
	ExpenseApproved   = "approved"
	ExpenseRejected   = "rejected"
	ExpenseReimbursed = "reimbursed"
	ExpenseCancelled  = "cancelled"
)

// Expense categories.
const (
	ExpenseTravel        = "travel"
	ExpenseFood          = "food"
	ExpenseAccommodation = "accommodation"
	ExpenseFuel          = "fuel"
	ExpenseOther         = "other"
)

func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseTravel, ExpenseFood, ExpenseAccommodation, ExpenseFuel, ExpenseOther:
		return true
	}
	return false
}

type Expense struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	CompanyID   bson.ObjectID `json:"companyId"   bson:"company_id"`
	UserID      bson.ObjectID `json:"userId"      bson:"user_id"`
	Category    string        `json:"category"    bson:"category"`
	Amount      float64       `json:"amount"      bson:"amount"`
	Date        string        `json:"date"        bson:"date"` // YYYY-MM-DD
	Description string        `json:"description" bson:"description,omitempty"`
	ReceiptURL  string        `json:"receiptUrl"  bson:"receipt_url,omitempty"`
	Status      string        `json:"status"      bson:"status"`
	DecidedBy   *bson.ObjectID `json:"decidedBy"  bson:"decided_by,omitempty"`
	DecidedAt   *time.Time     `json:"decidedAt"  bson:"decided_at,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"  bson:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt"  bson:"updated_at"`
}
