package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DailyReport is the persisted per-user per-day aggregation. Generation is
// idempotent: once stored, the same document is returned for the day.
type DailyReport struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	CompanyID bson.ObjectID `json:"companyId" bson:"company_id"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Date      string        `json:"date"      bson:"date"` // YYYY-MM-DD

	CheckedIn       bool    `json:"checkedIn"       bson:"checked_in"`
	LateMinutes     int     `json:"lateMinutes"     bson:"late_minutes"`
	WorkedMinutes   int     `json:"workedMinutes"   bson:"worked_minutes"`
	TargetsAssigned int     `json:"targetsAssigned" bson:"targets_assigned"`
	TargetsVisited  int     `json:"targetsVisited"  bson:"targets_visited"`
	Interactions    int     `json:"interactions"    bson:"interactions"`
	ExpenseTotal    float64 `json:"expenseTotal"    bson:"expense_total"`

	// CompletionRate is visited/assigned in [0,1]; 0 when nothing assigned.
	CompletionRate float64 `json:"completionRate" bson:"completion_rate"`
	// ProductivityScore is a weighted combination of attendance,
	// completion and interaction activity in [0,100].
	ProductivityScore float64 `json:"productivityScore" bson:"productivity_score"`

	GeneratedAt time.Time `json:"generatedAt" bson:"generated_at"`
}
