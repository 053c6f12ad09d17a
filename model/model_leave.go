package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Leave types.
const (
	LeaveAnnual = "annual"
	LeaveSick   = "sick"
	LeaveCasual = "casual"
	LeaveUnpaid = "unpaid"
)

func ValidLeaveType(t string) bool {
	return t == LeaveAnnual || t == LeaveSick || t == LeaveCasual || t == LeaveUnpaid
}

// Leave statuses.
const (
	LeavePending   = "pending"
	LeaveApproved  = "approved"
	LeaveRejected  = "rejected"
	LeaveCancelled = "cancelled"
)

// Leave durations.
const (
	DurationFull = "full"
	DurationHalf = "half"
)

type LeaveRequest struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	CompanyID bson.ObjectID `json:"companyId" bson:"company_id"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Type      string        `json:"type"      bson:"type"`
	StartDate string        `json:"startDate" bson:"start_date"` // YYYY-MM-DD
	EndDate   string        `json:"endDate"   bson:"end_date"`   // YYYY-MM-DD
	Duration  string        `json:"duration"  bson:"duration"`   // full or half
	Days      float64       `json:"days"      bson:"days"`
	Reason    string        `json:"reason"    bson:"reason,omitempty"`
	Status    string        `json:"status"    bson:"status"`
	// DecidedBy and DecidedAt are set on approve/reject.
	DecidedBy *bson.ObjectID `json:"decidedBy" bson:"decided_by,omitempty"`
	DecidedAt *time.Time     `json:"decidedAt" bson:"decided_at,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updated_at"`
}

// LeaveBalance keeps the per-type remaining days for one user.
type LeaveBalance struct {
	ID        bson.ObjectID      `json:"id"        bson:"_id,omitempty"`
	CompanyID bson.ObjectID      `json:"companyId" bson:"company_id"`
	UserID    bson.ObjectID      `json:"userId"    bson:"user_id"`
	Balances  map[string]float64 `json:"balances"  bson:"balances"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}
