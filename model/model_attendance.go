package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CheckPayload struct {
	Time      time.Time `json:"time"      bson:"time"`
	Location  *GeoPoint `json:"location"  bson:"location,omitempty"`
	SelfieURL string    `json:"selfieUrl" bson:"selfie_url,omitempty"`
}

// AttendanceRecord holds one work day per user; the user_id+date unique
// index enforces one record per day.
type AttendanceRecord struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	CompanyID bson.ObjectID `json:"companyId" bson:"company_id"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Date      string        `json:"date"      bson:"date"` // YYYY-MM-DD
	CheckIn   *CheckPayload `json:"checkIn"   bson:"check_in,omitempty"`
	CheckOut  *CheckPayload `json:"checkOut"  bson:"check_out,omitempty"`
	// LateMinutes is relative to the company work start; zero when on time.
	LateMinutes     int       `json:"lateMinutes"     bson:"late_minutes"`
	DurationMinutes int       `json:"durationMinutes" bson:"duration_minutes"`
	CreatedAt       time.Time `json:"createdAt"       bson:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt"       bson:"updated_at"`
}
