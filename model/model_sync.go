package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Offline action kinds accepted by the sync endpoint.
const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
	ActionVisit    = "visit"
	ActionNote     = "note"
)

// SyncAction records an already-applied offline action so a replayed
// queue cannot apply the same mutation twice. ActionID is the
// client-generated UUID.
type SyncAction struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	ActionID  string        `json:"actionId"  bson:"action_id"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Kind      string        `json:"kind"      bson:"kind"`
	AppliedAt time.Time     `json:"appliedAt" bson:"applied_at"`
}
