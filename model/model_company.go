package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Company struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	Name       string        `json:"name"       bson:"name"`
	Email      string        `json:"email"      bson:"email,omitempty"`
	Phone      string        `json:"phone"      bson:"phone,omitempty"`
	Address    string        `json:"address"    bson:"address,omitempty"`
	UserLimit  int           `json:"userLimit"  bson:"user_limit"`
	AdminCount int           `json:"adminCount" bson:"admin_count"`
	AgentCount int           `json:"agentCount" bson:"agent_count"`
	// WorkStart is the tenant-wide work day start in "15:04" form,
	// used for attendance lateness.
	WorkStart string    `json:"workStart" bson:"work_start,omitempty"`
	Active    bool      `json:"active"    bson:"active"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
