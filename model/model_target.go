package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Target statuses.
const (
	TargetPending   = "pending"
	TargetVisited   = "visited"
	TargetConverted = "converted"
	TargetSkipped   = "skipped"
)

// Visit outcomes.
const (
	OutcomeInterested    = "interested"
	OutcomeNotInterested = "not_interested"
	OutcomeConverted     = "converted"
	OutcomeFollowUp      = "follow_up"
	OutcomeNoShow        = "no_show"
)

func ValidOutcome(o string) bool {
	switch o {
	case OutcomeInterested, OutcomeNotInterested, OutcomeConverted, OutcomeFollowUp, OutcomeNoShow:
		return true
	}
	return false
}

// Target is a geolocation-tagged prospect location assigned to an agent.
type Target struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	CompanyID   bson.ObjectID `json:"companyId"   bson:"company_id"`
	AgentID     bson.ObjectID `json:"agentId"     bson:"agent_id"`
	Name        string        `json:"name"        bson:"name"`
	Phone       string        `json:"phone"       bson:"phone,omitempty"`
	Address     string        `json:"address"     bson:"address,omitempty"`
	Location    GeoPoint      `json:"location"    bson:"location"`
	Status      string        `json:"status"      bson:"status"`
	PlannedDate string        `json:"plannedDate" bson:"planned_date,omitempty"` // YYYY-MM-DD
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updated_at"`
}

type Visit struct {
	ID         bson.ObjectID  `json:"id"         bson:"_id,omitempty"`
	CompanyID  bson.ObjectID  `json:"companyId"  bson:"company_id"`
	TargetID   bson.ObjectID  `json:"targetId"   bson:"target_id"`
	AgentID    bson.ObjectID  `json:"agentId"    bson:"agent_id"`
	Outcome    string         `json:"outcome"    bson:"outcome"`
	Note       string         `json:"note"       bson:"note,omitempty"`
	Location   *GeoPoint      `json:"location"   bson:"location,omitempty"`
	CustomerID *bson.ObjectID `json:"customerId" bson:"customer_id,omitempty"` // set when outcome converts the target
	VisitedAt  time.Time      `json:"visitedAt"  bson:"visited_at"`
}
