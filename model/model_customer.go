package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Customer struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	CompanyID bson.ObjectID `json:"companyId" bson:"company_id"`
	AgentID   bson.ObjectID `json:"agentId"   bson:"agent_id,omitempty"`
	Name      string        `json:"name"      bson:"name"`
	Phone     string        `json:"phone"     bson:"phone,omitempty"`
	Email     string        `json:"email"     bson:"email,omitempty"`
	Address   string        `json:"address"   bson:"address,omitempty"`
	Location  *GeoPoint     `json:"location"  bson:"location,omitempty"`
	Tags      []string      `json:"tags"      bson:"tags,omitempty"`
	Status    string        `json:"status"    bson:"status"`   // lead, active, inactive
	Priority  string        `json:"priority"  bson:"priority"` // low, medium, high

	// Counters maintained by the customer service on child mutation.
	TotalPurchases     int        `json:"totalPurchases"     bson:"total_purchases"`
	TotalPurchaseValue float64    `json:"totalPurchaseValue" bson:"total_purchase_value"`
	InteractionCount   int        `json:"interactionCount"   bson:"interaction_count"`
	LastInteractionAt  *time.Time `json:"lastInteractionAt"  bson:"last_interaction_at,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

type Interaction struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	CustomerID bson.ObjectID `json:"customerId" bson:"customer_id"`
	AgentID    bson.ObjectID `json:"agentId"    bson:"agent_id"`
	Type       string        `json:"type"       bson:"type"` // call, visit, message
	Outcome    string        `json:"outcome"    bson:"outcome,omitempty"`
	Notes      string        `json:"notes"      bson:"notes,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
}

type CustomerNote struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	CustomerID bson.ObjectID `json:"customerId" bson:"customer_id"`
	AuthorID   bson.ObjectID `json:"authorId"   bson:"author_id"`
	Text       string        `json:"text"       bson:"text"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
}

type Purchase struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	CustomerID bson.ObjectID `json:"customerId" bson:"customer_id"`
	AgentID    bson.ObjectID `json:"agentId"    bson:"agent_id"`
	Amount     float64       `json:"amount"     bson:"amount"`
	Items      []string      `json:"items"      bson:"items,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
}
