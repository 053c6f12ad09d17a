package dto

import "github.com/anishanishy81-byte/poverse-sub003/model"

type CreateCustomerReq struct {
	Name     string          `json:"name" validate:"required"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email" validate:"omitempty,email"`
	Address  string          `json:"address"`
	Location *model.GeoPoint `json:"location"`
	Tags     []string        `json:"tags"`
	Status   string          `json:"status"`
	Priority string          `json:"priority"`
	AgentID  string          `json:"agentId"`
}

type UpdateCustomerReq struct {
	Name     *string         `json:"name"`
	Phone    *string         `json:"phone"`
	Email    *string         `json:"email" validate:"omitempty,email"`
	Address  *string         `json:"address"`
	Location *model.GeoPoint `json:"location"`
	Tags     []string        `json:"tags"`
	Status   *string         `json:"status"`
	Priority *string         `json:"priority"`
	AgentID  *string         `json:"agentId"`
}

type CreateInteractionReq struct {
	Type    string `json:"type" validate:"required"`
	Outcome string `json:"outcome"`
	Notes   string `json:"notes"`
}

type CreateNoteReq struct {
	Text string `json:"text" validate:"required"`
}

type CreatePurchaseReq struct {
	Amount float64  `json:"amount" validate:"required,gt=0"`
	Items  []string `json:"items"`
}
