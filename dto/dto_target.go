package dto

import "github.com/anishanishy81-byte/poverse-sub003/model"

type CreateTargetReq struct {
	AgentID     string         `json:"agentId" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Location    model.GeoPoint `json:"location" validate:"required"`
	PlannedDate string         `json:"plannedDate"`
}

type RecordVisitReq struct {
	Outcome  string          `json:"outcome" validate:"required"`
	Note     string          `json:"note"`
	Location *model.GeoPoint `json:"location"`
}
