package dto

import "encoding/json"

// SyncAction is one queued offline mutation. ActionID is a client-generated
// UUID used for replay deduplication; Payload is decoded per Kind.
type SyncAction struct {
	ActionID string          `json:"actionId" validate:"required,uuid4"`
	Kind     string          `json:"kind" validate:"required"`
	Payload  json.RawMessage `json:"payload"`
}

type SyncReq struct {
	Actions []SyncAction `json:"actions" validate:"required,dive"`
}

type SyncResult struct {
	ActionID string `json:"actionId"`
	Applied  bool   `json:"applied"`
	Reason   string `json:"reason,omitempty"`
}

type SyncResp struct {
	Results []SyncResult `json:"results"`
}

// Per-kind payloads.

type SyncVisitPayload struct {
	TargetID string `json:"targetId"`
	Outcome  string `json:"outcome"`
	Note     string `json:"note"`
}

type SyncNotePayload struct {
	CustomerID string `json:"customerId"`
	Text       string `json:"text"`
}
