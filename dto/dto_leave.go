package dto

type CreateLeaveReq struct {
	Type      string `json:"type" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Duration  string `json:"duration"` // full (default) or half
	Reason    string `json:"reason"`
}

type DecideLeaveReq struct {
	Comment string `json:"comment"`
}
