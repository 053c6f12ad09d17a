package dto

type BroadcastReq struct {
	Title    string   `json:"title" validate:"required"`
	Body     string   `json:"body"`
	Priority string   `json:"priority"`
	UserIDs  []string `json:"userIds"` // empty broadcasts to the whole company
}

type UpdatePrefsReq struct {
	PushEnabled *bool           `json:"pushEnabled"`
	Types       map[string]bool `json:"types"`
}

type RegisterTokenReq struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform"`
}
