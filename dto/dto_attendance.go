package dto

import "github.com/anishanishy81-byte/poverse-sub003/model"

type CheckInReq struct {
	Location  *model.GeoPoint `json:"location" validate:"required"`
	SelfieURL string          `json:"selfieUrl"`
}

type CheckOutReq struct {
	Location *model.GeoPoint `json:"location"`
}
