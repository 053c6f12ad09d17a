package dto

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResp struct {
	AccessToken string `json:"accessToken"`
	Role        string `json:"role"`
	UserID      string `json:"userId"`
	CompanyID   string `json:"companyId,omitempty"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
