package dto

type CreateCompanyReq struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	UserLimit int    `json:"userLimit" validate:"required,gt=0"`
	WorkStart string `json:"workStart"`
}

type UpdateCompanyReq struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	UserLimit *int    `json:"userLimit" validate:"omitempty,gt=0"`
	WorkStart *string `json:"workStart"`
	Active    *bool   `json:"active"`
}
