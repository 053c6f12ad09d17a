package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginReq true "credentials"
// @Success 200 {object} dto.LoginResp
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	u, token, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return serviceError(err)
	}
	resp := dto.LoginResp{
		AccessToken: token,
		Role:        u.Role,
		UserID:      u.ID.Hex(),
	}
	if !u.CompanyID.IsZero() {
		resp.CompanyID = u.CompanyID.Hex()
	}
	return c.JSON(resp)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.Context(), uid, req.OldPassword, req.NewPassword); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
