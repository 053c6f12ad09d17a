package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create godoc
// @Summary Create a user within a company
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.CreateUserReq true "user"
// @Success 201 {object} model.User
// @Failure 409 {object} map[string]interface{}
// @Router /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserReq
	if err := parseBody(c, &req); err != nil {
		return err
	}

	// Admins create inside their own company; superadmin names one.
	var companyID bson.ObjectID
	if callerRole(c) == model.RoleSuperadmin {
		if req.CompanyID != "" {
			id, err := bson.ObjectIDFromHex(req.CompanyID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid companyId")
			}
			companyID = id
		}
	} else {
		id, err := callerCompanyID(c)
		if err != nil {
			return err
		}
		companyID = id
	}

	u, err := h.users.Create(c.Context(), req, companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	users, err := h.users.ListByCompany(c.Context(), companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	u, err := h.users.Get(c.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	if callerRole(c) != model.RoleSuperadmin {
		companyID, err := callerCompanyID(c)
		if err != nil {
			return err
		}
		if u.CompanyID != companyID {
			return fiber.NewError(fiber.StatusNotFound, "not found")
		}
	}
	return c.JSON(u)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if callerRole(c) != model.RoleSuperadmin {
		existing, err := h.users.Get(c.Context(), id)
		if err != nil {
			return serviceError(err)
		}
		companyID, err := callerCompanyID(c)
		if err != nil {
			return err
		}
		if existing.CompanyID != companyID {
			return fiber.NewError(fiber.StatusNotFound, "not found")
		}
	}
	u, err := h.users.Update(c.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(u)
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	u, err := h.users.Get(c.Context(), uid)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(u)
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	u, err := h.users.UpdateProfile(c.Context(), uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(u)
}
