package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type LeaveHandler struct {
	leaves *services.LeaveService
}

func NewLeaveHandler(leaves *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaves: leaves}
}

// Create godoc
// @Summary Submit a leave request
// @Tags leave
// @Accept json
// @Produce json
// @Param body body dto.CreateLeaveReq true "leave request"
// @Success 201 {object} model.LeaveRequest
// @Router /api/leave [post]
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateLeaveReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	lr, err := h.leaves.Create(c.Context(), companyID, uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(lr)
}

func (h *LeaveHandler) ListMine(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	requests, err := h.leaves.ListByUser(c.Context(), uid, c.Query("status"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(requests)
}

func (h *LeaveHandler) ListCompany(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	requests, err := h.leaves.ListByCompany(c.Context(), companyID, c.Query("status"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(requests)
}

func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, h.leaves.Approve)
}

func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, h.leaves.Reject)
}

func (h *LeaveHandler) decide(c *fiber.Ctx, fn func(ctx context.Context, id, adminID, companyID bson.ObjectID) (*model.LeaveRequest, error)) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	adminID, err := callerUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	lr, err := fn(c.Context(), id, adminID, companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(lr)
}

func (h *LeaveHandler) Cancel(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	lr, err := h.leaves.Cancel(c.Context(), id, uid)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(lr)
}

func (h *LeaveHandler) Balance(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	b, err := h.leaves.Balance(c.Context(), uid)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(b)
}
