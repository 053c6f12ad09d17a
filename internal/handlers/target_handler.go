package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type TargetHandler struct {
	targets *services.TargetService
}

func NewTargetHandler(targets *services.TargetService) *TargetHandler {
	return &TargetHandler{targets: targets}
}

func (h *TargetHandler) Create(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	var req dto.CreateTargetReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	t, err := h.targets.Create(c.Context(), companyID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// List returns the caller's targets; admins may list another agent's via
// the agentId query parameter.
func (h *TargetHandler) List(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	agentID, err := callerUserID(c)
	if err != nil {
		return err
	}
	if raw := c.Query("agentId"); raw != "" && callerRole(c) == model.RoleAdmin {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid agentId")
		}
		agentID = id
	}
	targets, err := h.targets.ListByAgent(c.Context(), companyID, agentID, c.Query("date"), c.Query("status"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(targets)
}

func (h *TargetHandler) Get(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	t, err := h.targets.Get(c.Context(), id, companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(t)
}

// RecordVisit godoc
// @Summary Record the outcome of visiting a target
// @Tags targets
// @Accept json
// @Produce json
// @Param id path string true "target id"
// @Param body body dto.RecordVisitReq true "visit"
// @Success 201 {object} model.Visit
// @Failure 409 {object} map[string]interface{}
// @Router /api/targets/{id}/visits [post]
func (h *TargetHandler) RecordVisit(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	agentID, err := callerUserID(c)
	if err != nil {
		return err
	}
	targetID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RecordVisitReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	v, err := h.targets.RecordVisit(c.Context(), targetID, companyID, agentID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *TargetHandler) ListVisits(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	targetID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	visits, err := h.targets.ListVisits(c.Context(), targetID, companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(visits)
}
