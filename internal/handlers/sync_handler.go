package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type SyncHandler struct {
	sync *services.SyncService
}

func NewSyncHandler(sync *services.SyncService) *SyncHandler {
	return &SyncHandler{sync: sync}
}

// Replay godoc
// @Summary Replay a queue of offline actions
// @Tags sync
// @Accept json
// @Produce json
// @Param body body dto.SyncReq true "queued actions"
// @Success 200 {object} dto.SyncResp
// @Router /api/sync [post]
func (h *SyncHandler) Replay(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.SyncReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if len(req.Actions) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "actions required")
	}
	resp, err := h.sync.Replay(c.Context(), companyID, uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(resp)
}
