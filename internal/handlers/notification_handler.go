package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	items, err := h.notifications.List(c.Context(), uid, c.Query("status"), int64(c.QueryInt("limit")))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(items)
}

// SetStatus moves a notification to read, archived or deleted.
func (h *NotificationHandler) SetStatus(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		Status string `json:"status" validate:"required"`
	}
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.notifications.SetStatus(c.Context(), id, uid, body.Status); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	n, err := h.notifications.MarkAllRead(c.Context(), uid)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"success": true, "updated": n})
}

func (h *NotificationHandler) GetPrefs(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	prefs, err := h.notifications.GetPrefs(c.Context(), uid)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(prefs)
}

func (h *NotificationHandler) UpdatePrefs(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePrefsReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	prefs, err := h.notifications.UpdatePrefs(c.Context(), uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(prefs)
}

func (h *NotificationHandler) RegisterToken(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.RegisterTokenReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.notifications.RegisterToken(c.Context(), uid, req); err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// Broadcast godoc
// @Summary Send a notification to selected users or the whole company
// @Tags notifications
// @Accept json
// @Produce json
// @Param body body dto.BroadcastReq true "broadcast"
// @Success 200 {object} map[string]interface{}
// @Router /api/notifications/broadcast [post]
func (h *NotificationHandler) Broadcast(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	var req dto.BroadcastReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	sent, err := h.notifications.Broadcast(c.Context(), companyID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"success": true, "sent": sent})
}
