package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
}

func NewAttendanceHandler(attendance *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// CheckIn godoc
// @Summary Check in for today
// @Tags attendance
// @Accept json
// @Produce json
// @Param body body dto.CheckInReq true "check-in"
// @Success 201 {object} model.AttendanceRecord
// @Failure 409 {object} map[string]interface{}
// @Router /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.CheckInReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	rec, err := h.attendance.CheckIn(c.Context(), companyID, uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.CheckOutReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	rec, err := h.attendance.CheckOut(c.Context(), uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(rec)
}

func (h *AttendanceHandler) ListMine(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	records, err := h.attendance.ListByUserRange(c.Context(), uid, c.Query("from"), c.Query("to"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(records)
}

// CompanyDate is the admin view of who was in on a given day.
func (h *AttendanceHandler) CompanyDate(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	records, err := h.attendance.ListByCompanyDate(c.Context(), companyID, c.Query("date"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(records)
}
