package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/model"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Daily godoc
// @Summary Get (or generate) a daily report
// @Tags reports
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param userId query string false "admin only; defaults to the caller"
// @Success 200 {object} model.DailyReport
// @Router /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	userID, err := callerUserID(c)
	if err != nil {
		return err
	}
	if raw := c.Query("userId"); raw != "" && callerRole(c) == model.RoleAdmin {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid userId")
		}
		userID = id
	}
	rep, err := h.reports.Daily(c.Context(), companyID, userID, c.Query("date"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(rep)
}

func (h *ReportHandler) CompanyDaily(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	reports, err := h.reports.CompanyDaily(c.Context(), companyID, c.Query("date"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(reports)
}

func (h *ReportHandler) ExportRange(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	from, to := c.Query("from"), c.Query("to")
	data, err := h.reports.ExportRangeXLSX(c.Context(), companyID, from, to)
	if err != nil {
		return serviceError(err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reports-%s-%s.xlsx"`, from, to))
	return c.Send(data)
}
