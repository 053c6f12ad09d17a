package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type ExpenseHandler struct {
	expenses *services.ExpenseService
}

func NewExpenseHandler(expenses *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Create godoc
// @Summary Submit an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param body body dto.CreateExpenseReq true "expense"
// @Success 201 {object} model.Expense
// @Failure 400 {object} map[string]interface{}
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateExpenseReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	e, err := h.expenses.Create(c.Context(), companyID, uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (h *ExpenseHandler) ListMine(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	expenses, err := h.expenses.ListByUser(c.Context(), uid, c.Query("status"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) ListCompany(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	expenses, err := h.expenses.ListByCompany(c.Context(), companyID, c.Query("status"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, model.ExpenseApproved)
}

func (h *ExpenseHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, model.ExpenseRejected)
}

func (h *ExpenseHandler) Reimburse(c *fiber.Ctx) error {
	return h.decide(c, model.ExpenseReimbursed)
}

func (h *ExpenseHandler) decide(c *fiber.Ctx, toStatus string) error {
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
	e, err := h.expenses.Decide(c.Context(), id, adminID, companyID, toStatus)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(e)
}

func (h *ExpenseHandler) Cancel(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	e, err := h.expenses.Cancel(c.Context(), id, uid)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(e)
}

func (h *ExpenseHandler) MonthlySummary(c *fiber.Ctx) error {
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	summary, err := h.expenses.MonthlySummary(c.Context(), uid, c.Query("month"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(summary)
}

// ExportMonth streams the company's month as an xlsx attachment.
func (h *ExpenseHandler) ExportMonth(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	month := c.Query("month")
	data, err := h.expenses.ExportMonthXLSX(c.Context(), companyID, month)
	if err != nil {
		return serviceError(err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="expenses-%s.xlsx"`, month))
	return c.Send(data)
}
