package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type CompanyHandler struct {
	companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// Create godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param body body dto.CreateCompanyReq true "company"
// @Success 201 {object} model.Company
// @Router /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	company, err := h.companies.Create(c.Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := h.companies.List(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(companies)
}

// Get returns the caller's own company for admins; superadmin may read any.
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if callerRole(c) != model.RoleSuperadmin {
		own, err := callerCompanyID(c)
		if err != nil {
			return err
		}
		if own != id {
			return fiber.NewError(fiber.StatusForbidden, "forbidden")
		}
	}
	company, err := h.companies.Get(c.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(company)
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCompanyReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	company, err := h.companies.Update(c.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(company)
}

func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.companies.Delete(c.Context(), id); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
