package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type CustomerHandler struct {
	customers *services.CustomerService
}

func NewCustomerHandler(customers *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	var req dto.CreateCustomerReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.Create(c.Context(), companyID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List godoc
// @Summary List customers of the caller's company
// @Tags customers
// @Produce json
// @Param agentId query string false "filter by assigned agent"
// @Param status query string false "filter by status"
// @Param limit query int false "page size"
// @Success 200 {array} model.Customer
// @Router /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	var agentID *bson.ObjectID
	if raw := c.Query("agentId"); raw != "" {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid agentId")
		}
		agentID = &id
	}
	customers, err := h.customers.List(c.Context(), companyID, agentID, c.Query("status"), int64(c.QueryInt("limit")))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.customers.Get(c.Context(), id, companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCustomerReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.Update(c.Context(), id, companyID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.customers.Delete(c.Context(), id, companyID); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CustomerHandler) AddInteraction(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	customerID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateInteractionReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	in, err := h.customers.AddInteraction(c.Context(), customerID, companyID, uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(in)
}

func (h *CustomerHandler) ListInteractions(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	customerID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	interactions, err := h.customers.ListInteractions(c.Context(), customerID, companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(interactions)
}

func (h *CustomerHandler) AddNote(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	customerID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateNoteReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	note, err := h.customers.AddNote(c.Context(), customerID, companyID, uid, req.Text)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (h *CustomerHandler) ListNotes(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	customerID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	notes, err := h.customers.ListNotes(c.Context(), customerID, companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(notes)
}

func (h *CustomerHandler) AddPurchase(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	uid, err := callerUserID(c)
	if err != nil {
		return err
	}
	customerID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreatePurchaseReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	p, err := h.customers.AddPurchase(c.Context(), customerID, companyID, uid, req)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *CustomerHandler) ListPurchases(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	customerID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	purchases, err := h.customers.ListPurchases(c.Context(), customerID, companyID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(purchases)
}

func (h *CustomerHandler) DeletePurchase(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	purchaseID, err := paramID(c, "purchaseId")
	if err != nil {
		return err
	}
	if err := h.customers.DeletePurchase(c.Context(), purchaseID, companyID); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
