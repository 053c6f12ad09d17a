package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

type RouteHandler struct {
	routes *services.RouteService
}

func NewRouteHandler(routes *services.RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// Plan godoc
// @Summary Plan a visiting order over targets or raw points
// @Tags routes
// @Accept json
// @Produce json
// @Param body body dto.PlanRouteReq true "route request"
// @Success 200 {object} dto.PlanRouteResp
// @Router /api/routes/plan [post]
func (h *RouteHandler) Plan(c *fiber.Ctx) error {
	companyID, err := callerCompanyID(c)
	if err != nil {
		return err
	}
	var req dto.PlanRouteReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.routes.Plan(c.Context(), companyID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(resp)
}
