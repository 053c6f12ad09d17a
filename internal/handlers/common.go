package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/services"
)

var validate = validator.New()

// serviceError maps a service sentinel to the matching HTTP error. Unknown
// errors become 500 with a generic message so internals never leak.
func serviceError(err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrDuplicate),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrLimitReached),
		errors.Is(err, services.ErrInsufficientBalance):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}

func localObjectID(c *fiber.Ctx, key string) (bson.ObjectID, error) {
	raw, _ := c.Locals(key).(string)
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}

func callerUserID(c *fiber.Ctx) (bson.ObjectID, error) {
	return localObjectID(c, "user_id")
}

func callerCompanyID(c *fiber.Ctx) (bson.ObjectID, error) {
	return localObjectID(c, "company_id")
}

func callerRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

func paramID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validate.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
