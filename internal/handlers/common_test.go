package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishanishy81-byte/poverse-sub003/services"
)

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrValidation, fiber.StatusBadRequest},
		{fmt.Errorf("%w: amount must be positive", services.ErrValidation), fiber.StatusBadRequest},
		{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{services.ErrForbidden, fiber.StatusForbidden},
		{services.ErrNotFound, fiber.StatusNotFound},
		{services.ErrDuplicate, fiber.StatusConflict},
		{services.ErrInvalidTransition, fiber.StatusConflict},
		{services.ErrLimitReached, fiber.StatusConflict},
		{services.ErrInsufficientBalance, fiber.StatusConflict},
		{errors.New("mongo blew up"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		var fe *fiber.Error
		require.ErrorAs(t, serviceError(tt.err), &fe)
		assert.Equal(t, tt.want, fe.Code, "for %v", tt.err)
	}
}

func TestServiceErrorHidesInternals(t *testing.T) {
	var fe *fiber.Error
	require.ErrorAs(t, serviceError(errors.New("dial tcp 10.0.0.5: refused")), &fe)
	assert.Equal(t, "internal error", fe.Message)
}
