package handlers

import (
	"errors"
	"fmt"

	"commerce/internal/auctionerrors"
	"commerce/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// currentUserID extracts the authenticated user's ID stored by the JWT
// middleware. Routes using it must be registered behind AuthRequired.
func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("no authenticated user in request context")
	}
	return userID, nil
}

// respondBusinessError maps the auction error taxonomy onto HTTP statuses.
// Business rejections are expected, recoverable outcomes; anything
// unrecognized is treated as an infrastructure failure.
func respondBusinessError(c *fiber.Ctx, err error) error {
	var tooLow *auctionerrors.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":  "Bid rejected",
			"error":    tooLow.Error(),
			"required": tooLow.Required.StringFixed(2),
		})
	case errors.Is(err, auctionerrors.ErrAuctionClosed),
		errors.Is(err, auctionerrors.ErrCommentBodyEmpty),
		errors.Is(err, auctionerrors.ErrCommentBodyTooLong),
		errors.Is(err, services.ErrStartingPriceNotPositive):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request rejected",
			"error":   err.Error(),
		})
	case errors.Is(err, auctionerrors.ErrSelfBidNotAllowed),
		errors.Is(err, auctionerrors.ErrNotListingOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Not allowed",
			"error":   err.Error(),
		})
	case auctionerrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal error",
			"error":   err.Error(),
		})
	}
}

// respondValidationError renders validator.v10 failures field by field.
func respondValidationError(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
