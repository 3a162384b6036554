package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
)

// notFoundOrInternal maps repository not-found errors to 404 and everything
// else to 500, with the given message.
func notFoundOrInternal(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, repositories.ErrNotFound) {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
