package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"studyhub/internal/record"
)

// HealthCheck reports whether the record store backend is reachable.
func HealthCheck(store record.Store, backend string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "record store unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"backend": backend,
		})
	}
}

// LivenessProbe is a minimal probe that only proves the process serves
// requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
