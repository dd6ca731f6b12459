package handler

import (
	"github.com/gofiber/fiber/v2"

	"studyhub/internal/service"
)

type semesterRequest struct {
	Name string `json:"name"`
}

// ListSemesters returns all semesters in their canonical order.
func ListSemesters(svc service.SemesterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.UserContext()))
	}
}

// CreateSemester appends a semester after the current highest order.
func CreateSemester(svc service.SemesterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req semesterRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sem, err := svc.Create(c.UserContext(), req.Name)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(sem)
	}
}

// RenameSemester changes a semester's name, keeping its order.
func RenameSemester(svc service.SemesterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req semesterRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.Rename(c.UserContext(), c.Params("id"), req.Name); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteSemester removes a semester. Dependent subjects and resources
// are left in place.
func DeleteSemester(svc service.SemesterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
