package handler

import (
	"github.com/gofiber/fiber/v2"

	"studyhub/internal/service"
)

type subjectRequest struct {
	Name       string `json:"name"`
	SemesterID string `json:"semesterId"`
}

// ListSubjects returns subjects, filtered to one semester when the
// semesterId query parameter is present.
func ListSubjects(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.UserContext(), c.Query("semesterId")))
	}
}

// CreateSubject adds a subject under a semester.
func CreateSubject(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req subjectRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sub, err := svc.Create(c.UserContext(), req.Name, req.SemesterID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
}

// UpdateSubject applies the non-empty fields of the body as a patch.
func UpdateSubject(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req subjectRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.Update(c.UserContext(), c.Params("id"), req.Name, req.SemesterID); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteSubject removes a subject, leaving its resources behind.
func DeleteSubject(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
