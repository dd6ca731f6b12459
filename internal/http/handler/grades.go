package handler

import (
	"github.com/gofiber/fiber/v2"

	"studyhub/internal/grades"
)

type sgpaRequest struct {
	Courses []grades.Course `json:"courses"`
}

type cgpaRequest struct {
	Semesters []grades.SemesterResult `json:"semesters"`
}

type internalRequest struct {
	Marks grades.InternalMarks `json:"marks"`
}

type requiredRequest struct {
	Internal float64 `json:"internal"`
	Target   float64 `json:"target"`
}

// CalculateSGPA computes the credit-weighted SGPA over one semester's
// courses.
func CalculateSGPA() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sgpaRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sgpa, err := grades.SGPA(req.Courses)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"sgpa": sgpa})
	}
}

// CalculateCGPA computes the credit-weighted CGPA over semester results
// and its percentage equivalent.
func CalculateCGPA() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req cgpaRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		cgpa, err := grades.CGPA(req.Semesters)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"cgpa":       cgpa,
			"percentage": grades.Percentage(cgpa),
		})
	}
}

// CalculateInternal estimates the internal score out of 50 from raw
// assessment components.
func CalculateInternal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req internalRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		internal, err := grades.Internal(req.Marks)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"internal": internal})
	}
}

// CalculateRequired returns the minimum end-term mark needed to reach a
// target total.
func CalculateRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requiredRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		required, err := grades.RequiredEndTerm(req.Internal, req.Target)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"required": required})
	}
}
