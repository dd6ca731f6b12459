package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"studyhub/internal/service"
)

// presignExpiry is how long a shared download link stays valid.
const presignExpiry = 15 * time.Minute

// ListResources returns PDF resources newest first. The subjectId query
// parameter takes precedence over semesterId.
func ListResources(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.UserContext(), c.Query("semesterId"), c.Query("subjectId")))
	}
}

// UploadResource accepts a multipart PDF upload (field name: file) with
// optional title, semesterId and subjectId form fields.
func UploadResource(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := svc.Upload(c.UserContext(), f, service.UploadInput{
			Title:       c.FormValue("title"),
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			SemesterID:  c.FormValue("semesterId"),
			SubjectID:   c.FormValue("subjectId"),
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// DownloadResource streams a resource's PDF content.
func DownloadResource(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, res, err := svc.Download(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.FileName+`"`)
		return c.SendStream(rc)
	}
}

// PresignResource returns a time-limited direct download URL.
func PresignResource(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := svc.PresignURL(c.UserContext(), c.Params("id"), presignExpiry)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DeleteResource removes the stored PDF and its record.
func DeleteResource(svc service.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
