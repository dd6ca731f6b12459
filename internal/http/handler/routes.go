package handler

import (
	"github.com/gofiber/fiber/v2"

	"studyhub/internal/record"
	"studyhub/internal/service"
)

// Services bundles the use-case implementations the routes depend on.
type Services struct {
	Semesters service.SemesterService
	Subjects  service.SubjectService
	Resources service.ResourceService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, store record.Store, backend string, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(store, backend))
	app.Get("/healthz", LivenessProbe())

	app.Get("/semesters", ListSemesters(svcs.Semesters))
	app.Post("/semesters", CreateSemester(svcs.Semesters))
	app.Patch("/semesters/:id", RenameSemester(svcs.Semesters))
	app.Delete("/semesters/:id", DeleteSemester(svcs.Semesters))

	app.Get("/subjects", ListSubjects(svcs.Subjects))
	app.Post("/subjects", CreateSubject(svcs.Subjects))
	app.Patch("/subjects/:id", UpdateSubject(svcs.Subjects))
	app.Delete("/subjects/:id", DeleteSubject(svcs.Subjects))

	app.Get("/pdfs", ListResources(svcs.Resources))
	app.Post("/pdfs", UploadResource(svcs.Resources))
	app.Get("/pdfs/:id/download", DownloadResource(svcs.Resources))
	app.Get("/pdfs/:id/url", PresignResource(svcs.Resources))
	app.Delete("/pdfs/:id", DeleteResource(svcs.Resources))

	app.Post("/grades/sgpa", CalculateSGPA())
	app.Post("/grades/cgpa", CalculateCGPA())
	app.Post("/grades/internal", CalculateInternal())
	app.Post("/grades/required", CalculateRequired())
}
