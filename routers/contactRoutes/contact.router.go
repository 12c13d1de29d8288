package contactRoutes

import (
	contactController "crowdfund/controllers/contact"
	contactValidator "crowdfund/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	formGroup := app.Group("/api/form")

	formGroup.Post("/contact", contactValidator.Submit(), contactController.Submit)
}
