package adminRoutes

import (
	adminController "crowdfund/controllers/admin"
	"crowdfund/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/users", adminController.GetAllUsers)
	adminGroup.Get("/users/:id", adminController.GetUserById)
	adminGroup.Patch("/users/update/:id", adminController.UpdateUserById)
	adminGroup.Delete("/users/delete/:id", adminController.DeleteUserById)

	adminGroup.Get("/contacts", adminController.GetAllContacts)
	adminGroup.Delete("/contacts/delete/:id", adminController.DeleteContactById)

	adminGroup.Get("/campaigns/report", adminController.GetCampaignReport)
	adminGroup.Post("/announcement", adminController.Announce)
}
