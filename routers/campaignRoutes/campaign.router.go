package campaignRoutes

import (
	campaignController "crowdfund/controllers/campaign"
	"crowdfund/middleware"
	campaignValidator "crowdfund/validators/campaign"

	"github.com/gofiber/fiber/v2"
)

func SetupCampaignRoutes(app *fiber.App) {
	campaignGroup := app.Group("/api/campaign")

	// Public routes
	campaignGroup.Get("/campaigns", campaignController.ListCampaigns)
	campaignGroup.Get("/campaigns/:id", campaignController.GetCampaignById)

	// Authenticated routes
	campaignGroup.Post("/apply", campaignValidator.Create(), middleware.JWTMiddleware, campaignController.ApplyForCampaign)

	// Admin routes
	campaignGroup.Post("/campaigns", campaignValidator.Create(), middleware.JWTMiddleware, middleware.AdminMiddleware, campaignController.AddCampaign)
	campaignGroup.Put("/campaigns/:id", campaignValidator.Update(), middleware.JWTMiddleware, middleware.AdminMiddleware, campaignController.UpdateCampaign)
	campaignGroup.Delete("/campaigns/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, campaignController.DeleteCampaign)

	adminGroup := campaignGroup.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)
	adminGroup.Get("/pending", campaignController.GetPendingCampaigns)
	adminGroup.Put("/approve/:id", campaignController.ApproveCampaign)
	adminGroup.Delete("/reject/:id", campaignController.RejectCampaign)
}
