package donationRoutes

import (
	donationController "crowdfund/controllers/donation"
	"crowdfund/middleware"
	donationValidator "crowdfund/validators/donation"

	"github.com/gofiber/fiber/v2"
)

func SetupDonationRoutes(app *fiber.App) {
	donationGroup := app.Group("/api/donation")

	donationGroup.Post("/donate", donationValidator.Donate(), middleware.JWTMiddleware, donationController.Donate)
	donationGroup.Get("/donations/:campaignId", middleware.JWTMiddleware, middleware.AdminMiddleware, donationController.GetDonations)
	donationGroup.Get("/my-donations", middleware.JWTMiddleware, donationController.GetUserReceipts)
	donationGroup.Get("/receipts", middleware.JWTMiddleware, donationController.GetUserReceipts)
	donationGroup.Get("/receipts/:receiptId", middleware.JWTMiddleware, donationController.GetReceiptById)
}
