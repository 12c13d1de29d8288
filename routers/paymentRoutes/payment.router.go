package paymentRoutes

import (
	paymentController "crowdfund/controllers/payment"
	"crowdfund/middleware"
	paymentValidator "crowdfund/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payment")

	paymentGroup.Post("/create-order", paymentValidator.CreateOrder(), middleware.JWTMiddleware, paymentController.CreateOrder)
	paymentGroup.Post("/verify-payment", paymentValidator.VerifyPayment(), middleware.JWTMiddleware, paymentController.VerifyPayment)
}
