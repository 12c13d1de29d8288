package authRoutes

import (
	authController "crowdfund/controllers/auth"
	"crowdfund/middleware"
	authValidator "crowdfund/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Get("/", authController.Home)
	authGroup.Post("/register", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/send-otp", authValidator.SendOtp(), authController.SendOtp)
	authGroup.Post("/verify-otp", authValidator.VerifyOtp(), authController.VerifyOtp)
	authGroup.Get("/user", middleware.JWTMiddleware, authController.CurrentUser)
}
