package contactValidator

import (
	"crowdfund/middleware"

	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// Submit validates a contact form submission
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Username == "" {
			errors["username"] = "Name is required!"
		}
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
