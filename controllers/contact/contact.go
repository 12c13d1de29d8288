package contactController

import (
	"crowdfund/database"
	"crowdfund/middleware"
	"crowdfund/models"
	contactValidator "crowdfund/validators/contact"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Submit stores a contact form submission for the admin inbox
func Submit(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*contactValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	contact := models.Contact{
		Username: reqData.Username,
		Email:    reqData.Email,
		Message:  reqData.Message,
	}

	if err := database.Database.Db.Create(&contact).Error; err != nil {
		log.Printf("Error saving contact: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message submitted successfully", nil)
}
