package donationValidator

import (
	"crowdfund/middleware"

	"github.com/gofiber/fiber/v2"
)

type DonateRequest struct {
	CampaignID uint    `json:"campaignId"`
	Amount     float64 `json:"amount"`
}

// Donate validates a direct donation request. The amount check here is the
// parse boundary only; the ledger re-validates before any write.
func Donate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DonateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CampaignID == 0 {
			errors["campaignId"] = "Campaign ID is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDonate", reqData)
		return c.Next()
	}
}
