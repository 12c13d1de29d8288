package paymentValidator

import (
	"crowdfund/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	CampaignID uint    `json:"campaignId"`
	Amount     float64 `json:"amount"`
}

type VerifyPaymentRequest struct {
	OrderID    string  `json:"orderId"`
	PaymentID  string  `json:"paymentId"`
	Signature  string  `json:"signature"`
	CampaignID uint    `json:"campaignId"`
	Amount     float64 `json:"amount"`
}

// CreateOrder validates a gateway order request
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderRequest)

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

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}

// VerifyPayment validates a gateway payment verification request
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OrderID == "" {
			errors["orderId"] = "Order ID is required!"
		}
		if reqData.PaymentID == "" {
			errors["paymentId"] = "Payment ID is required!"
		}
		if reqData.Signature == "" {
			errors["signature"] = "Signature is required!"
		}
		if reqData.CampaignID == 0 {
			errors["campaignId"] = "Campaign ID is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}
