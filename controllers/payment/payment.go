package paymentController

import (
	"crowdfund/database"
	"crowdfund/ledger"
	"crowdfund/middleware"
	"crowdfund/models"
	"crowdfund/utils"
	paymentValidator "crowdfund/validators/payment"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder creates a gateway payment order for a donation. The headroom
// check here is advisory; the ledger re-validates when the payment is
// verified.
func CreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateOrder").(*paymentValidator.CreateOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var campaign models.Campaign
	if err := db.First(&campaign, reqData.CampaignID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Campaign not found", nil)
	}

	if campaign.Raised >= campaign.Goal {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Campaign goal already fulfilled", nil)
	}
	if remaining := campaign.Goal - campaign.Raised; reqData.Amount > remaining {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			fmt.Sprintf("You can only donate up to %g", remaining), nil)
	}

	order, err := utils.CreateRazorpayOrder(reqData.Amount)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment order", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created!", fiber.Map{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})
}

// VerifyPayment checks the gateway signature and, once it passes, runs the
// same reserve-then-record path as a direct donation, persisting the
// gateway payment id on both the donation and the receipt.
func VerifyPayment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedVerifyPayment").(*paymentValidator.VerifyPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !utils.VerifyRazorpaySignature(reqData.OrderID, reqData.PaymentID, reqData.Signature) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment verification failed. Invalid signature.", nil)
	}

	payload, _ := json.Marshal(reqData)

	db := database.Database.Db.WithContext(c.UserContext())

	result, err := ledger.Donate(db, ledger.Contribution{
		CampaignID: reqData.CampaignID,
		DonorID:    userId,
		Amount:     reqData.Amount,
		PaymentID:  reqData.PaymentID,
		Payload:    payload,
	})
	if err != nil {
		return paymentDonationError(c, err)
	}

	// Receipt email is best-effort; the donation is already durable
	var donor models.User
	if err := database.Database.Db.First(&donor, userId).Error; err == nil && donor.Email != "" {
		utils.SendReceiptEmail(donor.Email, donor.Username, result.Receipt.CampaignTitle,
			result.Receipt.Amount, result.Receipt.TransactionID, reqData.PaymentID)
	}

	message := "Donation successful"
	if result.Fulfilled {
		message = "Donation fulfilled successfully"
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, message, fiber.Map{
		"receiptId":     result.Receipt.ID,
		"transactionId": result.Receipt.TransactionID,
		"paymentId":     reqData.PaymentID,
		"raised":        result.Raised,
	})
}

func paymentDonationError(c *fiber.Ctx, err error) error {
	var exceeds *ledger.AmountExceedsRemainingError
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid donation amount or campaign id", nil)
	case errors.Is(err, ledger.ErrCampaignNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Campaign not found", nil)
	case errors.Is(err, ledger.ErrGoalFulfilled):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Campaign goal already fulfilled", nil)
	case errors.As(err, &exceeds):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			fmt.Sprintf("You can only donate up to %g", exceeds.Remaining), nil)
	default:
		log.Printf("Payment verification error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment verification failed", nil)
	}
}
