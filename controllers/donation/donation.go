package donationController

import (
	"crowdfund/database"
	"crowdfund/ledger"
	"crowdfund/middleware"
	"crowdfund/models"
	donationValidator "crowdfund/validators/donation"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// donationError translates a ledger error into the transport response. The
// core never sees HTTP; this adapter is the only place the mapping lives.
func donationError(c *fiber.Ctx, err error) error {
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
		log.Printf("Donation error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}
}

// Donate is the direct donation entry point: reserve headroom on the
// campaign, then record the donation and its receipt.
func Donate(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedDonate").(*donationValidator.DonateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.UserContext())

	result, err := ledger.Donate(db, ledger.Contribution{
		CampaignID: reqData.CampaignID,
		DonorID:    userId,
		Amount:     reqData.Amount,
	})
	if err != nil {
		return donationError(c, err)
	}

	message := "Donation successful"
	if result.Fulfilled {
		message = "Donation fulfilled successfully"
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, message, fiber.Map{
		"receiptId":     result.Receipt.ID,
		"transactionId": result.Receipt.TransactionID,
		"raised":        result.Raised,
	})
}

// GetDonations lists donations for one campaign (admin)
func GetDonations(c *fiber.Ctx) error {
	campaignId, err := c.ParamsInt("campaignId")
	if err != nil || campaignId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid campaign id!", nil)
	}

	var donations []models.Donation
	if err := database.Database.Db.
		Where("campaign_id = ?", campaignId).
		Preload("Donor").
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		log.Printf("Error fetching donations: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch donations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donations fetched!", donations)
}

// GetUserReceipts lists the authenticated user's receipts, newest first
func GetUserReceipts(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var receipts []models.Receipt
	if err := database.Database.Db.
		Where("donor_id = ?", userId).
		Order("created_at DESC").
		Find(&receipts).Error; err != nil {
		log.Printf("Error fetching receipts: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch receipts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Receipts fetched!", receipts)
}

// GetReceiptById returns one receipt with its campaign details
func GetReceiptById(c *fiber.Ctx) error {
	receiptId, err := c.ParamsInt("receiptId")
	if err != nil || receiptId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid receipt id!", nil)
	}

	var receipt models.Receipt
	if err := database.Database.Db.
		Preload("Campaign").
		First(&receipt, receiptId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Receipt not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Receipt fetched!", receipt)
}
