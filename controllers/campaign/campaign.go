package campaignController

import (
	"crowdfund/database"
	"crowdfund/middleware"
	"crowdfund/models"
	campaignValidator "crowdfund/validators/campaign"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListCampaigns returns approved campaigns, optionally filtered by search
// text and category. Public endpoint.
func ListCampaigns(c *fiber.Ctx) error {
	search := c.Query("search")
	category := c.Query("category")

	db := database.Database.Db
	query := db.Model(&models.Campaign{}).Where("status = ?", models.CampaignStatusApproved)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var campaigns []models.Campaign
	if err := query.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		log.Printf("Error fetching campaigns: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch campaigns!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaigns fetched!", campaigns)
}

// GetCampaignById returns one campaign. Public endpoint.
func GetCampaignById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid campaign id!", nil)
	}

	var campaign models.Campaign
	if err := database.Database.Db.First(&campaign, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Campaign not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaign fetched!", campaign)
}

// AddCampaign creates a campaign (admin). Newly created campaigns still
// start pending; approval is a separate step.
func AddCampaign(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCampaign").(*campaignValidator.CampaignRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	campaign := models.Campaign{
		Title:       reqData.Title,
		Description: reqData.Description,
		Goal:        reqData.Goal,
		Deadline:    reqData.Deadline,
		CreatorID:   &userId,
	}
	if reqData.Category != "" {
		campaign.Category = reqData.Category
	}

	if err := database.Database.Db.Create(&campaign).Error; err != nil {
		log.Printf("Error creating campaign: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create campaign!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Campaign created!", campaign)
}

// ApplyForCampaign lets any authenticated user submit a campaign for
// moderation.
func ApplyForCampaign(c *fiber.Ctx) error {
	return AddCampaign(c)
}

// UpdateCampaign applies a partial update (admin). Moderation edits must
// keep raised within goal, so the update re-validates the same invariant
// the ledger enforces on the donation path.
func UpdateCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid campaign id!", nil)
	}

	reqData, ok := c.Locals("validatedCampaignUpdate").(*campaignValidator.UpdateCampaignRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var campaign models.Campaign
	if err := db.First(&campaign, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Campaign not found", nil)
	}

	newRaised := campaign.Raised
	if reqData.Raised != nil {
		newRaised = *reqData.Raised
	}
	newGoal := campaign.Goal
	if reqData.Goal != nil {
		newGoal = *reqData.Goal
	}

	// Same invariant as the ledger: edits that would leave raised above
	// goal are blocked outright, never clamped.
	if reqData.Raised != nil && newRaised > newGoal {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Raised cannot exceed goal", nil)
	}
	if reqData.Goal != nil && *reqData.Goal < newRaised {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Goal cannot be lower than current raised amount", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Goal != nil {
		updates["goal"] = *reqData.Goal
	}
	if reqData.Raised != nil {
		updates["raised"] = *reqData.Raised
	}
	if reqData.Deadline != nil {
		updates["deadline"] = *reqData.Deadline
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
	}

	if len(updates) > 0 {
		if err := db.Model(&campaign).Updates(updates).Error; err != nil {
			log.Printf("Error updating campaign: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update campaign!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaign updated successfully", campaign)
}

// DeleteCampaign removes a campaign (admin)
func DeleteCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid campaign id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Campaign{}, id).Error; err != nil {
		log.Printf("Error deleting campaign: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete campaign!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaign deleted successfully", nil)
}

// GetPendingCampaigns lists campaigns waiting for moderation (admin)
func GetPendingCampaigns(c *fiber.Ctx) error {
	var pending []models.Campaign
	if err := database.Database.Db.
		Where("status = ?", models.CampaignStatusPending).
		Order("created_at ASC").
		Find(&pending).Error; err != nil {
		log.Printf("Error fetching pending campaigns: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending campaigns!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending campaigns fetched!", pending)
}

// ApproveCampaign transitions a pending campaign to approved (admin)
func ApproveCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid campaign id!", nil)
	}

	db := database.Database.Db

	var campaign models.Campaign
	if err := db.First(&campaign, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Campaign not found", nil)
	}

	campaign.Status = models.CampaignStatusApproved
	if err := db.Save(&campaign).Error; err != nil {
		log.Printf("Error approving campaign: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve campaign!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaign approved successfully", nil)
}

// RejectCampaign rejects and removes a pending campaign (admin)
func RejectCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid campaign id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Campaign{}, id).Error; err != nil {
		log.Printf("Error rejecting campaign: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject campaign!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaign rejected successfully", nil)
}
