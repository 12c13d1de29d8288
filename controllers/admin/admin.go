package adminController

import (
	"crowdfund/database"
	"crowdfund/middleware"
	"crowdfund/models"
	"crowdfund/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers lists every registered user (admin)
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	if len(users) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No users found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched!", users)
}

// GetUserById returns one user (admin)
func GetUserById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user)
}

// UpdateUserById applies a partial user update (admin)
func UpdateUserById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData := new(struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Phone    *string `json:"phone"`
		IsAdmin  *bool   `json:"isAdmin"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Username != nil {
		updates["username"] = *reqData.Username
	}
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.Phone != nil {
		updates["phone"] = *reqData.Phone
	}
	if reqData.IsAdmin != nil {
		updates["is_admin"] = *reqData.IsAdmin
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			log.Printf("Error updating user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully", nil)
}

// DeleteUserById removes a user (admin). Campaigns created by the user keep
// existing with a null creator.
func DeleteUserById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	if err := db.Model(&models.Campaign{}).Where("creator_id = ?", id).
		Update("creator_id", nil).Error; err != nil {
		log.Printf("Error detaching campaigns: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	if err := db.Delete(&models.User{}, id).Error; err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully", nil)
}

// GetAllContacts lists contact form submissions (admin)
func GetAllContacts(c *fiber.Ctx) error {
	var contacts []models.Contact
	if err := database.Database.Db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		log.Printf("Error fetching contacts: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contacts!", nil)
	}

	if len(contacts) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No contact found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contacts fetched!", contacts)
}

// DeleteContactById removes a contact submission (admin)
func DeleteContactById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid contact id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Contact{}, id).Error; err != nil {
		log.Printf("Error deleting contact: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete contact!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact deleted successfully", nil)
}

// GetCampaignReport returns campaign statistics (admin)
func GetCampaignReport(c *fiber.Ctx) error {
	db := database.Database.Db

	var total, pending, approved int64
	db.Model(&models.Campaign{}).Count(&total)
	db.Model(&models.Campaign{}).Where("status = ?", models.CampaignStatusPending).Count(&pending)
	db.Model(&models.Campaign{}).Where("status = ?", models.CampaignStatusApproved).Count(&approved)

	var totals struct {
		TotalGoal   float64
		TotalRaised float64
	}
	if err := db.Model(&models.Campaign{}).
		Select("COALESCE(SUM(goal), 0) AS total_goal, COALESCE(SUM(raised), 0) AS total_raised").
		Scan(&totals).Error; err != nil {
		log.Printf("Error building campaign report: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build report!", nil)
	}

	var donations int64
	db.Model(&models.Donation{}).Count(&donations)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaign report", fiber.Map{
		"totalCampaigns":    total,
		"pendingCampaigns":  pending,
		"approvedCampaigns": approved,
		"totalGoal":         totals.TotalGoal,
		"totalRaised":       totals.TotalRaised,
		"totalDonations":    donations,
	})
}

// Announce emails an announcement to every registered user (admin)
func Announce(c *fiber.Ctx) error {
	reqData := new(struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	if reqData.Subject == "" {
		errors["subject"] = "Subject is required!"
	}
	if reqData.Message == "" {
		errors["message"] = "Message is required!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	var emails []string
	if err := database.Database.Db.Model(&models.User{}).Pluck("email", &emails).Error; err != nil {
		log.Printf("Error fetching user emails: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send announcement!", nil)
	}

	utils.SendAnnouncementEmail(emails, reqData.Subject, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement queued!", fiber.Map{
		"recipients": len(emails),
	})
}
