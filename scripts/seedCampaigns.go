package main

import (
	"crowdfund/config"
	"crowdfund/database"
	"crowdfund/models"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account and a handful of approved campaigns for local
// development.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@crowdfund.io",
		Phone:    "9999999999",
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Admin user id=%d", admin.ID)

	campaigns := []models.Campaign{
		{Title: "Clean Water for Rural Schools", Description: "Install water purifiers in 20 village schools.", Goal: 50000, Category: "Social Cause", Status: models.CampaignStatusApproved, Deadline: time.Now().AddDate(0, 3, 0), CreatorID: &admin.ID},
		{Title: "Scholarships for First-Generation Students", Description: "Fund one year of tuition for ten students.", Goal: 120000, Category: "Education", Status: models.CampaignStatusApproved, Deadline: time.Now().AddDate(0, 6, 0), CreatorID: &admin.ID},
		{Title: "Community Health Camp", Description: "Free health checkups and medicines.", Goal: 30000, Category: "Healthcare", Status: models.CampaignStatusApproved, Deadline: time.Now().AddDate(0, 2, 0), CreatorID: &admin.ID},
		{Title: "Reforest the Riverbank", Description: "Plant 5000 native trees along the river.", Goal: 75000, Category: "Environment", Status: models.CampaignStatusPending, Deadline: time.Now().AddDate(0, 4, 0), CreatorID: &admin.ID},
	}

	for _, campaign := range campaigns {
		if err := db.Where("title = ?", campaign.Title).FirstOrCreate(&campaign).Error; err != nil {
			log.Printf("Failed to seed campaign %q: %v", campaign.Title, err)
			continue
		}
		log.Printf("Seeded campaign %q id=%d", campaign.Title, campaign.ID)
	}

	log.Println("Done.")
}
