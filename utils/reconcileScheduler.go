package utils

import (
	"crowdfund/database"
	"crowdfund/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logReconcile logs reconcile events with timestamp
func logReconcile(message string) {
	log.Printf("[RECONCILE %s] %s", time.Now().Format(time.RFC3339), message)
}

// clampOverfundedCampaigns caps raised at goal for campaigns that drifted
// past it. Donations cannot overfund (the ledger forbids it); drift comes
// from historical data or manual edits that bypassed the moderation checks.
func clampOverfundedCampaigns() {
	db := database.Database.Db

	var overfunded []models.Campaign
	if err := db.Where("raised > goal").Find(&overfunded).Error; err != nil {
		logReconcile("Error fetching overfunded campaigns: " + err.Error())
		return
	}

	for _, campaign := range overfunded {
		logReconcile("Capping campaign " + campaign.Title + " raised to goal")
		if err := db.Model(&models.Campaign{}).
			Where("id = ? AND raised > goal", campaign.ID).
			UpdateColumn("raised", campaign.Goal).Error; err != nil {
			logReconcile("Error capping campaign: " + err.Error())
		}
	}
}

// backfillMissingReceipts issues receipts for donations that have none.
// The donate path writes both rows in one transaction, so gaps here point
// at manual interventions; they are repaired and logged for audit.
func backfillMissingReceipts() {
	db := database.Database.Db

	var orphans []models.Donation
	if err := db.
		Joins("LEFT JOIN receipts ON receipts.donation_id = donations.id AND receipts.deleted_at IS NULL").
		Where("receipts.id IS NULL").
		Preload("Campaign").
		Find(&orphans).Error; err != nil {
		logReconcile("Error fetching donations without receipts: " + err.Error())
		return
	}

	for _, donation := range orphans {
		receipt := models.Receipt{
			DonationID:    donation.ID,
			DonorID:       donation.DonorID,
			CampaignID:    donation.CampaignID,
			CampaignTitle: donation.Campaign.Title,
			Amount:        donation.Amount,
			PaymentID:     donation.PaymentID,
			Status:        models.ReceiptStatusSuccess,
			DonationDate:  donation.CreatedAt,
		}
		if err := db.Create(&receipt).Error; err != nil {
			logReconcile("Error backfilling receipt: " + err.Error())
			continue
		}
		logReconcile("Backfilled receipt " + receipt.TransactionID + " for orphaned donation")
	}
}

// StartReconcileJob runs the ledger reconciliation hourly
func StartReconcileJob(c *cron.Cron) {
	c.AddFunc("0 * * * *", func() {
		clampOverfundedCampaigns()
		backfillMissingReceipts()
	})
	logReconcile("Reconcile job started - runs hourly")
}

// InitializeReconcileScheduler initializes the reconciliation scheduler
func InitializeReconcileScheduler() *cron.Cron {
	logReconcile("Initializing reconcile scheduler...")

	c := cron.New()
	StartReconcileJob(c)
	c.Start()

	logReconcile("Reconcile scheduler initialized successfully")
	return c
}
