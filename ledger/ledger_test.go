package ledger

import (
	"crowdfund/models"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// sqlite has no row-level locks; a single connection serializes
	// transactions the way postgres row locks do in production
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Donation{},
		&models.Receipt{},
	))

	return db
}

func createCampaign(t *testing.T, db *gorm.DB, title string, goal, raised float64) models.Campaign {
	t.Helper()

	campaign := models.Campaign{
		Title:  title,
		Goal:   goal,
		Raised: raised,
		Status: models.CampaignStatusApproved,
	}
	require.NoError(t, db.Create(&campaign).Error)
	return campaign
}

func TestReserveRejectsOverDonation(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Overdonate", 5000, 0)

	_, err := Reserve(db, campaign.ID, 6000)

	var exceeds *AmountExceedsRemainingError
	require.ErrorAs(t, err, &exceeds)
	assert.Equal(t, float64(5000), exceeds.Remaining)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(0), fresh.Raised)
}

func TestReserveExactFulfillment(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "ExactFulfill", 5000, 0)

	res, err := Reserve(db, campaign.ID, 5000)
	require.NoError(t, err)

	assert.True(t, res.Fulfilled)
	assert.Equal(t, float64(5000), res.Campaign.Raised)
}

func TestReservePartialLeavesHeadroom(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Partial", 5000, 0)

	res, err := Reserve(db, campaign.ID, 1200)
	require.NoError(t, err)

	assert.False(t, res.Fulfilled)
	assert.Equal(t, float64(1200), res.Campaign.Raised)
}

func TestReserveGoalAlreadyFulfilled(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Fulfilled", 100, 100)

	_, err := Reserve(db, campaign.ID, 10)
	require.ErrorIs(t, err, ErrGoalFulfilled)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(100), fresh.Raised)
}

func TestReserveInvalidInput(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Invalid", 1000, 0)

	for _, amount := range []float64{0, -50, math.NaN(), math.Inf(1)} {
		_, err := Reserve(db, campaign.ID, amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	_, err := Reserve(db, 0, 100)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestReserveUnknownCampaign(t *testing.T) {
	db := setupTestDb(t)

	_, err := Reserve(db, 99999, 100)
	require.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestDonateContention(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Concurrent", 5000, 4900)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = Donate(db, Contribution{
				CampaignID: campaign.ID,
				DonorID:    uint(i + 1),
				Amount:     100,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.True(t, IsRejection(err), "loser must get a business rejection, got %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent donation must win")

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(5000), fresh.Raised)

	var donations int64
	require.NoError(t, db.Model(&models.Donation{}).Where("campaign_id = ?", campaign.ID).Count(&donations).Error)
	assert.Equal(t, int64(1), donations)
}

func TestDonateConservation(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Conservation", 1000, 0)

	// 15 donors race for 10 slots of 100 each
	var wg sync.WaitGroup
	errs := make([]error, 15)
	for i := 0; i < 15; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = Donate(db, Contribution{
				CampaignID: campaign.ID,
				DonorID:    uint(i + 1),
				Amount:     100,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 10, succeeded)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(1000), fresh.Raised)
	assert.LessOrEqual(t, fresh.Raised, fresh.Goal)

	var total float64
	require.NoError(t, db.Model(&models.Donation{}).
		Where("campaign_id = ?", campaign.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error)
	assert.Equal(t, fresh.Raised, total, "raised must equal the sum of recorded donations")
}

func TestDonateReceiptTransactionIDsUnique(t *testing.T) {
	db := setupTestDb(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		campaign := createCampaign(t, db, fmt.Sprintf("Campaign-%d", i), 500, 0)

		result, err := Donate(db, Contribution{
			CampaignID: campaign.ID,
			DonorID:    1,
			Amount:     250,
		})
		require.NoError(t, err)

		id := result.Receipt.TransactionID
		assert.True(t, strings.HasPrefix(id, "RCP-"), "unexpected transaction id %q", id)
		assert.False(t, seen[id], "duplicate transaction id %q", id)
		seen[id] = true
	}
}

func TestDonatePersistsPaymentReference(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Gateway", 5000, 0)

	result, err := Donate(db, Contribution{
		CampaignID: campaign.ID,
		DonorID:    7,
		Amount:     300,
		PaymentID:  "pay_MkWvQ3gH9Z2xTn",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_MkWvQ3gH9Z2xTn", result.Receipt.PaymentID)

	var donation models.Donation
	require.NoError(t, db.First(&donation, result.Receipt.DonationID).Error)
	assert.Equal(t, "pay_MkWvQ3gH9Z2xTn", donation.PaymentID)
}

func TestDonateRollsBackReservationOnRecordFailure(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Rollback", 5000, 0)

	// With the receipts table gone the recorder's insert fails after the
	// reservation already committed inside the transaction.
	require.NoError(t, db.Migrator().DropTable(&models.Receipt{}))

	_, err := Donate(db, Contribution{
		CampaignID: campaign.ID,
		DonorID:    1,
		Amount:     100,
	})
	require.Error(t, err)
	assert.False(t, IsRejection(err))

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(0), fresh.Raised, "reservation must roll back when recording fails")

	var donations int64
	require.NoError(t, db.Model(&models.Donation{}).Where("campaign_id = ?", campaign.ID).Count(&donations).Error)
	assert.Equal(t, int64(0), donations)
}

func TestDonateRejectionIsTerminal(t *testing.T) {
	db := setupTestDb(t)
	campaign := createCampaign(t, db, "Terminal", 5000, 0)

	_, err := Donate(db, Contribution{CampaignID: campaign.ID, DonorID: 1, Amount: 6000})

	var exceeds *AmountExceedsRemainingError
	require.ErrorAs(t, err, &exceeds)

	var donations, receipts int64
	require.NoError(t, db.Model(&models.Donation{}).Count(&donations).Error)
	require.NoError(t, db.Model(&models.Receipt{}).Count(&receipts).Error)
	assert.Zero(t, donations)
	assert.Zero(t, receipts)
}
