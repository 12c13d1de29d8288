package donationController_test

import (
	"bytes"
	"crowdfund/config"
	donationController "crowdfund/controllers/donation"
	"crowdfund/database"
	"crowdfund/middleware"
	"crowdfund/models"
	donationValidator "crowdfund/validators/donation"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Donation{},
		&models.Receipt{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/api/donation/donate", donationValidator.Donate(), middleware.JWTMiddleware, donationController.Donate)
	app.Get("/api/donation/receipts", middleware.JWTMiddleware, donationController.GetUserReceipts)

	return app, db
}

var donorSeq int

func createDonor(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()

	donorSeq++
	user := models.User{Username: "testuser", Email: fmt.Sprintf("donor-%d@example.com", donorSeq), Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email, false)
	require.NoError(t, err)
	return user, token
}

func donate(t *testing.T, app *fiber.App, token string, campaignID uint, amount float64) (int, envelope) {
	t.Helper()

	body, err := json.Marshal(fiber.Map{"campaignId": campaignID, "amount": amount})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/donation/donate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestDonateRejectsOverDonation(t *testing.T) {
	app, db := setupApp(t)
	_, token := createDonor(t, db)

	campaign := models.Campaign{Title: "Overdonate", Goal: 5000, Raised: 0, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, env := donate(t, app, token, campaign.ID, 6000)

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "You can only donate up to 5000", env.Message)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(0), fresh.Raised)
}

func TestDonateExactFulfillment(t *testing.T) {
	app, db := setupApp(t)
	_, token := createDonor(t, db)

	campaign := models.Campaign{Title: "ExactFulfill", Goal: 5000, Raised: 0, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, env := donate(t, app, token, campaign.ID, 5000)

	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "Donation fulfilled successfully", env.Message)
	assert.NotNil(t, env.Data["receiptId"])

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(5000), fresh.Raised)
}

func TestDonatePartial(t *testing.T) {
	app, db := setupApp(t)
	_, token := createDonor(t, db)

	campaign := models.Campaign{Title: "Partial", Goal: 5000, Raised: 0, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, env := donate(t, app, token, campaign.ID, 1000)

	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "Donation successful", env.Message)
}

func TestDonateGoalAlreadyFulfilled(t *testing.T) {
	app, db := setupApp(t)
	_, token := createDonor(t, db)

	campaign := models.Campaign{Title: "Fulfilled", Goal: 100, Raised: 100, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, env := donate(t, app, token, campaign.ID, 10)

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Campaign goal already fulfilled", env.Message)
}

func TestDonateUnknownCampaign(t *testing.T) {
	app, db := setupApp(t)
	_, token := createDonor(t, db)

	code, env := donate(t, app, token, 99999, 100)

	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Campaign not found", env.Message)
}

func TestDonateRequiresAuth(t *testing.T) {
	app, _ := setupApp(t)

	body, _ := json.Marshal(fiber.Map{"campaignId": 1, "amount": 100})
	req := httptest.NewRequest("POST", "/api/donation/donate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDonateInvalidAmountFailsValidation(t *testing.T) {
	app, db := setupApp(t)
	_, token := createDonor(t, db)

	code, _ := donate(t, app, token, 1, -50)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestReceiptsListedForDonor(t *testing.T) {
	app, db := setupApp(t)
	_, token := createDonor(t, db)

	campaign := models.Campaign{Title: "Receipts", Goal: 5000, Raised: 0, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, _ := donate(t, app, token, campaign.ID, 700)
	require.Equal(t, fiber.StatusCreated, code)

	req := httptest.NewRequest("GET", "/api/donation/receipts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Status bool             `json:"status"`
		Data   []models.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Receipts", env.Data[0].CampaignTitle)
	assert.Equal(t, float64(700), env.Data[0].Amount)
}
