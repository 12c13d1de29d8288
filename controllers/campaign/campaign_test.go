package campaignController_test

import (
	"bytes"
	"crowdfund/config"
	campaignController "crowdfund/controllers/campaign"
	"crowdfund/database"
	"crowdfund/middleware"
	"crowdfund/models"
	campaignValidator "crowdfund/validators/campaign"
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
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
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

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Campaign{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Put("/api/campaign/campaigns/:id", campaignValidator.Update(), middleware.JWTMiddleware, middleware.AdminMiddleware, campaignController.UpdateCampaign)
	app.Put("/api/campaign/admin/approve/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, campaignController.ApproveCampaign)
	app.Get("/api/campaign/campaigns/:id", campaignController.GetCampaignById)

	return app, db
}

var adminSeq int

func createAdmin(t *testing.T, db *gorm.DB) string {
	t.Helper()

	adminSeq++
	admin := models.User{Username: "admin", Email: fmt.Sprintf("admin-%d@example.com", adminSeq), Password: "hashed", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.Username, admin.Email, true)
	require.NoError(t, err)
	return token
}

func updateCampaign(t *testing.T, app *fiber.App, token string, id uint, payload fiber.Map) (int, envelope) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/campaign/campaigns/%d", id), bytes.NewReader(body))
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

func TestUpdateBlocksGoalBelowRaised(t *testing.T) {
	app, db := setupApp(t)
	token := createAdmin(t, db)

	campaign := models.Campaign{Title: "GoalEdit", Goal: 1000, Raised: 600, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, env := updateCampaign(t, app, token, campaign.ID, fiber.Map{"goal": 500})

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Goal cannot be lower than current raised amount", env.Message)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(1000), fresh.Goal)
}

func TestUpdateBlocksRaisedAboveGoal(t *testing.T) {
	app, db := setupApp(t)
	token := createAdmin(t, db)

	campaign := models.Campaign{Title: "RaisedEdit", Goal: 1000, Raised: 200, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, env := updateCampaign(t, app, token, campaign.ID, fiber.Map{"raised": 1500})

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Raised cannot exceed goal", env.Message)
}

func TestUpdateAllowsRaisingGoal(t *testing.T) {
	app, db := setupApp(t)
	token := createAdmin(t, db)

	campaign := models.Campaign{Title: "RaiseGoal", Goal: 1000, Raised: 900, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, _ := updateCampaign(t, app, token, campaign.ID, fiber.Map{"goal": 2000})
	assert.Equal(t, fiber.StatusOK, code)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(2000), fresh.Goal)
}

func TestUpdateAllowsJointGoalAndRaisedEdit(t *testing.T) {
	app, db := setupApp(t)
	token := createAdmin(t, db)

	campaign := models.Campaign{Title: "JointEdit", Goal: 1000, Raised: 800, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	// Lowering goal and raised together is fine as long as the pair
	// stays consistent.
	code, _ := updateCampaign(t, app, token, campaign.ID, fiber.Map{"goal": 500, "raised": 400})
	assert.Equal(t, fiber.StatusOK, code)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, float64(500), fresh.Goal)
	assert.Equal(t, float64(400), fresh.Raised)
}

func TestUpdateRejectsNonAdmin(t *testing.T) {
	app, db := setupApp(t)

	user := models.User{Username: "plain", Email: "plain@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email, false)
	require.NoError(t, err)

	campaign := models.Campaign{Title: "NoAccess", Goal: 1000, Status: models.CampaignStatusApproved}
	require.NoError(t, db.Create(&campaign).Error)

	code, _ := updateCampaign(t, app, token, campaign.ID, fiber.Map{"goal": 2000})
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestApprovePendingCampaign(t *testing.T) {
	app, db := setupApp(t)
	token := createAdmin(t, db)

	campaign := models.Campaign{Title: "Moderate", Goal: 1000, Status: models.CampaignStatusPending}
	require.NoError(t, db.Create(&campaign).Error)

	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/campaign/admin/approve/%d", campaign.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, campaign.ID).Error)
	assert.Equal(t, models.CampaignStatusApproved, fresh.Status)
}

func TestGetCampaignByIdNotFound(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/api/campaign/campaigns/424242", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
