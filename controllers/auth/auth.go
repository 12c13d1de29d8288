package authController

import (
	"crowdfund/config"
	"crowdfund/database"
	"crowdfund/middleware"
	"crowdfund/models"
	"crowdfund/utils"
	authValidator "crowdfund/validators/auth"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Home is a health/welcome endpoint
func Home(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome to our home page", nil)
}

// Signup registers a new user
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Username, newUser.Email, newUser.IsAdmin)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Username)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration Successful", fiber.Map{
		"token":  token,
		"userId": newUser.ID,
	})
}

// Login authenticates a user and returns a JWT
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email, user.IsAdmin)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login Successful", fiber.Map{
		"token":  token,
		"userId": user.ID,
	})
}

// CurrentUser returns the authenticated user's profile
func CurrentUser(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user)
}

// SendOtp emails a registration OTP to a new email address
func SendOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOtp").(*authValidator.SendOtpRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already exists", nil)
	}

	code := utils.GenerateOTP()
	otp := models.OTP{
		Email:     reqData.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := db.Create(&otp).Error; err != nil {
		log.Printf("Error saving OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error", nil)
	}

	if err := utils.SendOTPEmail(code, reqData.Email); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error sending email", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully", nil)
}

// VerifyOtp checks a registration OTP
func VerifyOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyOtp").(*authValidator.VerifyOtpRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var otp models.OTP
	if err := db.Where("email = ? AND code = ? AND is_used = false AND expires_at > ?",
		reqData.Email, reqData.Code, time.Now()).
		Order("created_at DESC").First(&otp).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired OTP!", nil)
	}

	otp.IsUsed = true
	if err := db.Save(&otp).Error; err != nil {
		log.Printf("Error updating OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error", nil)
	}

	// Flag the account as verified when it already exists
	db.Model(&models.User{}).Where("email = ?", reqData.Email).Update("is_email_verified", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP verified successfully", nil)
}
