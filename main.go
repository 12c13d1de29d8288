package main

import (
	"crowdfund/config"
	"crowdfund/database"
	adminRoutes "crowdfund/routers/adminRoutes"
	authRoutes "crowdfund/routers/authRoutes"
	campaignRoutes "crowdfund/routers/campaignRoutes"
	contactRoutes "crowdfund/routers/contactRoutes"
	donationRoutes "crowdfund/routers/donationRoutes"
	paymentRoutes "crowdfund/routers/paymentRoutes"
	"crowdfund/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	campaignRoutes.SetupCampaignRoutes(app)
	donationRoutes.SetupDonationRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	contactRoutes.SetupContactRoutes(app)

	utils.InitializeReconcileScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
