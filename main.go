package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/autocarehub/backend/cron"
	"github.com/autocarehub/backend/db"
	"github.com/autocarehub/backend/redis"
	"github.com/autocarehub/backend/routes"
)

func main() {
	conn, err := db.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	redis.Init()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running successfully...")
	})

	routes.SetupUserRoutes(app, conn)
	routes.SetupProviderRoutes(app, conn)
	routes.SetupBookingRoutes(app, conn)

	cron.StartReminderJobs(conn)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
