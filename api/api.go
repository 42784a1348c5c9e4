package main

import (
	"log"
	"os"
	"riftrewind/api/modules"
	"riftrewind/api/routes"
	"riftrewind/pkg/config"
	"riftrewind/pkg/database"
	"riftrewind/pkg/datalake"
	"riftrewind/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	redisClient, err := redis.NewClient()
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	db, err := database.NewConnection()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting the underlying database handle: %v", err)
	}

	if err := database.RunMigrations(sqlDb); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	deps := &modules.ModuleDependencies{
		DB:    db,
		Redis: redisClient,
		Lake:  datalake.NewClient(),
	}

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(deps)
	if err != nil {
		log.Fatalf("Error starting the handlers: %v", err)
	}

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.PlayerHandler,
		module.SummaryHandler,
		module.InsightsHandler,
		module.ShareHandler,
	)

	// Start the server.
	router.Run(":8080")
}
