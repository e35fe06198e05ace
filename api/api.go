package main

import (
	"log"
	"maidx/api/modules"
	"maidx/api/routes"
	"maidx/pkg/config"
	"maidx/pkg/database"
	"maidx/pkg/logger"
	"os"

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

	appLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Error creating the logger: %v", err)
	}

	db, err := database.GetConnection()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(appLogger)
	if err != nil {
		log.Fatalf("Error creating the module: %v", err)
	}

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.SongHandler,
		module.TableHandler,
		module.LevelHandler,
		module.ScoreHandler,
		module.RankingHandler,
		module.DailyHandler,
		module.CatalogueHandler,
	)

	// Start the server.
	router.Run(":8080")
}
