package main

import (
	"fmt"
	"log"
	"os"

	"fitnutri/database"
	"fitnutri/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		if err := utils.SeedRecipes(database.DB); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Seeding completed successfully")
	case "clear":
		if err := utils.ClearRecipes(database.DB); err != nil {
			log.Fatalf("Clearing failed: %v", err)
		}
		log.Println("Recipes cleared successfully")
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed   Insert the starter recipe catalog (skips existing titles)")
	fmt.Println("  clear  Remove all recipes from the database")
}
