package database

import (
	"log"

	"fitnutri/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.UserProfile{},
		&models.Recipe{},
		&models.ShoppingItem{},
		&models.RecipeReport{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
