package database

import (
	"log"
	"recipehub/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Recipe{},
		&models.Comment{},
		&models.Rating{},
		&models.RecipeCollection{},
		&models.UserFollow{},
		&models.Notification{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
