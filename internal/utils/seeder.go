package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"

	"recipehub/internal/models"

	"gorm.io/gorm"
)

const DefaultNumUsers = 50

var seedCategories = []string{
	models.CategoryBreakfast,
	models.CategoryLunch,
	models.CategoryDinner,
}

// SeedDemoData populates the database with test users, recipes, follows,
// ratings and collections so the ranking reports have something to show.
func SeedDemoData(db *gorm.DB, numUsers int) error {
	if numUsers <= 0 {
		numUsers = DefaultNumUsers
	}

	hash, err := HashPassword("TestPassword123!")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]models.User, 0, numUsers)
	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Username: fmt.Sprintf("testuser%d", i),
			Email:    fmt.Sprintf("testuser%d@example.com", i),
			Password: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create seed user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))

	recipes := make([]models.Recipe, 0, numUsers*2)
	for _, user := range users {
		for j := 0; j < 1+mathrand.Intn(3); j++ {
			recipe := models.Recipe{
				Title:        fmt.Sprintf("%s's recipe %d", user.Username, j+1),
				Ingredients:  "2 eggs, 1 cup flour, a pinch of salt",
				Instructions: "Mix everything and cook until done.",
				Category:     seedCategories[mathrand.Intn(len(seedCategories))],
				CookingTime:  10 + mathrand.Intn(50),
				AuthorID:     user.ID,
			}
			if err := db.Create(&recipe).Error; err != nil {
				return fmt.Errorf("failed to create seed recipe: %w", err)
			}
			recipes = append(recipes, recipe)
		}
	}
	log.Printf("Seeded %d recipes", len(recipes))

	for _, user := range users {
		target := users[mathrand.Intn(len(users))]
		if target.ID == user.ID {
			continue
		}
		edge := models.UserFollow{FollowerID: user.ID, FollowedID: target.ID}
		if err := db.Where("follower_id = ? AND followed_id = ?", user.ID, target.ID).
			FirstOrCreate(&edge).Error; err != nil {
			return fmt.Errorf("failed to create seed follow: %w", err)
		}

		recipe := recipes[mathrand.Intn(len(recipes))]
		if recipe.AuthorID != user.ID {
			rating := models.Rating{
				RecipeID: recipe.ID,
				AuthorID: user.ID,
				Score:    1 + mathrand.Intn(5),
			}
			if err := db.Where("recipe_id = ? AND author_id = ?", recipe.ID, user.ID).
				FirstOrCreate(&rating).Error; err != nil {
				return fmt.Errorf("failed to create seed rating: %w", err)
			}
		}

		collection := models.RecipeCollection{
			Name:   fmt.Sprintf("%s's favorites", user.Username),
			UserID: user.ID,
		}
		if err := db.Create(&collection).Error; err != nil {
			return fmt.Errorf("failed to create seed collection: %w", err)
		}
		for j := 0; j < 1+mathrand.Intn(4); j++ {
			member := recipes[mathrand.Intn(len(recipes))]
			if err := db.Model(&collection).Association("Recipes").Append(&member); err != nil {
				return fmt.Errorf("failed to fill seed collection: %w", err)
			}
		}
	}
	log.Println("Seeded follows, ratings and collections")

	return nil
}

// CleanupDemoData removes everything SeedDemoData created, keyed off the
// test email pattern.
func CleanupDemoData(db *gorm.DB) error {
	var users []models.User
	if err := db.Where("email LIKE ?", "testuser%@example.com").Find(&users).Error; err != nil {
		return err
	}
	if len(users) == 0 {
		log.Println("No seeded users found")
		return nil
	}

	ids := make([]uint, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	var collections []models.RecipeCollection
	if err := db.Where("user_id IN ?", ids).Find(&collections).Error; err != nil {
		return err
	}
	for i := range collections {
		if err := db.Model(&collections[i]).Association("Recipes").Clear(); err != nil {
			return err
		}
	}

	steps := []error{
		db.Where("user_id IN ?", ids).Delete(&models.RecipeCollection{}).Error,
		db.Where("author_id IN ?", ids).Delete(&models.Rating{}).Error,
		db.Where("author_id IN ?", ids).Delete(&models.Comment{}).Error,
		db.Where("follower_id IN ? OR followed_id IN ?", ids, ids).Delete(&models.UserFollow{}).Error,
		db.Where("recipient_id IN ?", ids).Delete(&models.Notification{}).Error,
		db.Where("author_id IN ?", ids).Delete(&models.Recipe{}).Error,
		db.Where("user_id IN ?", ids).Delete(&models.Profile{}).Error,
		db.Where("id IN ?", ids).Delete(&models.User{}).Error,
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}

	log.Printf("Removed %d seeded users and their data", len(users))
	return nil
}
