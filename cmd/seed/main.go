package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"recipehub/database"
	"recipehub/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of dummy users to create")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)

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
		seedCmd.Parse(os.Args[2:])
		if err := utils.SeedDemoData(database.DB, *numUsers); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	case "clear":
		clearCmd.Parse(os.Args[2:])
		if err := utils.CleanupDemoData(database.DB); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  seed [-users N]   Seed demo users, recipes, follows and collections")
	fmt.Println("  clear             Remove all seeded demo data")
}
