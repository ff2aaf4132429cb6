package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Store for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE ALL DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all rooms and assignments")
	fmt.Println("  - Delete all payments")
	fmt.Println("  - Delete all users (the seed admin returns on next read)")
	fmt.Println("  - Delete the activity log, feedback and settings")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	// Load environment variables
	godotenv.Load()

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "rms_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("Resetting store...")

	ctx := context.Background()

	// Every document lives in the collections table; wiping it resets the
	// whole system. The seed admin is re-materialized on the next read.
	result, err := pool.Exec(ctx, "DELETE FROM collections")
	if err != nil {
		log.Fatalf("Failed to reset collections: %v\n", err)
	}

	fmt.Printf("Done. %d collection(s) removed.\n", result.RowsAffected())
	fmt.Println("Login with admin / password123 after restart.")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
