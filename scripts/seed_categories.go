//go:build ignore

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"questgen/domain/models"
)

// Starter categories สำหรับ environment ใหม่
// รันซ้ำได้ ชื่อที่มีอยู่แล้วจะถูกข้าม
var starterCategories = []string{
	"Sport",
	"Creativity",
	"Learning",
	"Cooking",
	"Social",
}

func main() {
	fmt.Println("============================================")
	fmt.Println("  questgen - Seed Starter Categories")
	fmt.Println("============================================")
	fmt.Println()

	_ = godotenv.Load()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "postgres"),
		envOr("DB_NAME", "questgen"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSL_MODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Category{}); err != nil {
		log.Fatalf("Failed to migrate categories table: %v", err)
	}

	created := 0
	for _, name := range starterCategories {
		err := db.Create(&models.Category{Name: name}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fmt.Printf("  - %-12s (already exists, skipped)\n", name)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create category %q: %v", name, err)
		}
		fmt.Printf("  + %-12s\n", name)
		created++
	}

	fmt.Println()
	fmt.Printf("Done. %d categories created.\n", created)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
