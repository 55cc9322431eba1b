package main

import (
	"log"
	"os"

	"roomlink-be/internal/model"
	"roomlink-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Feature Catalog...")

	// Gated capabilities of the rental marketplace. Absent rows are treated
	// as free, so seeding only matters for the paid ones.
	settings := []model.FeatureSetting{
		{FeatureName: "featured_listing", IsLocked: true, UnlockPrice: 50000, DurationValue: 1, DurationType: "months"},
		{FeatureName: "contact_reveal", IsLocked: true, UnlockPrice: 15000, DurationValue: 1, DurationType: "weeks"},
		{FeatureName: "bulk_broadcast", IsLocked: true, UnlockPrice: 100000, DurationValue: 1, DurationType: "months"},
		{FeatureName: "priority_placement", IsLocked: true, UnlockPrice: 75000, DurationValue: 2, DurationType: "weeks"},
		{FeatureName: "listing_analytics", IsLocked: false, UnlockPrice: 0, DurationValue: 1, DurationType: "years"},
	}

	for _, setting := range settings {
		result := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "feature_name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_locked", "unlock_price", "duration_value", "duration_type", "updated_at",
			}),
		}).Create(&setting)
		if result.Error != nil {
			color.Red("  ✗ %s: %v", setting.FeatureName, result.Error)
			continue
		}
		color.Green("  ✓ %s (locked=%v, %d %s)", setting.FeatureName, setting.IsLocked, setting.DurationValue, setting.DurationType)
	}

	color.Cyan("Done.")
}
