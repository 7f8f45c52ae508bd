package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"gramola/internal/config"
	"gramola/internal/db"
	"gramola/internal/model"
	"gramola/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.SubscriptionPlan{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	planRepo := repository.NewPlanRepository(gormDB)
	ctx := context.Background()

	count, err := planRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count plans: %v", err)
	}
	if count > 0 {
		log.Printf("Plans already present (%d rows), nothing to do", count)
		return
	}

	plans := model.DefaultPlans()
	if err := planRepo.CreateBatch(ctx, plans); err != nil {
		log.Fatalf("Failed to seed plans: %v", err)
	}

	log.Printf("Seed completed successfully!")
	for _, plan := range plans {
		log.Printf("  - %s: %s EUR (%s)", plan.ID, plan.Price.StringFixed(2), plan.Description)
	}
}
