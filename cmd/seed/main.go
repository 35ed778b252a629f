package main

import (
	"context"
	"log"

	"hubsite/internal/config"
	"hubsite/internal/db"
	"hubsite/internal/model"
	"hubsite/internal/repository"
	"hubsite/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Bike{}, &model.PetProduct{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	bikeRepo := repository.NewBikeRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	if err := seed.Catalog(context.Background(), bikeRepo, productRepo); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Println("Seed completed")
}
