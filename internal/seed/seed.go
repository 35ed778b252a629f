package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"hubsite/internal/model"
	"hubsite/internal/repository"
)

func defaultBikes() []model.Bike {
	return []model.Bike{
		{Name: "Trailblazer 29", Type: "Mountain", PricePerDay: decimal.NewFromInt(900), Description: "Full-suspension trail bike for rough terrain.", ImageURL: "/static/img/bikes/trailblazer.jpg"},
		{Name: "Roadster S1", Type: "Road", PricePerDay: decimal.NewFromInt(750), Description: "Lightweight road bike built for speed.", ImageURL: "/static/img/bikes/roadster.jpg"},
		{Name: "City Cruiser", Type: "City", PricePerDay: decimal.NewFromInt(500), Description: "Comfortable upright ride for errands around town.", ImageURL: "/static/img/bikes/cruiser.jpg"},
		{Name: "Volt E-Ride", Type: "Electric", PricePerDay: decimal.NewFromInt(1200), Description: "Pedal-assist e-bike with a 60 km range.", ImageURL: "/static/img/bikes/volt.jpg"},
	}
}

func defaultProducts() []model.PetProduct {
	return []model.PetProduct{
		{Name: "Premium Dog Food 5kg", Category: "Food", Price: decimal.NewFromInt(100), Description: "Grain-free dry food for adult dogs.", ImageURL: "/static/img/pets/dogfood.jpg"},
		{Name: "Cat Scratching Post", Category: "Toys", Price: decimal.NewFromInt(50), Description: "Sisal post with a plush perch.", ImageURL: "/static/img/pets/scratcher.jpg"},
		{Name: "Aquarium Starter Kit", Category: "Fish", Price: decimal.NewFromInt(250), Description: "20L tank with filter and LED light.", ImageURL: "/static/img/pets/aquarium.jpg"},
		{Name: "Bird Seed Mix 1kg", Category: "Food", Price: decimal.NewFromInt(30), Description: "Mixed seed for small parrots and finches.", ImageURL: "/static/img/pets/birdseed.jpg"},
		{Name: "Chew Rope Toy", Category: "Toys", Price: decimal.NewFromInt(20), Description: "Braided cotton rope for teething puppies.", ImageURL: "/static/img/pets/rope.jpg"},
	}
}

// Catalog inserts the default bikes and pet products when their tables are
// empty. Existing catalogs are left untouched.
func Catalog(ctx context.Context, bikes repository.BikeRepository, products repository.ProductRepository) error {
	bikeCount, err := bikes.Count(ctx)
	if err != nil {
		return fmt.Errorf("count bikes: %w", err)
	}
	if bikeCount == 0 {
		if err := bikes.CreateBatch(ctx, defaultBikes()); err != nil {
			return fmt.Errorf("seed bikes: %w", err)
		}
		log.Printf("seeded %d bikes", len(defaultBikes()))
	}

	productCount, err := products.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if productCount == 0 {
		if err := products.CreateBatch(ctx, defaultProducts()); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		log.Printf("seeded %d pet products", len(defaultProducts()))
	}

	return nil
}
