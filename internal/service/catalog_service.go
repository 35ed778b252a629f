package service

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"hubsite/internal/cache"
	apperrors "hubsite/internal/errors"
	"hubsite/internal/model"
	"hubsite/internal/repository"
)

const (
	catalogCacheTTL  = 5 * time.Minute
	bikesCacheKey    = "catalog:bikes"
	productsCacheKey = "catalog:products"
)

// CatalogService exposes read-only access to bikes and pet products.
type CatalogService interface {
	ListBikes(ctx context.Context) ([]model.Bike, error)
	GetBike(ctx context.Context, id uint) (*model.Bike, error)
	ListProducts(ctx context.Context) ([]model.PetProduct, error)
	ProductsByIDs(ctx context.Context, ids []uint) ([]model.PetProduct, error)
}

type catalogService struct {
	bikes    repository.BikeRepository
	products repository.ProductRepository
	cache    *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(bikes repository.BikeRepository, products repository.ProductRepository, cache *cache.Client) CatalogService {
	return &catalogService{bikes: bikes, products: products, cache: cache}
}

// ListBikes returns the bike catalog, served from cache when warm.
func (s *catalogService) ListBikes(ctx context.Context) ([]model.Bike, error) {
	if data, _ := s.cache.Get(ctx, bikesCacheKey); data != nil {
		var cached []model.Bike
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	bikes, err := s.bikes.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(bikes); err == nil {
		_ = s.cache.Set(ctx, bikesCacheKey, payload, catalogCacheTTL)
	}
	return bikes, nil
}

// GetBike looks up one bike, ErrNotFound for an unknown id.
func (s *catalogService) GetBike(ctx context.Context, id uint) (*model.Bike, error) {
	bike, err := s.bikes.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return bike, nil
}

// ListProducts returns the pet product catalog, served from cache when warm.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.PetProduct, error) {
	if data, _ := s.cache.Get(ctx, productsCacheKey); data != nil {
		var cached []model.PetProduct
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, productsCacheKey, payload, catalogCacheTTL)
	}
	return products, nil
}

// ProductsByIDs materializes cart ids against the current catalog. An empty
// id set short-circuits to an empty result.
func (s *catalogService) ProductsByIDs(ctx context.Context, ids []uint) ([]model.PetProduct, error) {
	return s.products.FindByIDs(ctx, ids)
}
