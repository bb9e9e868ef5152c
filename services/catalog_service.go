// services/catalog_service.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"rental-backend/models"
)

const (
	cacheKeyCategories   = "catalog:categories"
	cacheKeyConveniences = "catalog:conveniences"
	cacheKeyTypes        = "catalog:types"
)

// CatalogService serves the reference data behind search facets. The lists
// change rarely, so they are cached in redis when a client is configured;
// with Cache nil every call goes straight to the database.
type CatalogService struct {
	DB    *gorm.DB
	Cache *redis.Client
	TTL   time.Duration
}

func NewCatalogService(db *gorm.DB, cache *redis.Client) *CatalogService {
	return &CatalogService{DB: db, Cache: cache, TTL: 10 * time.Minute}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if s.fromCache(ctx, cacheKeyCategories, &categories) {
		return categories, nil
	}
	err := s.DB.Where("is_active = ?", true).Order("id DESC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyCategories, categories)
	return categories, nil
}

func (s *CatalogService) Conveniences(ctx context.Context) ([]models.Convenience, error) {
	var conveniences []models.Convenience
	if s.fromCache(ctx, cacheKeyConveniences, &conveniences) {
		return conveniences, nil
	}
	err := s.DB.Where("is_active = ?", true).Order("id DESC").Find(&conveniences).Error
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyConveniences, conveniences)
	return conveniences, nil
}

func (s *CatalogService) Types(ctx context.Context) ([]models.PropertyType, error) {
	var types []models.PropertyType
	if s.fromCache(ctx, cacheKeyTypes, &types) {
		return types, nil
	}
	err := s.DB.Order("created_at DESC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyTypes, types)
	return types, nil
}

func (s *CatalogService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if s.Cache == nil {
		return false
	}
	raw, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *CatalogService) toCache(ctx context.Context, key string, value interface{}) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, raw, s.TTL).Err(); err != nil {
		log.Printf("warning: failed to cache %s: %v", key, err)
	}
}
