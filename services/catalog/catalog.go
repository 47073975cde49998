package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	fullCacheKey  = "catalog:services"
	namesCacheKey = "catalog:services:names"
)

// CatalogService lists the treatment catalog.
type CatalogService interface {
	ListServices(ctx context.Context, namesOnly bool) ([]models.Service, error)
}

// DefaultCatalogService reads the catalog from the repository, caching the
// result in Redis when Cache is set. Cache failures fall back to the repository.
type DefaultCatalogService struct {
	Repo   serviceRepo.ServiceRepository
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, namesOnly bool) ([]models.Service, error) {
	key := fullCacheKey
	if namesOnly {
		key = namesCacheKey
	}

	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	var (
		services []models.Service
		err      error
	)
	if namesOnly {
		services, err = s.Repo.GetNames(ctx)
	} else {
		services, err = s.Repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, key, services)
	return services, nil
}

func (s *DefaultCatalogService) fromCache(ctx context.Context, key string) ([]models.Service, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger().Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		s.logger().Warn("catalog cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return services, true
}

func (s *DefaultCatalogService) toCache(ctx context.Context, key string, services []models.Service) {
	if s.Cache == nil || s.TTL <= 0 {
		return
	}
	raw, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, raw, s.TTL).Err(); err != nil {
		s.logger().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultCatalogService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
