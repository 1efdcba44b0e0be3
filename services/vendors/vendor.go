package vendors

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"petalflow/models"
	"petalflow/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultEventTypes is the platform fallback served when a vendor has not
// configured event types of their own.
var DefaultEventTypes = []models.EventType{
	{ID: "wedding", Name: "Wedding"},
	{ID: "elopement", Name: "Elopement"},
	{ID: "engagement", Name: "Engagement Party"},
	{ID: "rehearsal-dinner", Name: "Rehearsal Dinner"},
	{ID: "bridal-shower", Name: "Bridal Shower"},
	{ID: "other", Name: "Other Celebration"},
}

// GetVendorBySlug resolves a vendor by slug, consulting the cache first.
func (s *DefaultVendorService) GetVendorBySlug(slug string) (*models.Vendor, error) {
	logger := utils.GetLogger()
	cacheKey := utils.VendorCachePrefix + "slug:" + slug

	if s.CacheClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		cached, err := s.CacheClient.Get(ctx, cacheKey).Result()
		cancel()
		if err == nil {
			var vendor models.Vendor
			if jsonErr := json.Unmarshal([]byte(cached), &vendor); jsonErr == nil {
				return &vendor, nil
			}
		} else if err != redis.Nil {
			logger.Debug("vendor cache read failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	vendor, err := s.Repo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vendor %q: %w", slug, err)
	}

	if s.CacheClient != nil {
		if data, jsonErr := json.Marshal(vendor); jsonErr == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := s.CacheClient.Set(ctx, cacheKey, data, utils.VendorCacheTTL).Err(); err != nil {
				logger.Debug("vendor cache write failed", zap.String("slug", slug), zap.Error(err))
			}
			cancel()
		}
	}
	return vendor, nil
}

// GetEventTypes returns the vendor's event types or the platform defaults.
// A repository failure also falls back; the wizard can always render a list.
func (s *DefaultVendorService) GetEventTypes(vendorID string) (*models.EventTypesResult, error) {
	eventTypes, err := s.Repo.GetEventTypes(vendorID)
	if err != nil {
		utils.GetLogger().Warn("event types lookup failed, serving defaults",
			zap.String("vendorId", vendorID), zap.Error(err))
		return &models.EventTypesResult{EventTypes: DefaultEventTypes, IsDefault: true}, nil
	}
	if len(eventTypes) == 0 {
		return &models.EventTypesResult{EventTypes: DefaultEventTypes, IsDefault: true}, nil
	}
	return &models.EventTypesResult{EventTypes: eventTypes, IsDefault: false}, nil
}
