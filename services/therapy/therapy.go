package therapy

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	therapyRepo "ayursutra/database/repository/therapy"
	"ayursutra/models"
	"ayursutra/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	activeListCacheKey = "therapies:active"
	activeListCacheTTL = 5 * time.Minute
)

// CreateInput carries the fields for a new therapy entry.
type CreateInput struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	DurationDays     int      `json:"durationDays"`
	Price            float64  `json:"price"`
	DailyCapacity    int      `json:"dailyCapacity,omitempty"`
	PreInstructions  []string `json:"preInstructions"`
	PostInstructions []string `json:"postInstructions"`
}

// TherapyService manages the therapy catalog.
type TherapyService interface {
	Create(createdBy string, input CreateInput) (*models.Therapy, error)
	GetByID(id string) (*models.Therapy, error)
	ListActive() ([]models.Therapy, error)
}

// DefaultTherapyService implements TherapyService. Cache is optional; when
// set, the active catalog list is served from Redis between writes.
type DefaultTherapyService struct {
	Repo  therapyRepo.TherapyRepository
	Cache *redis.Client
}

func (s *DefaultTherapyService) Create(createdBy string, input CreateInput) (*models.Therapy, error) {
	if input.Name == "" || input.Description == "" {
		return nil, errors.New("name and description are required")
	}
	if input.DurationDays <= 0 {
		return nil, errors.New("durationDays must be positive")
	}
	if input.DailyCapacity < 0 {
		return nil, errors.New("dailyCapacity cannot be negative")
	}
	capacity := input.DailyCapacity
	if capacity == 0 {
		capacity = models.DefaultDailyCapacity
	}

	t := &models.Therapy{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Description:      input.Description,
		DurationDays:     input.DurationDays,
		Price:            input.Price,
		DailyCapacity:    capacity,
		PreInstructions:  input.PreInstructions,
		PostInstructions: input.PostInstructions,
		IsActive:         true,
		CreatedBy:        createdBy,
		CreatedAt:        time.Now(),
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	s.invalidateActiveList()
	return t, nil
}

func (s *DefaultTherapyService) GetByID(id string) (*models.Therapy, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultTherapyService) ListActive() ([]models.Therapy, error) {
	if cached, ok := s.cachedActiveList(); ok {
		return cached, nil
	}

	therapies, err := s.Repo.GetActive()
	if err != nil {
		return nil, err
	}
	s.storeActiveList(therapies)
	return therapies, nil
}

func (s *DefaultTherapyService) cachedActiveList() ([]models.Therapy, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, activeListCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Therapy cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var therapies []models.Therapy
	if err := json.Unmarshal(raw, &therapies); err != nil {
		utils.GetLogger().Warn("Therapy cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return therapies, true
}

func (s *DefaultTherapyService) storeActiveList(therapies []models.Therapy) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(therapies)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, activeListCacheKey, raw, activeListCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Therapy cache write failed", zap.Error(err))
	}
}

func (s *DefaultTherapyService) invalidateActiveList() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, activeListCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Therapy cache invalidation failed", zap.Error(err))
	}
}
