package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/classumlab/classroom-backend/internal/config"
	"github.com/classumlab/classroom-backend/internal/model"
)

// ClassStore is the persistence surface ClassService needs.
// *repository.ClassRepository satisfies it.
type ClassStore interface {
	List(ctx context.Context) ([]model.ClassRecord, error)
	GetByID(ctx context.Context, id int) (*model.ClassRecord, error)
	Create(ctx context.Context, in model.ClassInput) (*model.ClassRecord, error)
	Update(ctx context.Context, id int, in model.ClassInput) (*model.ClassRecord, error)
	Delete(ctx context.Context, id int) error
}

// ClassService wraps the class adapter with a read-through cache on the
// listing and on single records. Every write invalidates the affected
// keys; cache failures degrade to the database and are never surfaced to
// the caller.
type ClassService struct {
	store ClassStore
	cache Cache
	cfg   *config.Config
	log   zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(store ClassStore, cache Cache, cfg *config.Config, log zerolog.Logger) *ClassService {
	return &ClassService{
		store: store,
		cache: cache,
		cfg:   cfg,
		log:   log.With().Str("component", "class_service").Logger(),
	}
}

// List retrieves all classes, serving from cache when possible.
func (s *ClassService) List(ctx context.Context) ([]model.ClassRecord, error) {
	key := config.CacheKey.ClassListKey()

	if data, found, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("Class list cache read failed")
	} else if found {
		var records []model.ClassRecord
		if json.Unmarshal(data, &records) == nil {
			return records, nil
		}
	}

	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	s.put(ctx, key, records)
	return records, nil
}

// GetByID retrieves a single class, serving from cache when possible.
func (s *ClassService) GetByID(ctx context.Context, id int) (*model.ClassRecord, error) {
	key := config.CacheKey.ClassKey(id)

	if data, found, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("Class cache read failed")
	} else if found {
		var rec model.ClassRecord
		if json.Unmarshal(data, &rec) == nil {
			return &rec, nil
		}
	}

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.put(ctx, key, rec)
	return rec, nil
}

// Create creates a new class and invalidates the listing cache.
func (s *ClassService) Create(ctx context.Context, in model.ClassInput) (*model.ClassRecord, error) {
	rec, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, config.CacheKey.ClassListKey())
	return rec, nil
}

// Update applies a partial update and invalidates the affected cache keys.
func (s *ClassService) Update(ctx context.Context, id int, in model.ClassInput) (*model.ClassRecord, error) {
	rec, err := s.store.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, config.CacheKey.ClassListKey(), config.CacheKey.ClassKey(id))
	return rec, nil
}

// Delete removes a class and invalidates the affected cache keys.
func (s *ClassService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, config.CacheKey.ClassListKey(), config.CacheKey.ClassKey(id))
	return nil
}

func (s *ClassService) put(ctx context.Context, key string, v any) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, encoded, s.cfg.ClassCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Class cache write failed")
	}
}

func (s *ClassService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Strs("keys", keys).Msg("Class cache invalidation failed")
	}
}
