package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type offenseRepository interface {
	List(ctx context.Context, filter models.OffenseFilter) ([]models.OffenseClassification, error)
	GetByID(ctx context.Context, id string) (*models.OffenseClassification, error)
	Create(ctx context.Context, offense *models.OffenseClassification) error
	Update(ctx context.Context, offense *models.OffenseClassification) error
}

// CacheRepository abstracts the JSON cache in front of reference data.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// OffenseCacheConfig toggles caching of classification listings.
type OffenseCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// OffenseService manages the offense classification reference table.
type OffenseService struct {
	repo      offenseRepository
	cache     CacheRepository
	cacheCfg  OffenseCacheConfig
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOffenseService constructs the service. cache may be nil.
func NewOffenseService(repo offenseRepository, cache CacheRepository, cacheCfg OffenseCacheConfig, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *OffenseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cacheCfg.TTL <= 0 {
		cacheCfg.TTL = time.Hour
	}
	return &OffenseService{repo: repo, cache: cache, cacheCfg: cacheCfg, metrics: metrics, validator: validate, logger: logger}
}

// List returns classifications with their default action filled in.
func (s *OffenseService) List(ctx context.Context, filter models.OffenseFilter) ([]models.OffenseClassification, error) {
	key := fmt.Sprintf("list:%s:%t:%s", filter.Severity, filter.ActiveOnly, filter.Search)
	if s.cacheEnabled() {
		var cached []models.OffenseClassification
		start := time.Now()
		err := s.cache.Get(ctx, key, &cached)
		s.metrics.RecordCacheLookup(err == nil, time.Since(start))
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("offense cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	offenses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list offense classifications")
	}
	for i := range offenses {
		offenses[i].DefaultAction = discipline.DefaultAction(&offenses[i])
	}

	if s.cacheEnabled() {
		if err := s.cache.Set(ctx, key, offenses, s.cacheCfg.TTL); err != nil {
			s.logger.Warn("offense cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return offenses, nil
}

// Get fetches one classification.
func (s *OffenseService) Get(ctx context.Context, id string) (*models.OffenseClassification, error) {
	offense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "offense classification")
	}
	offense.DefaultAction = discipline.DefaultAction(offense)
	return offense, nil
}

// Create adds a classification.
func (s *OffenseService) Create(ctx context.Context, actor *models.JWTClaims, req dto.UpsertOffenseRequest) (*models.OffenseClassification, error) {
	if err := authz.ManageOffenses(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid offense classification payload")
	}
	userID := actor.ActorID()
	offense := &models.OffenseClassification{CreatedBy: &userID, UpdatedBy: &userID, Active: true}
	applyOffense(offense, req)
	if err := s.repo.Create(ctx, offense); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create offense classification")
	}
	s.invalidate(ctx)
	offense.DefaultAction = discipline.DefaultAction(offense)
	return offense, nil
}

// Update replaces a classification's fields.
func (s *OffenseService) Update(ctx context.Context, actor *models.JWTClaims, id string, req dto.UpsertOffenseRequest) (*models.OffenseClassification, error) {
	if err := authz.ManageOffenses(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid offense classification payload")
	}
	offense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "offense classification")
	}
	applyOffense(offense, req)
	userID := actor.ActorID()
	offense.UpdatedBy = &userID
	if err := s.repo.Update(ctx, offense); err != nil {
		return nil, lookupError(err, "offense classification")
	}
	s.invalidate(ctx)
	offense.DefaultAction = discipline.DefaultAction(offense)
	return offense, nil
}

func applyOffense(offense *models.OffenseClassification, req dto.UpsertOffenseRequest) {
	offense.Name = req.Name
	offense.Description = req.Description
	offense.Severity = req.Severity
	offense.ApprovalLevel = req.ApprovalLevel
	offense.InvestigationRequired = req.InvestigationRequired
	offense.ImmediateDismissal = req.ImmediateDismissal
	if req.Active != nil {
		offense.Active = *req.Active
	}
}

func (s *OffenseService) cacheEnabled() bool {
	return s.cacheCfg.Enabled && s.cache != nil
}

func (s *OffenseService) invalidate(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, "list:*"); err != nil {
		s.logger.Warn("offense cache invalidation failed", zap.Error(err))
	}
}
