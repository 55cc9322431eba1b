// FILE: internal/service/entitlement_service.go
// Entitlement engine: access checks, grants, administrative toggles
package service

import (
	"context"
	"fmt"
	"time"

	"roomlink-be/internal/dto"
	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
	"roomlink-be/internal/pkg/logger"
	"roomlink-be/internal/repository/specification"
	"roomlink-be/internal/repository/unitofwork"
	"roomlink-be/pkg/events"
	pktNats "roomlink-be/pkg/nats"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// AccessState is the engine's verdict for one (user, feature) pair.
type AccessState string

const (
	AccessLocked   AccessState = "locked"
	AccessUnlocked AccessState = "unlocked"
)

type IEntitlementService interface {
	// CheckAccess is side-effect free. A store failure surfaces as
	// ErrStoreUnavailable, never as a Locked verdict; the caller decides how
	// to fail closed.
	CheckAccess(ctx context.Context, userId uuid.UUID, featureName string) (AccessState, error)
	GrantAccess(ctx context.Context, req *dto.GrantAccessRequest) (*entity.Entitlement, error)
	SetStatus(ctx context.Context, entitlementId uuid.UUID, status entity.EntitlementStatus) error
	ListGrants(ctx context.Context, userId uuid.UUID) ([]*entity.Entitlement, error)

	// Feature catalog administration
	ListFeatureSettings(ctx context.Context) ([]*entity.FeatureSetting, error)
	UpsertFeatureSetting(ctx context.Context, featureName string, req *dto.UpsertFeatureSettingRequest) (*entity.FeatureSetting, error)
}

type entitlementService struct {
	uowFactory    unitofwork.RepositoryFactory
	logger        logger.ILogger
	natsPub       *pktNats.Publisher
	settingsCache *gocache.Cache
}

func NewEntitlementService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger, natsPub *pktNats.Publisher) IEntitlementService {
	return &entitlementService{
		uowFactory: uowFactory,
		logger:     log,
		natsPub:    natsPub,
		// The catalog is read-heavy and changes rarely; a short TTL keeps
		// admin edits visible quickly. Entitlement rows are never cached.
		settingsCache: gocache.New(30*time.Second, time.Minute),
	}
}

// featureSetting looks up the catalog row, absent rows included, through the
// TTL cache. A cached nil means "no row": the feature is free.
func (s *entitlementService) featureSetting(ctx context.Context, uow unitofwork.UnitOfWork, featureName string) (*entity.FeatureSetting, error) {
	if cached, found := s.settingsCache.Get(featureName); found {
		return cached.(*entity.FeatureSetting), nil
	}
	setting, err := uow.FeatureSettingRepository().FindByName(ctx, featureName)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching feature setting %q: %v", apperror.ErrStoreUnavailable, featureName, err)
	}
	s.settingsCache.SetDefault(featureName, setting)
	return setting, nil
}

func (s *entitlementService) CheckAccess(ctx context.Context, userId uuid.UUID, featureName string) (AccessState, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting, err := s.featureSetting(ctx, uow, featureName)
	if err != nil {
		return "", err
	}
	// No catalog row, or not locked: free for everyone.
	if setting == nil || !setting.IsLocked {
		return AccessUnlocked, nil
	}

	grants, err := uow.EntitlementRepository().FindForUserFeature(ctx, userId, featureName)
	if err != nil {
		return "", fmt.Errorf("%w: fetching grants for user %s: %v", apperror.ErrStoreUnavailable, userId, err)
	}

	now := time.Now()
	for _, grant := range grants {
		if grant.EffectiveAt(now) {
			return AccessUnlocked, nil
		}
	}
	return AccessLocked, nil
}

func (s *entitlementService) GrantAccess(ctx context.Context, req *dto.GrantAccessRequest) (*entity.Entitlement, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting, err := s.featureSetting(ctx, uow, req.FeatureName)
	if err != nil {
		return nil, err
	}

	var duration time.Duration
	switch {
	case req.DurationValue != nil && req.DurationType != nil:
		duration = entity.DurationFor(*req.DurationValue, entity.DurationType(*req.DurationType))
	case setting != nil:
		duration = setting.AccessDuration()
	default:
		return nil, fmt.Errorf("%w: no setting for feature %q and no duration override", apperror.ErrConfiguration, req.FeatureName)
	}

	// Insert-only: an overlapping grant for the same pair is legal, CheckAccess
	// unlocks on any effective row. Stacking or renewal is a caller policy.
	now := time.Now()
	grant := &entity.Entitlement{
		Id:          uuid.New(),
		UserId:      req.UserId,
		FeatureName: req.FeatureName,
		PaidAt:      now,
		ExpiresAt:   now.Add(duration),
		Status:      entity.EntitlementActive,
	}
	if err := uow.EntitlementRepository().Create(ctx, grant); err != nil {
		return nil, fmt.Errorf("%w: inserting grant: %v", apperror.ErrStoreUnavailable, err)
	}

	s.logger.Info("EntitlementService", "access granted", map[string]interface{}{
		"user_id":      grant.UserId.String(),
		"feature_name": grant.FeatureName,
		"expires_at":   grant.ExpiresAt,
	})

	if s.natsPub != nil {
		event := events.NewFeatureAccessGranted(grant.UserId.String(), grant.FeatureName, grant.ExpiresAt)
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("EntitlementService", "failed to publish grant event", map[string]interface{}{"error": err.Error()})
		}
	}

	return grant, nil
}

func (s *entitlementService) SetStatus(ctx context.Context, entitlementId uuid.UUID, status entity.EntitlementStatus) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.EntitlementRepository().UpdateStatus(ctx, entitlementId, status)
	if err != nil {
		return fmt.Errorf("%w: updating grant status: %v", apperror.ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: entitlement %s", apperror.ErrNotFound, entitlementId)
	}

	s.logger.Info("EntitlementService", "grant status changed", map[string]interface{}{
		"entitlement_id": entitlementId.String(),
		"status":         string(status),
	})
	return nil
}

func (s *entitlementService) ListGrants(ctx context.Context, userId uuid.UUID) ([]*entity.Entitlement, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	grants, err := uow.EntitlementRepository().FindAll(ctx, specification.ByUserId{UserId: userId})
	if err != nil {
		return nil, fmt.Errorf("%w: listing grants: %v", apperror.ErrStoreUnavailable, err)
	}
	return grants, nil
}

func (s *entitlementService) ListFeatureSettings(ctx context.Context) ([]*entity.FeatureSetting, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.FeatureSettingRepository().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing feature settings: %v", apperror.ErrStoreUnavailable, err)
	}
	return settings, nil
}

func (s *entitlementService) UpsertFeatureSetting(ctx context.Context, featureName string, req *dto.UpsertFeatureSettingRequest) (*entity.FeatureSetting, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting := &entity.FeatureSetting{
		FeatureName:   featureName,
		IsLocked:      req.IsLocked,
		UnlockPrice:   req.UnlockPrice,
		DurationValue: req.DurationValue,
		DurationType:  entity.DurationType(req.DurationType),
	}
	if err := uow.FeatureSettingRepository().Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("%w: upserting feature setting: %v", apperror.ErrStoreUnavailable, err)
	}

	// Existing grants keep their fixed expiry; only the cache entry is stale.
	s.settingsCache.Delete(featureName)
	return setting, nil
}
