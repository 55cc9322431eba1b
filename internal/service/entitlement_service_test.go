package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomlink-be/internal/dto"
	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
	"roomlink-be/internal/repository/contract"
	"roomlink-be/internal/repository/specification"
	"roomlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- In-memory fakes shared by the service tests ----

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeFeatureSettingRepo struct {
	settings map[string]*entity.FeatureSetting
	err      error
}

func (r *fakeFeatureSettingRepo) Upsert(ctx context.Context, setting *entity.FeatureSetting) error {
	if r.err != nil {
		return r.err
	}
	if r.settings == nil {
		r.settings = map[string]*entity.FeatureSetting{}
	}
	cp := *setting
	r.settings[setting.FeatureName] = &cp
	return nil
}

func (r *fakeFeatureSettingRepo) FindByName(ctx context.Context, featureName string) (*entity.FeatureSetting, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.settings[featureName], nil
}

func (r *fakeFeatureSettingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureSetting, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.FeatureSetting, 0, len(r.settings))
	for _, s := range r.settings {
		out = append(out, s)
	}
	return out, nil
}

type fakeEntitlementRepo struct {
	grants    []*entity.Entitlement
	createErr error
	findErr   error
}

func (r *fakeEntitlementRepo) Create(ctx context.Context, grant *entity.Entitlement) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *grant
	r.grants = append(r.grants, &cp)
	return nil
}

func (r *fakeEntitlementRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entitlement, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if len(r.grants) == 0 {
		return nil, nil
	}
	return r.grants[0], nil
}

func (r *fakeEntitlementRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Entitlement, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := r.grants
	for _, spec := range specs {
		if byUser, ok := spec.(specification.ByUserId); ok {
			filtered := make([]*entity.Entitlement, 0, len(out))
			for _, g := range out {
				if g.UserId == byUser.UserId {
					filtered = append(filtered, g)
				}
			}
			out = filtered
		}
	}
	return out, nil
}

func (r *fakeEntitlementRepo) FindForUserFeature(ctx context.Context, userId uuid.UUID, featureName string) ([]*entity.Entitlement, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.Entitlement, 0)
	for _, g := range r.grants {
		if g.UserId == userId && g.FeatureName == featureName {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeEntitlementRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EntitlementStatus) (int64, error) {
	if r.findErr != nil {
		return 0, r.findErr
	}
	for _, g := range r.grants {
		if g.Id == id {
			g.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

type fakeBroadcastJobRepo struct {
	jobs      []*entity.BroadcastJob
	createErr error
}

func (r *fakeBroadcastJobRepo) Create(ctx context.Context, job *entity.BroadcastJob, failures []entity.BroadcastFailure) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *job
	r.jobs = append(r.jobs, &cp)
	return nil
}

func (r *fakeBroadcastJobRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BroadcastJob, error) {
	return r.jobs, nil
}

type fakeUserRepo struct {
	recipients []entity.Recipient
	err        error
}

func (r *fakeUserRepo) FindAllRecipients(ctx context.Context) ([]entity.Recipient, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.recipients, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.recipients)), nil
}

type fakeUnitOfWork struct {
	featureSettings *fakeFeatureSettingRepo
	entitlements    *fakeEntitlementRepo
	broadcastJobs   *fakeBroadcastJobRepo
	users           *fakeUserRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		featureSettings: &fakeFeatureSettingRepo{settings: map[string]*entity.FeatureSetting{}},
		entitlements:    &fakeEntitlementRepo{},
		broadcastJobs:   &fakeBroadcastJobRepo{},
		users:           &fakeUserRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) FeatureSettingRepository() contract.FeatureSettingRepository {
	return u.featureSettings
}
func (u *fakeUnitOfWork) EntitlementRepository() contract.EntitlementRepository {
	return u.entitlements
}
func (u *fakeUnitOfWork) BroadcastJobRepository() contract.BroadcastJobRepository {
	return u.broadcastJobs
}
func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newEntitlementFixture() (*fakeUnitOfWork, IEntitlementService) {
	uow := newFakeUnitOfWork()
	svc := NewEntitlementService(&fakeUowFactory{uow: uow}, nopLogger{}, nil)
	return uow, svc
}

// ---- CheckAccess ----

func TestCheckAccess_AbsentSettingMeansFree(t *testing.T) {
	_, svc := newEntitlementFixture()

	state, err := svc.CheckAccess(context.Background(), uuid.New(), "contact_reveal")
	require.NoError(t, err)
	assert.Equal(t, AccessUnlocked, state)
}

func TestCheckAccess_UnlockedSettingMeansFree(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["contact_reveal"] = &entity.FeatureSetting{
		FeatureName: "contact_reveal",
		IsLocked:    false,
	}

	state, err := svc.CheckAccess(context.Background(), uuid.New(), "contact_reveal")
	require.NoError(t, err)
	assert.Equal(t, AccessUnlocked, state)
}

func TestCheckAccess_LockedWithoutGrant(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["featured_listing"] = &entity.FeatureSetting{
		FeatureName: "featured_listing",
		IsLocked:    true,
	}

	state, err := svc.CheckAccess(context.Background(), uuid.New(), "featured_listing")
	require.NoError(t, err)
	assert.Equal(t, AccessLocked, state)
}

func TestCheckAccess_GrantStates(t *testing.T) {
	userId := uuid.New()
	now := time.Now()

	tests := []struct {
		name   string
		grants []*entity.Entitlement
		want   AccessState
	}{
		{
			name: "active and unexpired unlocks",
			grants: []*entity.Entitlement{
				{Id: uuid.New(), UserId: userId, FeatureName: "featured_listing",
					ExpiresAt: now.Add(24 * time.Hour), Status: entity.EntitlementActive},
			},
			want: AccessUnlocked,
		},
		{
			name: "expired grant stays locked",
			grants: []*entity.Entitlement{
				{Id: uuid.New(), UserId: userId, FeatureName: "featured_listing",
					ExpiresAt: now.Add(-time.Minute), Status: entity.EntitlementActive},
			},
			want: AccessLocked,
		},
		{
			name: "disabled grant stays locked",
			grants: []*entity.Entitlement{
				{Id: uuid.New(), UserId: userId, FeatureName: "featured_listing",
					ExpiresAt: now.Add(24 * time.Hour), Status: entity.EntitlementDisabled},
			},
			want: AccessLocked,
		},
		{
			name: "any effective row among dead ones unlocks",
			grants: []*entity.Entitlement{
				{Id: uuid.New(), UserId: userId, FeatureName: "featured_listing",
					ExpiresAt: now.Add(-time.Hour), Status: entity.EntitlementActive},
				{Id: uuid.New(), UserId: userId, FeatureName: "featured_listing",
					ExpiresAt: now.Add(time.Hour), Status: entity.EntitlementDisabled},
				{Id: uuid.New(), UserId: userId, FeatureName: "featured_listing",
					ExpiresAt: now.Add(time.Hour), Status: entity.EntitlementActive},
			},
			want: AccessUnlocked,
		},
		{
			name: "someone else's grant does not unlock",
			grants: []*entity.Entitlement{
				{Id: uuid.New(), UserId: uuid.New(), FeatureName: "featured_listing",
					ExpiresAt: now.Add(24 * time.Hour), Status: entity.EntitlementActive},
			},
			want: AccessLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow, svc := newEntitlementFixture()
			uow.featureSettings.settings["featured_listing"] = &entity.FeatureSetting{
				FeatureName: "featured_listing",
				IsLocked:    true,
			}
			uow.entitlements.grants = tt.grants

			state, err := svc.CheckAccess(context.Background(), userId, "featured_listing")
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestCheckAccess_SettingStoreFailure(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.err = errors.New("connection refused")

	state, err := svc.CheckAccess(context.Background(), uuid.New(), "featured_listing")
	require.Error(t, err)
	assert.True(t, apperror.IsStoreUnavailable(err))
	assert.Empty(t, state)
}

func TestCheckAccess_GrantStoreFailure(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["featured_listing"] = &entity.FeatureSetting{
		FeatureName: "featured_listing",
		IsLocked:    true,
	}
	uow.entitlements.findErr = errors.New("connection refused")

	_, err := svc.CheckAccess(context.Background(), uuid.New(), "featured_listing")
	require.Error(t, err)
	assert.True(t, apperror.IsStoreUnavailable(err))
}

// ---- GrantAccess ----

func TestGrantAccess_UsesCatalogDuration(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["featured_listing"] = &entity.FeatureSetting{
		FeatureName:   "featured_listing",
		IsLocked:      true,
		DurationValue: 2,
		DurationType:  entity.DurationWeeks,
	}

	grant, err := svc.GrantAccess(context.Background(), &dto.GrantAccessRequest{
		UserId:      uuid.New(),
		FeatureName: "featured_listing",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EntitlementActive, grant.Status)
	assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), grant.ExpiresAt, 5*time.Second)
	assert.Len(t, uow.entitlements.grants, 1)
}

func TestGrantAccess_OverrideDuration(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["featured_listing"] = &entity.FeatureSetting{
		FeatureName:   "featured_listing",
		IsLocked:      true,
		DurationValue: 1,
		DurationType:  entity.DurationYears,
	}

	value := 3
	unit := "days"
	grant, err := svc.GrantAccess(context.Background(), &dto.GrantAccessRequest{
		UserId:        uuid.New(),
		FeatureName:   "featured_listing",
		DurationValue: &value,
		DurationType:  &unit,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(3*24*time.Hour), grant.ExpiresAt, 5*time.Second)
}

func TestGrantAccess_NoSettingAndNoOverride(t *testing.T) {
	_, svc := newEntitlementFixture()

	_, err := svc.GrantAccess(context.Background(), &dto.GrantAccessRequest{
		UserId:      uuid.New(),
		FeatureName: "unheard_of",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConfiguration(err))
}

func TestGrantAccess_UnknownDurationTypeFallsBackToWeek(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["featured_listing"] = &entity.FeatureSetting{
		FeatureName:   "featured_listing",
		IsLocked:      true,
		DurationValue: 99,
		DurationType:  entity.DurationType("fortnights"),
	}

	grant, err := svc.GrantAccess(context.Background(), &dto.GrantAccessRequest{
		UserId:      uuid.New(),
		FeatureName: "featured_listing",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), grant.ExpiresAt, 5*time.Second)
}

func TestGrantAccess_DuplicateGrantsAreLegal(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["featured_listing"] = &entity.FeatureSetting{
		FeatureName:   "featured_listing",
		IsLocked:      true,
		DurationValue: 7,
		DurationType:  entity.DurationDays,
	}

	userId := uuid.New()
	req := &dto.GrantAccessRequest{UserId: userId, FeatureName: "featured_listing"}
	_, err := svc.GrantAccess(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.GrantAccess(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, uow.entitlements.grants, 2)

	state, err := svc.CheckAccess(context.Background(), userId, "featured_listing")
	require.NoError(t, err)
	assert.Equal(t, AccessUnlocked, state)
}

// ---- SetStatus ----

func TestSetStatus_TogglesGrant(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["featured_listing"] = &entity.FeatureSetting{
		FeatureName: "featured_listing",
		IsLocked:    true,
	}
	userId := uuid.New()
	grantId := uuid.New()
	uow.entitlements.grants = []*entity.Entitlement{
		{Id: grantId, UserId: userId, FeatureName: "featured_listing",
			ExpiresAt: time.Now().Add(24 * time.Hour), Status: entity.EntitlementActive},
	}

	require.NoError(t, svc.SetStatus(context.Background(), grantId, entity.EntitlementDisabled))

	state, err := svc.CheckAccess(context.Background(), userId, "featured_listing")
	require.NoError(t, err)
	assert.Equal(t, AccessLocked, state)

	// Re-enabling restores access without touching the expiry.
	require.NoError(t, svc.SetStatus(context.Background(), grantId, entity.EntitlementActive))
	state, err = svc.CheckAccess(context.Background(), userId, "featured_listing")
	require.NoError(t, err)
	assert.Equal(t, AccessUnlocked, state)
}

func TestSetStatus_UnknownGrant(t *testing.T) {
	_, svc := newEntitlementFixture()

	err := svc.SetStatus(context.Background(), uuid.New(), entity.EntitlementDisabled)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

// ---- Catalog administration ----

func TestUpsertFeatureSetting_InvalidatesCachedVerdict(t *testing.T) {
	uow, svc := newEntitlementFixture()
	uow.featureSettings.settings["contact_reveal"] = &entity.FeatureSetting{
		FeatureName: "contact_reveal",
		IsLocked:    false,
	}
	userId := uuid.New()

	state, err := svc.CheckAccess(context.Background(), userId, "contact_reveal")
	require.NoError(t, err)
	assert.Equal(t, AccessUnlocked, state)

	// Lock the feature through the service so the cache entry is dropped.
	_, err = svc.UpsertFeatureSetting(context.Background(), "contact_reveal", &dto.UpsertFeatureSettingRequest{
		IsLocked:      true,
		UnlockPrice:   15000,
		DurationValue: 1,
		DurationType:  "weeks",
	})
	require.NoError(t, err)

	state, err = svc.CheckAccess(context.Background(), userId, "contact_reveal")
	require.NoError(t, err)
	assert.Equal(t, AccessLocked, state)
}

func TestListGrants_FiltersByUser(t *testing.T) {
	uow, svc := newEntitlementFixture()
	userId := uuid.New()
	uow.entitlements.grants = []*entity.Entitlement{
		{Id: uuid.New(), UserId: userId, FeatureName: "a"},
		{Id: uuid.New(), UserId: uuid.New(), FeatureName: "b"},
		{Id: uuid.New(), UserId: userId, FeatureName: "c"},
	}

	grants, err := svc.ListGrants(context.Background(), userId)
	require.NoError(t, err)
	assert.Len(t, grants, 2)
}
