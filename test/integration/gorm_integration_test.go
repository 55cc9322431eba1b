package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/repository/unitofwork"
	"roomlink-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.FeatureSettingRepository())
	assert.NotNil(t, uow.EntitlementRepository())
	assert.NotNil(t, uow.BroadcastJobRepository())
	assert.NotNil(t, uow.UserRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Feature Setting Upsert Roundtrip", func(t *testing.T) {
		featureName := "it_" + uuid.New().String()[:8]
		setting := &entity.FeatureSetting{
			FeatureName:   featureName,
			IsLocked:      true,
			UnlockPrice:   10000,
			DurationValue: 2,
			DurationType:  entity.DurationWeeks,
		}
		require.NoError(t, uow.FeatureSettingRepository().Upsert(context.Background(), setting))

		found, err := uow.FeatureSettingRepository().FindByName(context.Background(), featureName)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.IsLocked)
		assert.Equal(t, 2, found.DurationValue)

		// Second upsert on the same key updates in place.
		setting.IsLocked = false
		require.NoError(t, uow.FeatureSettingRepository().Upsert(context.Background(), setting))
		found, err = uow.FeatureSettingRepository().FindByName(context.Background(), featureName)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.IsLocked)
	})

	t.Run("Absent Feature Setting Is Nil Not Error", func(t *testing.T) {
		found, err := uow.FeatureSettingRepository().FindByName(context.Background(), "never_configured_"+uuid.New().String())
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Entitlement Grant Roundtrip", func(t *testing.T) {
		now := time.Now()
		grant := &entity.Entitlement{
			Id:          uuid.New(),
			UserId:      uuid.New(),
			FeatureName: "it_feature",
			PaidAt:      now,
			ExpiresAt:   now.Add(7 * 24 * time.Hour),
			Status:      entity.EntitlementActive,
		}
		require.NoError(t, uow.EntitlementRepository().Create(context.Background(), grant))

		grants, err := uow.EntitlementRepository().FindForUserFeature(context.Background(), grant.UserId, grant.FeatureName)
		require.NoError(t, err)
		require.Len(t, grants, 1)
		assert.True(t, grants[0].EffectiveAt(time.Now()))

		affected, err := uow.EntitlementRepository().UpdateStatus(context.Background(), grant.Id, entity.EntitlementDisabled)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		affected, err = uow.EntitlementRepository().UpdateStatus(context.Background(), uuid.New(), entity.EntitlementDisabled)
		require.NoError(t, err)
		assert.EqualValues(t, 0, affected)
	})

	t.Run("Broadcast Job Audit Roundtrip", func(t *testing.T) {
		job := &entity.BroadcastJob{
			Id:           uuid.New(),
			Subject:      "integration test",
			Body:         "body",
			BodyKind:     entity.BodyPlain,
			Channel:      entity.ChannelEmail,
			Audience:     entity.AudienceAll,
			TargetCount:  2,
			SuccessCount: 1,
			FailedCount:  1,
			SentAt:       time.Now(),
		}
		failures := []entity.BroadcastFailure{
			{RecipientId: uuid.New(), Reason: "mailbox full"},
		}
		require.NoError(t, uow.BroadcastJobRepository().Create(context.Background(), job, failures))

		jobs, err := uow.BroadcastJobRepository().FindAll(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, jobs)
	})
}
