package delivery

import (
	"testing"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePopulation() []entity.Recipient {
	return []entity.Recipient{
		{Id: uuid.New(), Email: "t1@example.com", AccountType: entity.AccountTenant, VerificationStatus: entity.VerificationVerified},
		{Id: uuid.New(), Email: "t2@example.com", AccountType: entity.AccountTenant},
		{Id: uuid.New(), Email: "l1@example.com", AccountType: entity.AccountLandlord, VerificationStatus: entity.VerificationVerified},
		{Id: uuid.New(), Email: "a1@example.com", AccountType: entity.AccountAgent, VerificationStatus: "pending"},
	}
}

func TestParseAudience(t *testing.T) {
	for _, tag := range []string{"all", "verified", "tenant", "landlord", "agent"} {
		audience, err := ParseAudience(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, entity.Audience(tag), audience)
	}

	_, err := ParseAudience("everybody")
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidAudience(err))

	_, err = ParseAudience("")
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidAudience(err))
}

func TestSelectAudience(t *testing.T) {
	population := samplePopulation()

	tests := []struct {
		name       string
		audience   entity.Audience
		wantEmails []string
	}{
		{
			name:       "all keeps everyone",
			audience:   entity.AudienceAll,
			wantEmails: []string{"t1@example.com", "t2@example.com", "l1@example.com", "a1@example.com"},
		},
		{
			name:       "verified keeps only verified",
			audience:   entity.AudienceVerified,
			wantEmails: []string{"t1@example.com", "l1@example.com"},
		},
		{
			name:       "tenant keeps tenants regardless of verification",
			audience:   entity.AudienceTenant,
			wantEmails: []string{"t1@example.com", "t2@example.com"},
		},
		{
			name:       "landlord",
			audience:   entity.AudienceLandlord,
			wantEmails: []string{"l1@example.com"},
		},
		{
			name:       "agent",
			audience:   entity.AudienceAgent,
			wantEmails: []string{"a1@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, err := SelectAudience(population, tt.audience)
			require.NoError(t, err)

			emails := make([]string, 0, len(selected))
			for _, r := range selected {
				emails = append(emails, r.Email)
			}
			assert.ElementsMatch(t, tt.wantEmails, emails)
		})
	}
}

func TestSelectAudience_UnknownTagFailsClosed(t *testing.T) {
	selected, err := SelectAudience(samplePopulation(), entity.Audience("vip"))
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidAudience(err))
	assert.Nil(t, selected)
}

func TestSelectAudience_EmptyPopulation(t *testing.T) {
	selected, err := SelectAudience(nil, entity.AudienceAll)
	require.NoError(t, err)
	assert.Empty(t, selected)
}
