// FILE: pkg/delivery/audience.go
// Audience segmentation over the recipient population
package delivery

import (
	"fmt"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
)

// ParseAudience validates an audience tag before any recipients are loaded.
func ParseAudience(s string) (entity.Audience, error) {
	audience := entity.Audience(s)
	switch audience {
	case entity.AudienceAll, entity.AudienceVerified,
		entity.AudienceTenant, entity.AudienceLandlord, entity.AudienceAgent:
		return audience, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidAudience, s)
	}
}

// SelectAudience filters recipients by the named segmentation predicate.
// Pure function, no I/O. An unknown audience fails closed: better to reject
// the whole request than broadcast to an unintended population.
func SelectAudience(recipients []entity.Recipient, audience entity.Audience) ([]entity.Recipient, error) {
	switch audience {
	case entity.AudienceAll:
		return recipients, nil
	case entity.AudienceVerified:
		return filter(recipients, func(r entity.Recipient) bool {
			return r.VerificationStatus == entity.VerificationVerified
		}), nil
	case entity.AudienceTenant, entity.AudienceLandlord, entity.AudienceAgent:
		return filter(recipients, func(r entity.Recipient) bool {
			return string(r.AccountType) == string(audience)
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidAudience, audience)
	}
}

func filter(recipients []entity.Recipient, keep func(entity.Recipient) bool) []entity.Recipient {
	out := make([]entity.Recipient, 0, len(recipients))
	for _, r := range recipients {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
