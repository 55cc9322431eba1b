// FILE: internal/entity/recipient_entity.go
// Broadcast-facing projection of a user
package entity

import "github.com/google/uuid"

type AccountType string

const (
	AccountTenant   AccountType = "tenant"
	AccountLandlord AccountType = "landlord"
	AccountAgent    AccountType = "agent"
)

const VerificationVerified = "verified"

// Recipient is the slice of a user the broadcast pipeline needs. Contact
// fields are optional; a missing field for the chosen channel is a counted
// delivery failure, not a silent skip.
type Recipient struct {
	Id                 uuid.UUID
	Email              string
	Phone              string
	PushToken          string
	AccountType        AccountType
	VerificationStatus string
}
