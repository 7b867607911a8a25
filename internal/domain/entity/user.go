package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names the OAuth provider that vouched for a user.
type ProviderType string

const (
	ProviderTypeGoogle   ProviderType = "google"
	ProviderTypeFirebase ProviderType = "firebase"
)

// User is a collector signed in through a third-party OAuth provider.
// The purchase flow only ever needs the ID; name and email feed the admin views.
type User struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Provider        ProviderType
	ProviderSubject string // the provider's stable "sub" for this account
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AdminPrincipalID is the subject carried by operator tokens. It never matches a users row.
var AdminPrincipalID = uuid.Nil
