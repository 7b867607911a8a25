// Package constants collects string identifiers shared by config, infra and delivery.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers accepted in config.pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers accepted in config.identity.provider.
const (
	IdentityProviderGoogle   = "google"
	IdentityProviderFirebase = "firebase"
)

// Stripe event types the webhook reconciler acts on.
const (
	StripeEventCheckoutCompleted = "checkout.session.completed"
	StripeEventChargeRefunded    = "charge.refunded"
)

// Headers.
const (
	HeaderStripeSignature = "Stripe-Signature"
	HeaderRetryAfter      = "Retry-After"
)

// MaxWebhookBodyBytes caps the raw webhook payload read before signature verification.
const MaxWebhookBodyBytes = int64(65536)

// AdminPurchaseListLimit caps the admin purchase listing.
const AdminPurchaseListLimit = 100
