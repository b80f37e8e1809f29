// Package constants contains string constants shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used for production.
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers.
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// Payment verification providers.
const (
	PaymentProviderNone        = "none"
	PaymentProviderMercadoPago = "mercadopago"
)
