package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "60MB"
	defaultSignedURLTTL       = 60 * time.Second
	defaultDeleteTimeout      = 10 * time.Second
	defaultContactPrefix      = "public/contact-submissions/"
	defaultSweeperSchedule    = "0 3 * * *"
	defaultSweeperGracePeriod = 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins lists storefront origins allowed by CORS; empty allows any
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Auth configures how identity provider session tokens are verified
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Staff identifies the single privileged operator
	Staff *StaffConfig `json:"staff" yaml:"staff"`

	// Storage configures the object store for uploaded design files
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Payment configures server-side payment verification
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Notification configures WhatsApp status messages sent by the notifier
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Sweeper configures the orphaned object cleanup job
	Sweeper *SweeperConfig `json:"sweeper" yaml:"sweeper"`

	// QRCode configuration for payment link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider type: "jwt" for HMAC-signed provider tokens or "firebase" for Firebase ID tokens
	Provider string `json:"provider" yaml:"provider"`

	JWT struct {
		Secret   string `json:"secret" yaml:"secret"`
		Issuer   string `json:"issuer" yaml:"issuer"`
		Audience string `json:"audience" yaml:"audience"`
	} `json:"jwt" yaml:"jwt"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// FirebaseConfig defines Firebase configuration for ID token verification
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// StaffConfig identifies the operator by identity id, email, or both
type StaffConfig struct {
	IdentityID string `json:"identityId" yaml:"identityId"`
	Email      string `json:"email" yaml:"email"`
}

// StorageConfig defines object store configuration
type StorageConfig struct {
	// BucketURL is a gocloud.dev/blob URL: file:///path, mem://, s3://bucket, gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// SignedURLTTL bounds the lifetime of download links
	SignedURLTTL time.Duration `json:"signedUrlTtl" yaml:"signedUrlTtl"`

	// ContactPrefix is where files attached to contact submissions are stored
	ContactPrefix string `json:"contactPrefix" yaml:"contactPrefix"`

	// DeleteTimeout bounds object removal during cancellation, which runs while the row is locked
	DeleteTimeout time.Duration `json:"deleteTimeout" yaml:"deleteTimeout"`
}

// PaymentConfig defines payment verification configuration
type PaymentConfig struct {
	// Provider type: "none" keeps client-driven confirmation, "mercadopago" verifies server-side
	Provider string `json:"provider" yaml:"provider"`

	MercadoPago struct {
		AccessToken string `json:"accessToken" yaml:"accessToken"`
	} `json:"mercadopago" yaml:"mercadopago"`

	// LinkBaseURL is the storefront page where customers pay for quoted orders
	LinkBaseURL string `json:"linkBaseUrl" yaml:"linkBaseUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the expected audience of push OIDC tokens (defaults to any)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// NotificationConfig defines WhatsApp notification configuration
type NotificationConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	Twilio struct {
		AccountSID   string `json:"accountSid" yaml:"accountSid"`
		AuthToken    string `json:"authToken" yaml:"authToken"`
		WhatsAppFrom string `json:"whatsappFrom" yaml:"whatsappFrom"`
	} `json:"twilio" yaml:"twilio"`
}

// SweeperConfig defines the orphaned object sweeper configuration
type SweeperConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Schedule is a standard five-field cron expression
	Schedule string `json:"schedule" yaml:"schedule"`

	// GracePeriod protects uploads that have not been submitted yet
	GracePeriod time.Duration `json:"gracePeriod" yaml:"gracePeriod"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.SignedURLTTL <= 0 {
		cfg.Storage.SignedURLTTL = defaultSignedURLTTL
	}
	if cfg.Storage.ContactPrefix == "" {
		cfg.Storage.ContactPrefix = defaultContactPrefix
	}
	if cfg.Storage.DeleteTimeout <= 0 {
		cfg.Storage.DeleteTimeout = defaultDeleteTimeout
	}

	if cfg.Sweeper == nil {
		cfg.Sweeper = &SweeperConfig{}
	}
	if cfg.Sweeper.Schedule == "" {
		cfg.Sweeper.Schedule = defaultSweeperSchedule
	}
	if cfg.Sweeper.GracePeriod <= 0 {
		cfg.Sweeper.GracePeriod = defaultSweeperGracePeriod
	}

	if cfg.Staff == nil {
		cfg.Staff = &StaffConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
