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
	defaultMaxRequestBodySize = "100KB"
	defaultCurrency           = "usd"

	// Minor units. A prompt unlock is $3.99 unless an artwork overrides it.
	defaultPromptPrice = 399
	defaultMinPrice    = 99
	defaultMaxPrice    = 9999

	defaultSessionTTL = 7 * 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Stripe StripeConfig `json:"stripe" yaml:"stripe"`

	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	Admin AdminConfig `json:"admin" yaml:"admin"`

	// Identity enables OAuth sign-in. Without it the sign-in route is not mounted.
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Redis backs the shared rate limiter. Without it requests are not throttled.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SecretKeyConfig holds the HMAC key for session tokens.
type SecretKeyConfig struct {
	Access     string        `json:"access" yaml:"access"`
	SessionTTL time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
}

// StripeConfig configures checkout sessions, refunds and webhook verification.
type StripeConfig struct {
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`
	Currency      string `json:"currency" yaml:"currency"`
	// SiteURL is the public origin used to build checkout redirect URLs.
	SiteURL string `json:"siteUrl" yaml:"siteUrl"`
	// APIURL overrides the Stripe API base, used against stripe-mock.
	APIURL string `json:"apiUrl" yaml:"apiUrl"`
}

// PricingConfig bounds prompt unlock prices, all in minor currency units.
type PricingConfig struct {
	Default int64 `json:"default" yaml:"default"`
	Min     int64 `json:"min" yaml:"min"`
	Max     int64 `json:"max" yaml:"max"`
}

// AdminConfig holds the bcrypt hash of the single operator password.
type AdminConfig struct {
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
	BcryptCost   int    `json:"bcryptCost" yaml:"bcryptCost"`
}

// IdentityConfig selects the OAuth ID token verifier.
type IdentityConfig struct {
	// Provider is "google" (ID token via idtoken) or "firebase" (Firebase Auth).
	Provider        string `json:"provider" yaml:"provider"`
	ClientID        string `json:"clientId" yaml:"clientId"`
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RateLimitConfig caps requests per client IP per window.
type RateLimitConfig struct {
	Window          time.Duration `json:"window" yaml:"window"`
	PurchasePerIP   int64         `json:"purchasePerIp" yaml:"purchasePerIp"`
	SignInPerIP     int64         `json:"signInPerIp" yaml:"signInPerIp"`
	AdminLoginPerIP int64         `json:"adminLoginPerIp" yaml:"adminLoginPerIp"`
}

// PubSubConfig defines where purchase confirmation events are published.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MailConfig configures the Resend client used by the mailer worker.
type MailConfig struct {
	ResendAPIKey string `json:"resendApiKey" yaml:"resendApiKey"`
	From         string `json:"from" yaml:"from"`
}

// QRCodeConfig defines the unlock QR attachment rendering.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := "", false
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile, found = candidate, true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// STRIPE_WEBHOOKSECRET -> stripe.webhookSecret, matching the YAML key casing.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Stripe.Currency == "" {
		c.Stripe.Currency = defaultCurrency
	}
	if c.Pricing.Default == 0 {
		c.Pricing.Default = defaultPromptPrice
	}
	if c.Pricing.Min == 0 {
		c.Pricing.Min = defaultMinPrice
	}
	if c.Pricing.Max == 0 {
		c.Pricing.Max = defaultMaxPrice
	}
	if c.SecretKey.SessionTTL == 0 {
		c.SecretKey.SessionTTL = defaultSessionTTL
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = time.Minute
	}
}

// Validate rejects configurations the purchase flow cannot run with.
func (c *Config) Validate() error {
	if c.Pricing.Min <= 0 {
		return errors.Errorf("pricing.min must be positive, got %d", c.Pricing.Min)
	}
	if c.Pricing.Min > c.Pricing.Max {
		return errors.Errorf("pricing.min (%d) exceeds pricing.max (%d)", c.Pricing.Min, c.Pricing.Max)
	}
	if c.Pricing.Default < c.Pricing.Min || c.Pricing.Default > c.Pricing.Max {
		return errors.Errorf("pricing.default (%d) outside [%d, %d]", c.Pricing.Default, c.Pricing.Min, c.Pricing.Max)
	}
	if c.Identity != nil && c.Identity.Provider != "" {
		switch c.Identity.Provider {
		case "google", "firebase":
		default:
			return errors.Errorf("unknown identity provider: %s", c.Identity.Provider)
		}
	}

	return nil
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{i}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
