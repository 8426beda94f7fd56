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

	"marketplace/internal/domain/constants"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultPaymentTimeout      = 10 * time.Second
	defaultPaymentRetryBackoff = 200 * time.Millisecond
	defaultCacheTTL            = 5 * time.Minute
	defaultCacheMaxEntries     = 10000
	defaultRelayInterval       = 30 * time.Second
	defaultRelayMaxAttempts    = 5
	defaultRelayBatchSize      = 50
	defaultQRCodeSize          = 256
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Payment configures the payment gateway client and webhook handling.
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// Cache configures the product info cache.
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Moderation configures the moderation action relay.
	Moderation *ModerationConfig `json:"moderation" yaml:"moderation"`

	// QRCode configuration for checkout QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PaymentConfig holds the gateway credentials and the client policy.
type PaymentConfig struct {
	ClientID    string `json:"clientId" yaml:"clientId"`
	APIKey      string `json:"apiKey" yaml:"apiKey"`
	ChecksumKey string `json:"checksumKey" yaml:"checksumKey"`
	BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
	ReturnURL   string `json:"returnUrl" yaml:"returnUrl"`
	CancelURL   string `json:"cancelUrl" yaml:"cancelUrl"`

	// Timeout bounds a single gateway request.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`
	// RetryBackoff is the delay before the first retry; it doubles each time.
	RetryBackoff time.Duration `json:"retryBackoff" yaml:"retryBackoff"`

	// AllowUnsignedWebhook accepts webhooks failing signature verification.
	// Only honoured in the develop and test environments.
	AllowUnsignedWebhook bool `json:"allowUnsignedWebhook" yaml:"allowUnsignedWebhook"`
}

// CacheConfig selects the product cache backend.
type CacheConfig struct {
	// Provider is "memory" or "redis".
	Provider   string        `json:"provider" yaml:"provider"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	// MaxEntries bounds the memory provider; the least recently used entry
	// is evicted first.
	MaxEntries int           `json:"maxEntries" yaml:"maxEntries"`
	Redis      struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
	} `json:"redis" yaml:"redis"`
}

// ModerationConfig tunes the moderation relay worker.
type ModerationConfig struct {
	RelayInterval time.Duration `json:"relayInterval" yaml:"relayInterval"`
	MaxAttempts   int           `json:"maxAttempts" yaml:"maxAttempts"`
	BatchSize     int           `json:"batchSize" yaml:"batchSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// AllowsUnsignedWebhook reports whether webhooks with a bad signature may be
// processed. It is never true outside the develop and test environments.
func (c *Config) AllowsUnsignedWebhook() bool {
	if c.Payment == nil || !c.Payment.AllowUnsignedWebhook {
		return false
	}

	return c.Env.Env == constants.EnvDevelop || c.Env.Env == constants.EnvTest
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.Timeout <= 0 {
		cfg.Payment.Timeout = defaultPaymentTimeout
	}
	if cfg.Payment.MaxRetries < 0 {
		cfg.Payment.MaxRetries = 0
	}
	if cfg.Payment.RetryBackoff <= 0 {
		cfg.Payment.RetryBackoff = defaultPaymentRetryBackoff
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.Provider == "" {
		cfg.Cache.Provider = constants.CacheProviderMemory
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Cache.MaxEntries <= 0 {
		cfg.Cache.MaxEntries = defaultCacheMaxEntries
	}

	if cfg.Moderation == nil {
		cfg.Moderation = &ModerationConfig{}
	}
	if cfg.Moderation.RelayInterval <= 0 {
		cfg.Moderation.RelayInterval = defaultRelayInterval
	}
	if cfg.Moderation.MaxAttempts <= 0 {
		cfg.Moderation.MaxAttempts = defaultRelayMaxAttempts
	}
	if cfg.Moderation.BatchSize <= 0 {
		cfg.Moderation.BatchSize = defaultRelayBatchSize
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
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
