package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"
	defaultMetricsPath        = "/metrics"

	// MinSigningKeyBytes is the shortest HMAC-SHA256 signing key accepted.
	MinSigningKeyBytes = 32
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

	Security *SecurityConfig `json:"security" yaml:"security"`

	// Users seeds the in-memory user directory.
	Users []UserConfig `json:"users" yaml:"users"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// SecurityConfig defines token signing and session lifetime configuration
type SecurityConfig struct {
	SigningKey                  string `json:"signingKey" yaml:"signingKey"`
	ClockSkewSeconds            int    `json:"clockSkewSeconds" yaml:"clockSkewSeconds"`
	AccessTokenLifetimeMinutes  int    `json:"accessTokenLifetimeMinutes" yaml:"accessTokenLifetimeMinutes"`
	RefreshTokenLifetimeMinutes int    `json:"refreshTokenLifetimeMinutes" yaml:"refreshTokenLifetimeMinutes"`

	// Deprecated: PasswordSalt belongs to the legacy shared-salt hashing mode.
	// It is read so existing config files keep loading, but hashes are always per-user salted.
	PasswordSalt string `json:"passwordSalt" yaml:"passwordSalt"`

	// PurgeIntervalMinutes enables the expired-session janitor when > 0.
	PurgeIntervalMinutes int `json:"purgeIntervalMinutes" yaml:"purgeIntervalMinutes"`

	CORSOrigins        []string `json:"corsOrigins" yaml:"corsOrigins"`
	CORSAllowedMethods []string `json:"corsAllowedMethods" yaml:"corsAllowedMethods"`
}

// ClockSkew returns the expiry tolerance window.
func (s *SecurityConfig) ClockSkew() time.Duration {
	return time.Duration(s.ClockSkewSeconds) * time.Second
}

// AccessTokenLifetime returns how long access tokens stay valid.
func (s *SecurityConfig) AccessTokenLifetime() time.Duration {
	return time.Duration(s.AccessTokenLifetimeMinutes) * time.Minute
}

// RefreshTokenLifetime returns how long refresh tokens stay valid.
func (s *SecurityConfig) RefreshTokenLifetime() time.Duration {
	return time.Duration(s.RefreshTokenLifetimeMinutes) * time.Minute
}

// PurgeInterval returns the janitor period, zero when disabled.
func (s *SecurityConfig) PurgeInterval() time.Duration {
	if s.PurgeIntervalMinutes <= 0 {
		return 0
	}

	return time.Duration(s.PurgeIntervalMinutes) * time.Minute
}

// Validate checks the security section for values that would make tokens unsafe or unusable.
func (s *SecurityConfig) Validate() error {
	if len(s.SigningKey) < MinSigningKeyBytes {
		return errors.Errorf("security.signingKey must be at least %d bytes", MinSigningKeyBytes)
	}
	if s.ClockSkewSeconds < 0 {
		return errors.New("security.clockSkewSeconds must not be negative")
	}
	if s.AccessTokenLifetimeMinutes <= 0 {
		return errors.New("security.accessTokenLifetimeMinutes must be positive")
	}
	if s.RefreshTokenLifetimeMinutes <= 0 {
		return errors.New("security.refreshTokenLifetimeMinutes must be positive")
	}

	return nil
}

// UserConfig is one seeded account. PasswordHash is the base64 salt⧺hash
// produced by cmd/hashpw or the generateHashedPassword test route.
type UserConfig struct {
	Username     string   `json:"username" yaml:"username"`
	DisplayName  string   `json:"displayName" yaml:"displayName"`
	PasswordHash string   `json:"passwordHash" yaml:"passwordHash"`
	Roles        []string `json:"roles" yaml:"roles"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// MetricsConfig defines the Prometheus scrape endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SECURITY_SIGNINGKEY -> security.signingKey (not security.signingkey)
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
				mapstructure.StringToSliceHookFunc(","),
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

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Security == nil {
		return errors.New("security section is required")
	}
	if err := cfg.Security.Validate(); err != nil {
		return err
	}

	if cfg.Metrics != nil && strings.TrimSpace(cfg.Metrics.Path) == "" {
		cfg.Metrics.Path = defaultMetricsPath
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
