// Package config loads the application configuration from yaml files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Storage providers selectable via storage.provider.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the snapshot store backend for aggregate persistence.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Simulation configures the synthetic trend entry policy.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Voucher configures redemption voucher QR codes.
	Voucher *VoucherConfig `json:"voucher" yaml:"voucher"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the snapshot store backend and its connection details.
type StorageConfig struct {
	Provider string          `json:"provider" yaml:"provider"`
	Redis    *RedisConfig    `json:"redis" yaml:"redis"`
	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`
}

// RedisConfig defines the rueidis client settings for the redis backend.
type RedisConfig struct {
	InitAddress []string `json:"initAddress" yaml:"initAddress"`
	Username    string   `json:"username" yaml:"username"`
	Password    string   `json:"password" yaml:"password"`
	SelectDB    int      `json:"selectDb" yaml:"selectDb"`
}

// PostgresConfig defines the gorm connection for the postgres backend.
type PostgresConfig struct {
	DSN string `json:"dsn" yaml:"dsn"`
}

// SimulationConfig defines the synthetic trend sampling policy. The two rain
// probabilities are intentionally separate: live simulated days and the
// seeded history use different thresholds.
type SimulationConfig struct {
	DailyRainProbability float64 `json:"dailyRainProbability" yaml:"dailyRainProbability"`
	SeedRainProbability  float64 `json:"seedRainProbability" yaml:"seedRainProbability"`
	SeedDays             int     `json:"seedDays" yaml:"seedDays"`
}

// VoucherConfig defines redemption voucher QR generation settings.
type VoucherConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf. Defaults are loaded first, so
// a key present in the file or environment always wins, including explicit
// zero values.
func LoadWithEnv[T any](currEnv string, defaults map[string]any, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	if len(defaults) > 0 {
		if err := koanfInstance.Load(confmap.Provider(defaults, "."), nil); err != nil {
			return nil, errors.Wrap(err, "load config defaults failed")
		}
	}

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
			// Example: SIMULATION_SEEDDAYS -> simulation.seedDays (not simulation.seeddays)
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
	return LoadWithEnv[Config]("config", defaultValues(), "config", "../config", "../../config")
}

// defaultValues holds the fallbacks applied when a key is absent from both
// the yaml file and the environment. A configured zero (e.g. a rain
// probability of 0) is kept as-is.
func defaultValues() map[string]any {
	return map[string]any{
		"storage.provider":                StorageMemory,
		"simulation.dailyRainProbability": 0.5,
		"simulation.seedRainProbability":  0.35,
		"simulation.seedDays":             15,
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
