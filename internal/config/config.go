// Package config loads service configuration from defaults and STOREADMIN_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"storeadmin/pkg/logger"
)

// EnvPrefix is the prefix of every environment override. Nested keys are
// separated by a double underscore: STOREADMIN_AUTH__JWT_SECRET -> auth.jwt_secret.
const EnvPrefix = "STOREADMIN_"

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Log     logger.Config `koanf:"log"`
	Auth    AuthConfig    `koanf:"auth"`
	Storage StorageConfig `koanf:"storage"`
	FX      FXConfig      `koanf:"fx"`
	List    ListConfig    `koanf:"list"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	Mode            string        `koanf:"mode" validate:"oneof=debug release test"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type AuthConfig struct {
	JWTSecret         string        `koanf:"jwt_secret" validate:"required,min=16"`
	Issuer            string        `koanf:"issuer" validate:"required"`
	AccessTokenTTL    time.Duration `koanf:"access_token_ttl" validate:"gt=0"`
	MaxLoginAttempts  int           `koanf:"max_login_attempts" validate:"gte=1"`
	LockDuration      time.Duration `koanf:"lock_duration" validate:"gt=0"`
	PasswordMinLength int           `koanf:"password_min_length" validate:"gte=6"`
	RevocationSize    int           `koanf:"revocation_size" validate:"gte=1"`
	BcryptCost        int           `koanf:"bcrypt_cost" validate:"gte=4,lte=31"`
}

type StorageConfig struct {
	Driver   string `koanf:"driver" validate:"oneof=memory postgres"`
	DSN      string `koanf:"dsn" validate:"required_if=Driver postgres"`
	MaxConns int32  `koanf:"max_conns" validate:"gte=1"`
}

// FXConfig configures the exchange-rate client. An empty BaseURL disables conversion.
type FXConfig struct {
	BaseURL   string        `koanf:"base_url" validate:"omitempty,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"gt=0"`
	CacheTTL  time.Duration `koanf:"cache_ttl" validate:"gt=0"`
	CacheSize int           `koanf:"cache_size" validate:"gte=1"`
}

// ListConfig holds list view defaults.
type ListConfig struct {
	PageSize   int `koanf:"page_size" validate:"gte=1,lte=100"`
	MaxVisible int `koanf:"max_visible" validate:"gte=3"`
	CacheSize  int `koanf:"cache_size" validate:"gte=1"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: logger.Config{
			Level:       "info",
			OutputPaths: []string{"stdout"},
		},
		Auth: AuthConfig{
			Issuer:            "storeadmin",
			AccessTokenTTL:    time.Hour,
			MaxLoginAttempts:  5,
			LockDuration:      15 * time.Minute,
			PasswordMinLength: 8,
			RevocationSize:    10_000,
			BcryptCost:        10,
		},
		Storage: StorageConfig{
			Driver:   "memory",
			MaxConns: 10,
		},
		FX: FXConfig{
			Timeout:   5 * time.Second,
			CacheTTL:  time.Hour,
			CacheSize: 256,
		},
		List: ListConfig{
			PageSize:   10,
			MaxVisible: 5,
			CacheSize:  64,
		},
	}
}

// Load builds the configuration from defaults and environment overrides and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// transformEnv maps STOREADMIN_SERVER__READ_TIMEOUT to server.read_timeout.
func transformEnv(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	if key == "" {
		return "", nil
	}
	key = strings.ToLower(strings.ReplaceAll(key, "__", "."))
	return key, value
}
