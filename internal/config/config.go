package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	CacheTTL string `yaml:"cache_ttl"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port            string
	GinMode         string
	Environment     string
	LogLevel        string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTL        time.Duration
	JWTSecret       string
	JWTIssuer       string
	AccessTTL       time.Duration
	CasbinModelPath string
}

// DefaultAccessTTL is the session token lifetime used when none is configured.
const DefaultAccessTTL = 40 * time.Minute

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, applies environment overrides and validates
// the startup-fatal settings. The signing secret and the database DSN must
// be present; their absence is an error.
func Load() (*Config, error) {
	// A local .env is optional; environment wins when both are present.
	_ = godotenv.Load()

	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL := DefaultAccessTTL
	if configFile.JWT.AccessTTL != "" {
		accTTL, err = time.ParseDuration(configFile.JWT.AccessTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
		}
	}

	cacheTTL := time.Minute
	if configFile.Redis.CacheTTL != "" {
		cacheTTL, err = time.ParseDuration(configFile.Redis.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis cache TTL: %w", err)
		}
	}

	cfg := &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		Environment:     env("APP_ENV", configFile.App.Environment),
		LogLevel:        env("LOG_LEVEL", configFile.App.LogLevel),
		DSN:             env("DATABASE_URL", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		CacheTTL:        cacheTTL,
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       configFile.JWT.Issuer,
		AccessTTL:       accTTL,
		CasbinModelPath: configFile.Casbin.ModelPath,
	}
	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.DSN == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
