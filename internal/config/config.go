package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Store struct {
		// Driver: postgres, sqlite or memory. The opener cascades
		// postgres -> sqlite -> memory when a backend fails.
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"` // sqlite file
		Host   string `mapstructure:"host"`
		Port   int    `mapstructure:"port"`
		User   string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name   string `mapstructure:"name"`
	} `mapstructure:"store"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`

	Backup struct {
		Enabled         bool   `mapstructure:"enabled"`
		Endpoint        string `mapstructure:"endpoint"`
		Region          string `mapstructure:"region"`
		Bucket          string `mapstructure:"bucket"`
		AccessKey       string `mapstructure:"access_key"`
		SecretKey       string `mapstructure:"secret_key"`
		IntervalMinutes int    `mapstructure:"interval_minutes"`
	} `mapstructure:"backup"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "rms-backend")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "rms.db")
	v.SetDefault("store.host", "localhost")
	v.SetDefault("store.port", 5432)
	v.SetDefault("store.user", "postgres")
	v.SetDefault("store.name", "rms_db")
	v.SetDefault("backup.region", "auto")
	v.SetDefault("backup.interval_minutes", 60)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override store settings from DB_* environment variables
	if driver := os.Getenv("STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if path := os.Getenv("STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Store.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Store.Port = n
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Store.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Store.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Store.Name = name
	}

	// Override JWT secret from environment if not set
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if cfg.JWT.Secret == "" {
			// Single-operator local console; a generated default keeps the
			// binary usable out of the box. Tokens do not survive restarts.
			log.Printf("[Config] JWT_SECRET not set, using ephemeral secret (sessions reset on restart)")
			cfg.JWT.Secret = ephemeralSecret()
		}
	}

	// Redis is optional
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}

	// Backup credentials come from the environment, never the config file
	if key := os.Getenv("BACKUP_ACCESS_KEY"); key != "" {
		cfg.Backup.AccessKey = key
	}
	if secret := os.Getenv("BACKUP_SECRET_KEY"); secret != "" {
		cfg.Backup.SecretKey = secret
	}

	return &cfg
}
