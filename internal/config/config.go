package config

import (
	"crypto/rand"
	"encoding/hex"
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

	Admin struct {
		Username     string `mapstructure:"username"`
		Password     string `mapstructure:"password"`
		PasswordHash string `mapstructure:"password_hash"`
	} `mapstructure:"admin"`

	JWT struct {
		Secret string `mapstructure:"secret"`
		Issuer string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	Session struct {
		ExpirationHours int `mapstructure:"expiration_hours"`
	} `mapstructure:"session"`

	Store struct {
		Driver string `mapstructure:"driver"`
		Dir    string `mapstructure:"dir"`
	} `mapstructure:"store"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`

	Notifications struct {
		RetentionDays        int `mapstructure:"retention_days"`
		SweepIntervalMinutes int `mapstructure:"sweep_interval_minutes"`
	} `mapstructure:"notifications"`

	Backup struct {
		Retention       int    `mapstructure:"retention"`
		IntervalMinutes int    `mapstructure:"interval_minutes"`
		S3Enabled       bool   `mapstructure:"s3_enabled"`
		S3Endpoint      string `mapstructure:"s3_endpoint"`
		S3AccessKey     string `mapstructure:"s3_access_key"`
		S3SecretKey     string `mapstructure:"s3_secret_key"`
		S3Bucket        string `mapstructure:"s3_bucket"`
		S3Region        string `mapstructure:"s3_region"`
	} `mapstructure:"backup"`

	Monitoring struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"monitoring"`

	Seed struct {
		Enabled bool   `mapstructure:"enabled"`
		File    string `mapstructure:"file"`
	} `mapstructure:"seed"`
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
	v.SetDefault("admin.username", "admin")
	v.SetDefault("jwt.issuer", "decor-backend")
	v.SetDefault("session.expiration_hours", 24)
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.dir", "data")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("notifications.retention_days", 30)
	v.SetDefault("notifications.sweep_interval_minutes", 60)
	v.SetDefault("backup.retention", 5)
	v.SetDefault("backup.interval_minutes", 0)
	v.SetDefault("backup.s3_region", "auto")
	v.SetDefault("monitoring.enabled", false)
	v.SetDefault("monitoring.port", 9090)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override store settings from STORE_* environment variables
	if driver := os.Getenv("STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if dir := os.Getenv("STORE_DIR"); dir != "" {
		cfg.Store.Dir = dir
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}

	// Override admin credentials from environment
	if user := os.Getenv("ADMIN_USERNAME"); user != "" {
		cfg.Admin.Username = user
	}
	if pass := os.Getenv("ADMIN_PASSWORD"); pass != "" {
		cfg.Admin.Password = pass
	}
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		cfg.Admin.PasswordHash = hash
	}

	// Override JWT secret from environment if not set
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if cfg.JWT.Secret == "" {
			// Random per-process secret. Sessions do not survive a restart.
			cfg.JWT.Secret = randomSecret()
			log.Printf("[Config] JWT_SECRET not set, generated ephemeral secret")
		}
	}

	// Override S3 backup credentials from environment
	if key := os.Getenv("BACKUP_S3_ACCESS_KEY"); key != "" {
		cfg.Backup.S3AccessKey = key
	}
	if secret := os.Getenv("BACKUP_S3_SECRET_KEY"); secret != "" {
		cfg.Backup.S3SecretKey = secret
	}
	if bucket := os.Getenv("BACKUP_S3_BUCKET"); bucket != "" {
		cfg.Backup.S3Bucket = bucket
	}
	if endpoint := os.Getenv("BACKUP_S3_ENDPOINT"); endpoint != "" {
		cfg.Backup.S3Endpoint = endpoint
	}
	if enabled := os.Getenv("BACKUP_S3_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			cfg.Backup.S3Enabled = b
		}
	}

	if port := os.Getenv("MONITORING_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Monitoring.Port = n
			cfg.Monitoring.Enabled = true
		}
	}

	return &cfg
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("config: cannot generate jwt secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
