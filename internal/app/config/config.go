package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Env         string

	Storage   StorageConfig
	MinIO     MinIOConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	JWT       JWTConfig

	Redis RedisConfig `mapstructure:"-"`
	Admin AdminConfig `mapstructure:"-"`
}

type StorageConfig struct {
	Backend     string // "local" or "minio"
	UploadDir   string `mapstructure:"upload_dir"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

type MinIOConfig struct {
	Endpoint  string
	Bucket    string
	UseSSL    bool   `mapstructure:"use_ssl"`
	AccessKey string `mapstructure:"-"`
	SecretKey string `mapstructure:"-"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type JWTConfig struct {
	Token         string            `mapstructure:"-"`
	ExpiresIn     time.Duration     `mapstructure:"expires_in"`
	SigningMethod jwt.SigningMethod `mapstructure:"-"`
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// AdminConfig is the account cmd/migrate seeds when its login is not taken yet.
type AdminConfig struct {
	Login    string
	Password string
}

const (
	envConfigName = "CONFIG_NAME"
	envJWTSecret  = "JWT_SECRET"
	envRedisHost  = "REDIS_HOST"
	envRedisPort  = "REDIS_PORT"
	envRedisUser  = "REDIS_USER"
	envRedisPass  = "REDIS_PASSWORD"
	envMinIOKey   = "MINIO_ACCESS_KEY"
	envMinIOSec   = "MINIO_SECRET_KEY"
	envAdminLogin = "ADMIN_LOGIN"
	envAdminPass  = "ADMIN_PASSWORD"

	defaultRedisPort = 6379
)

var ErrNoJWTSecret = errors.New(envJWTSecret + " must be set outside dev")

// NewConfig reads config/<CONFIG_NAME>.toml and the environment (.env included).
func NewConfig() (*Config, error) {
	_ = godotenv.Load()
	return Load(afero.NewOsFs())
}

// Load reads the TOML config from fs. Secrets only ever come from the environment.
func Load(fs afero.Fs) (*Config, error) {
	configName := "config"
	if os.Getenv(envConfigName) != "" {
		configName = os.Getenv(envConfigName)
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.JWT.Token = os.Getenv(envJWTSecret)
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256
	if cfg.JWT.Token == "" {
		if cfg.Env != "dev" {
			return nil, ErrNoJWTSecret
		}
		cfg.JWT.Token = "dev-secret"
		log.Warn("JWT_SECRET not set, using the dev secret")
	}

	cfg.MinIO.AccessKey = os.Getenv(envMinIOKey)
	cfg.MinIO.SecretKey = os.Getenv(envMinIOSec)

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port = defaultRedisPort
	if p := os.Getenv(envRedisPort); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
		cfg.Redis.Port = port
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	cfg.Admin.Login = os.Getenv(envAdminLogin)
	cfg.Admin.Password = os.Getenv(envAdminPass)

	log.Info("config parsed")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("Env", "dev")
	v.SetDefault("Storage.Backend", "local")
	v.SetDefault("Storage.upload_dir", "uploads")
	v.SetDefault("Storage.max_upload_mb", 20)
	v.SetDefault("MinIO.Bucket", "printshop-uploads")
	v.SetDefault("CORS.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("RateLimit.RPS", 10)
	v.SetDefault("RateLimit.Burst", 20)
	v.SetDefault("JWT.expires_in", "12h")
}

// MaxUploadBytes is the per-file upload limit.
func (c *Config) MaxUploadBytes() int64 {
	return c.Storage.MaxUploadMB << 20
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}
