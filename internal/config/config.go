package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingMongoURI is returned by Load when MONGO_URI is not set.
var ErrMissingMongoURI = errors.New("MONGO_URI is required")

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Media     MediaConfig
	Admin     AdminConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
	LogLevel  string
	EnvLoaded bool
}

type ServerConfig struct {
	Port         string
	Host         string
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type MediaConfig struct {
	Provider   string
	Cloudinary CloudinaryConfig
	MinIO      MinIOConfig
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type AdminConfig struct {
	Password string
	Token    string
}

type UploadConfig struct {
	TmpDir   string
	MaxBytes int64
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	RedisAddr     string
	RedisPassword string
}

// Load reads the process environment once. A .env file in the working
// directory is loaded first when present; real environment values win.
func Load() (*Config, error) {
	loaded := false
	if _, err := os.Stat(".env"); err == nil {
		loaded = godotenv.Load() == nil
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("MONGO_DB", "productCatalog")
	v.SetDefault("MONGO_COLLECTION", "products")
	v.SetDefault("MONGO_TIMEOUT", 10)
	v.SetDefault("MEDIA_PROVIDER", "cloudinary")
	v.SetDefault("MINIO_BUCKET", "products")
	v.SetDefault("UPLOAD_TMP_DIR", os.TempDir())
	v.SetDefault("UPLOAD_MAX_BYTES", 10<<20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOGIN_RATE_LIMIT_ENABLED", false)
	v.SetDefault("LOGIN_RATE_LIMIT_RPS", 1.0)
	v.SetDefault("LOGIN_RATE_LIMIT_BURST", 5)

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Host:         v.GetString("HOST"),
			Mode:         v.GetString("GIN_MODE"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Mongo: MongoConfig{
			URI:        v.GetString("MONGO_URI"),
			Database:   v.GetString("MONGO_DB"),
			Collection: v.GetString("MONGO_COLLECTION"),
			Timeout:    time.Duration(v.GetInt("MONGO_TIMEOUT")) * time.Second,
		},
		Media: MediaConfig{
			Provider: v.GetString("MEDIA_PROVIDER"),
			Cloudinary: CloudinaryConfig{
				CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
				APIKey:    v.GetString("CLOUDINARY_API_KEY"),
				APISecret: v.GetString("CLOUDINARY_API_SECRET"),
			},
			MinIO: MinIOConfig{
				Endpoint:  v.GetString("MINIO_ENDPOINT"),
				AccessKey: v.GetString("MINIO_ACCESS_KEY"),
				SecretKey: v.GetString("MINIO_SECRET_KEY"),
				UseSSL:    v.GetBool("MINIO_USE_SSL"),
				Bucket:    v.GetString("MINIO_BUCKET"),
			},
		},
		Admin: AdminConfig{
			Password: v.GetString("ADMIN_PASSWORD"),
			Token:    v.GetString("ADMIN_TOKEN"),
		},
		Upload: UploadConfig{
			TmpDir:   v.GetString("UPLOAD_TMP_DIR"),
			MaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("LOGIN_RATE_LIMIT_ENABLED"),
			RPS:           v.GetFloat64("LOGIN_RATE_LIMIT_RPS"),
			Burst:         v.GetInt("LOGIN_RATE_LIMIT_BURST"),
			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
		},
		LogLevel:  v.GetString("LOG_LEVEL"),
		EnvLoaded: loaded,
	}

	if cfg.Mongo.URI == "" {
		return nil, ErrMissingMongoURI
	}
	if cfg.Mongo.Timeout <= 0 {
		cfg.Mongo.Timeout = 10 * time.Second
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
