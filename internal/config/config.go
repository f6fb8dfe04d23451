package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/ini.v1"
)

// DefaultFile is the configuration file read when --config is not given.
const DefaultFile = "database.ini"

const (
	postgresSection = "postgresql"
	minioSection    = "minio"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the uploader.
// It is populated from the INI file first, then overridden by
// environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Database DatabaseConfig
	MinIO    MinIOConfig

	// StorageEnabled reports whether a [minio] section was present,
	// i.e. whether resource content should be offloaded to object
	// storage instead of being stored inline.
	StorageEnabled bool
}

// Load reads configuration from the named INI file and layers
// environment variable overrides on top. A .env file can be
// auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over both.
//
// The [postgresql] section is required; [minio] is optional.
func Load(filename string) (*AppConfig, error) {
	f, err := ini.Load(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", filename, err)
	}

	pg, err := f.GetSection(postgresSection)
	if err != nil {
		return nil, fmt.Errorf("section %q not found in the %s file", postgresSection, filename)
	}

	cfg := &AppConfig{
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", pg.Key("host").String()),
			Port:               getEnv("DB_PORT", keyOr(pg, "port", "5432")),
			User:               getEnv("DB_USER", pg.Key("user").String()),
			Password:           getEnv("DB_PASSWORD", pg.Key("password").String()),
			Name:               getEnv("DB_NAME", pg.Key("dbname").String()),
			SSLMode:            getEnv("DB_SSLMODE", keyOr(pg, "sslmode", "disable")),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", keyOrInt(pg, "max_open_conns", 10)),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", keyOrInt(pg, "max_idle_conns", 5)),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", keyOrInt(pg, "conn_max_lifetime_sec", 300)),
		},
	}

	if mi, err := f.GetSection(minioSection); err == nil {
		cfg.StorageEnabled = true
		cfg.MinIO = MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", mi.Key("endpoint").String()),
			AccessKey: getEnv("MINIO_ACCESS_KEY", mi.Key("access_key").String()),
			SecretKey: getEnv("MINIO_SECRET_KEY", mi.Key("secret_key").String()),
			Bucket:    getEnv("MINIO_BUCKET", mi.Key("bucket").String()),
			UseSSL:    getEnvBool("MINIO_USE_SSL", mi.Key("use_ssl").MustBool(false)),
		}
	}

	return cfg, nil
}

func keyOr(s *ini.Section, name, def string) string {
	if v := s.Key(name).String(); v != "" {
		return v
	}
	return def
}

func keyOrInt(s *ini.Section, name string, def int) int {
	if v := s.Key(name).String(); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
