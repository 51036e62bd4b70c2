package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Database    Database
	Auth        Auth
	Upload      Upload
	Exam        Exam
	Log         Log
	Diagnostics Diagnostics
	Swagger     Swagger
}

type Server struct {
	Port         string
	GinMode      string
	AllowOrigins []string
}

type Database struct {
	Driver       string // "sqlite" or "postgres"
	Path         string // sqlite file, ignored for postgres
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// Auth holds the placeholder identity source. There is no real authentication;
// TrustUserHeader lets an authenticating proxy in front of the API supply the owner.
type Auth struct {
	DefaultUserID   string
	TrustUserHeader bool
	UserHeader      string
}

type Upload struct {
	MaxBytes int64
}

type Exam struct {
	StartScopedToOwner bool
}

type Log struct {
	Level  string
	Pretty bool
}

type Diagnostics struct {
	Enabled bool
}

type Swagger struct {
	Enabled bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_PATH", "egzamapp.db")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 10)

	v.SetDefault("AUTH_DEFAULT_USER_ID", "demo-user")
	v.SetDefault("AUTH_TRUST_USER_HEADER", false)
	v.SetDefault("AUTH_USER_HEADER", "X-User-Id")

	v.SetDefault("UPLOAD_MAX_BYTES", 10<<20)
	v.SetDefault("EXAM_START_SCOPED_TO_OWNER", true)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("DIAGNOSTICS_ENABLED", false)
	v.SetDefault("SWAGGER_ENABLED", true)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment only")
	}

	cfg := fromViper(v)

	log.Info().
		Str("port", cfg.Server.Port).
		Str("db_driver", cfg.Database.Driver).
		Str("db_host", cfg.Database.Host).
		Str("db_name", cfg.Database.Name).
		Str("default_user", cfg.Auth.DefaultUserID).
		Bool("trust_user_header", cfg.Auth.TrustUserHeader).
		Bool("start_scoped_to_owner", cfg.Exam.StartScopedToOwner).
		Bool("diagnostics", cfg.Diagnostics.Enabled).
		Msg("Config loaded")
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	var cfg Config

	cfg.Server.Port = v.GetString("SERVER_PORT")
	cfg.Server.GinMode = v.GetString("GIN_MODE")
	cfg.Server.AllowOrigins = splitCSV(v.GetString("CORS_ALLOW_ORIGINS"))

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER")))
	cfg.Database.Path = v.GetString("DATABASE_PATH")
	cfg.Database.Host = v.GetString("DATABASE_HOST")
	cfg.Database.Port = v.GetString("DATABASE_PORT")
	cfg.Database.User = v.GetString("DATABASE_USER")
	cfg.Database.Password = v.GetString("DATABASE_PASSWORD")
	cfg.Database.Name = v.GetString("DATABASE_NAME")
	cfg.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	cfg.Database.MaxOpenConns = v.GetInt("DATABASE_MAX_OPEN_CONNS")
	cfg.Database.MaxIdleConns = v.GetInt("DATABASE_MAX_IDLE_CONNS")

	cfg.Auth.DefaultUserID = v.GetString("AUTH_DEFAULT_USER_ID")
	cfg.Auth.TrustUserHeader = v.GetBool("AUTH_TRUST_USER_HEADER")
	cfg.Auth.UserHeader = v.GetString("AUTH_USER_HEADER")

	cfg.Upload.MaxBytes = v.GetInt64("UPLOAD_MAX_BYTES")
	cfg.Exam.StartScopedToOwner = v.GetBool("EXAM_START_SCOPED_TO_OWNER")

	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.Log.Pretty = v.GetBool("LOG_PRETTY")
	cfg.Diagnostics.Enabled = v.GetBool("DIAGNOSTICS_ENABLED")
	cfg.Swagger.Enabled = v.GetBool("SWAGGER_ENABLED")

	return &cfg
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
