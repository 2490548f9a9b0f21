package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Log      Log
	Database Database
	Auth     Auth
	Seed     Seed
	Grading  Grading
}

type Server struct {
	Port    string
	GinMode string
}

type Log struct {
	Level string
}

type Database struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite file, ":memory:" allowed
	Host     string
	Port     string
	User     string
	Password string `json:"-"`
	Name     string
}

type Auth struct {
	JWTSecret string `json:"-"`
	JWTTTL    time.Duration
	// SchoolVerificationToken is the token a new school redeems on /verify-token.
	SchoolVerificationToken string `json:"-"`
}

type Seed struct {
	DemoData bool
	Password string `json:"-"`
}

type Grading struct {
	GeminiAPIKey string `json:"-"`
	GeminiModel  string
	Concurrency  int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_PATH", "eduportal.db")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("SCHOOL_VERIFICATION_TOKEN", "VALID_TOKEN")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("SEED_PASSWORD", "password")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("GRADING_CONCURRENCY", 4)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment and defaults")
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Log.Level = v.GetString("LOG_LEVEL")

	config.Database.Driver = v.GetString("DATABASE_DRIVER")
	config.Database.Path = v.GetString("DATABASE_PATH")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = v.GetString("JWT_SECRET")
	config.Auth.JWTTTL = v.GetDuration("JWT_TTL")
	config.Auth.SchoolVerificationToken = v.GetString("SCHOOL_VERIFICATION_TOKEN")

	config.Seed.DemoData = v.GetBool("SEED_DEMO_DATA")
	config.Seed.Password = v.GetString("SEED_PASSWORD")

	config.Grading.GeminiAPIKey = v.GetString("GEMINI_API_KEY")
	config.Grading.GeminiModel = v.GetString("GEMINI_MODEL")
	config.Grading.Concurrency = v.GetInt("GRADING_CONCURRENCY")

	if config.Auth.JWTSecret == "change-me" {
		log.Warn().Msg("JWT_SECRET is not set, using the insecure default")
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
