package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	SMTP     SMTP
	Signup   Signup
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	Secret   string
	Validity time.Duration
}

type SMTP struct {
	Host     string
	Port     string
	Sender   string
	Password string
}

type Signup struct {
	CodeTTL           time.Duration
	MaxVerifyAttempts int
	Lockout           time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_VALIDITY_HOURS", 24)
	viper.SetDefault("SIGNUP_CODE_TTL_MINUTES", 10)
	viper.SetDefault("SIGNUP_MAX_VERIFY_ATTEMPTS", 5)
	viper.SetDefault("SIGNUP_LOCKOUT_MINUTES", 15)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.Validity = time.Duration(viper.GetInt("JWT_VALIDITY_HOURS")) * time.Hour

	config.SMTP.Host = viper.GetString("SMTP_HOST")
	config.SMTP.Port = viper.GetString("SMTP_PORT")
	config.SMTP.Sender = viper.GetString("SMTP_SENDER")
	config.SMTP.Password = viper.GetString("SMTP_PASSWORD")

	config.Signup.CodeTTL = time.Duration(viper.GetInt("SIGNUP_CODE_TTL_MINUTES")) * time.Minute
	config.Signup.MaxVerifyAttempts = viper.GetInt("SIGNUP_MAX_VERIFY_ATTEMPTS")
	config.Signup.Lockout = time.Duration(viper.GetInt("SIGNUP_LOCKOUT_MINUTES")) * time.Minute

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
