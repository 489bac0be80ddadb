package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config carries every deployment knob. It is built once in main and passed
// to components explicitly; nothing reads viper after Load returns.
type Config struct {
	Port     string
	LogLevel string

	DatabaseURL string

	JWTSecret string

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailSender   string

	BaseURL   string
	UploadDir string
}

// Load reads configs/config.yml if present, then lets environment variables
// override every key. Only the secrets have no usable default.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "7331")
	v.SetDefault("log_level", "info")
	v.SetDefault("database_url", "postgres://user:password@db:5432/portfolio?sslmode=disable")
	v.SetDefault("mail_host", "smtp.gmail.com")
	v.SetDefault("mail_port", 587)
	v.SetDefault("base_url", "http://localhost")
	v.SetDefault("upload_dir", "uploads")

	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// config file is optional; env vars carry the deployment values
	}

	v.AutomaticEnv()
	for _, key := range []string{
		"port", "log_level", "database_url", "jwt_secret_key",
		"mail_host", "mail_port", "mail_username", "mail_password", "mail_sender",
		"base_url", "upload_dir",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := &Config{
		Port:         v.GetString("port"),
		LogLevel:     v.GetString("log_level"),
		DatabaseURL:  v.GetString("database_url"),
		JWTSecret:    v.GetString("jwt_secret_key"),
		MailHost:     v.GetString("mail_host"),
		MailPort:     v.GetInt("mail_port"),
		MailUsername: v.GetString("mail_username"),
		MailPassword: v.GetString("mail_password"),
		MailSender:   v.GetString("mail_sender"),
		BaseURL:      v.GetString("base_url"),
		UploadDir:    v.GetString("upload_dir"),
	}
	if cfg.MailSender == "" {
		cfg.MailSender = cfg.MailUsername
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}
	return cfg, nil
}
