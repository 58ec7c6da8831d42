package utils

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config is loaded once at process start and passed into constructors.
// Values come from config.yaml with environment variables taking precedence,
// so a bare container with only env vars still works.
type Config struct {
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey      string `yaml:"GEMINI_API_KEY"`
	GeminiModel       string `yaml:"GEMINI_MODEL"`
	GeminiVisionModel string `yaml:"GEMINI_VISION_MODEL"`

	// Push notifications
	ExpoPushURL   string `yaml:"EXPO_PUSH_URL"`
	CronSecretKey string `yaml:"CRON_SECRET_KEY"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if file, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	overlayEnv(&cfg.AppPort, "APP_PORT")
	overlayEnv(&cfg.DBUser, "DB_USER")
	overlayEnv(&cfg.DBName, "DB_NAME")
	overlayEnv(&cfg.DBPassword, "DB_PASSWORD")
	overlayEnv(&cfg.DBPort, "DB_PORT")
	overlayEnv(&cfg.DBHost, "DB_HOST")
	overlayEnv(&cfg.JWTSecret, "JWT_SECRET")
	overlayEnv(&cfg.SMTPHost, "SMTP_HOST")
	overlayEnv(&cfg.SMTPPort, "SMTP_PORT")
	overlayEnv(&cfg.SMTPSenderName, "SMTP_SENDER_NAME")
	overlayEnv(&cfg.SMTPAuthEmail, "SMTP_AUTH_EMAIL")
	overlayEnv(&cfg.SMTPAuthPassword, "SMTP_AUTH_PASSWORD")
	overlayEnv(&cfg.AWSS3Bucket, "AWS_S3_BUCKET")
	overlayEnv(&cfg.AWSS3Region, "AWS_S3_REGION")
	overlayEnv(&cfg.AWSAccessKey, "AWS_ACCESS_KEY")
	overlayEnv(&cfg.AWSSecretKey, "AWS_SECRET_KEY")
	overlayEnv(&cfg.GeminiAPIKey, "GEMINI_API_KEY")
	overlayEnv(&cfg.GeminiModel, "GEMINI_MODEL")
	overlayEnv(&cfg.GeminiVisionModel, "GEMINI_VISION_MODEL")
	overlayEnv(&cfg.ExpoPushURL, "EXPO_PUSH_URL")
	overlayEnv(&cfg.CronSecretKey, "CRON_SECRET_KEY")

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash"
	}
	if cfg.GeminiVisionModel == "" {
		cfg.GeminiVisionModel = "gemini-2.5-flash-lite"
	}
	if cfg.ExpoPushURL == "" {
		cfg.ExpoPushURL = "https://exp.host/--/api/v2/push/send"
	}

	return cfg, nil
}

func overlayEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
