package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int    `mapstructure:"REDIS_CACHE_DB"`
	RedisNotifyQueueDB int    `mapstructure:"REDIS_NOTIFY_QUEUE_DB"`

	// Room schedule policy. The scheduling engine receives these as
	// explicit parameters; nothing below is hard-coded in engine code.
	OpenTime         string `mapstructure:"OPEN_TIME"`  // first bookable start, "HH:MM"
	CloseTime        string `mapstructure:"CLOSE_TIME"` // last bookable start, "HH:MM"
	SlotStepMinutes  int    `mapstructure:"SLOT_STEP_MINUTES"`
	MinDurationHours int    `mapstructure:"MIN_DURATION_HOURS"`
	MaxDurationHours int    `mapstructure:"MAX_DURATION_HOURS"`
	FullDayHours     int    `mapstructure:"FULL_DAY_HOURS"` // booked hours at which a day counts as fully booked
	Timezone         string `mapstructure:"TIMEZONE"`

	// Notification mail settings.
	SMTPHost       string `mapstructure:"SMTP_HOST"`
	SMTPPort       int    `mapstructure:"SMTP_PORT"`
	SMTPUser       string `mapstructure:"SMTP_USER"`
	SMTPPassword   string `mapstructure:"SMTP_PASSWORD"`
	OrganizerEmail string `mapstructure:"ORGANIZER_EMAIL"`
	OrganizerName  string `mapstructure:"ORGANIZER_NAME"`
	ArtifactDomain string `mapstructure:"ARTIFACT_DOMAIN"` // UID host part for calendar artifacts
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_NOTIFY_QUEUE_DB", 1)
	viper.SetDefault("OPEN_TIME", "09:00")
	viper.SetDefault("CLOSE_TIME", "23:30")
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("MIN_DURATION_HOURS", 1)
	viper.SetDefault("MAX_DURATION_HOURS", 4)
	viper.SetDefault("FULL_DAY_HOURS", 13)
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("ORGANIZER_EMAIL", "bookings@bandroom.local")
	viper.SetDefault("ORGANIZER_NAME", "Bandroom Bookings")
	viper.SetDefault("ARTIFACT_DOMAIN", "bandroom.local")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
