package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Google Workspace access.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`

	// Recruiter availability constraints. Times are "HH:MM" wall clock.
	AvailEarliestMeeting  string `mapstructure:"AVAIL_EARLIEST_MEETING"`
	AvailLatestMeetingEnd string `mapstructure:"AVAIL_LATEST_MEETING_END"`
	AvailLunchStart       string `mapstructure:"AVAIL_LUNCH_START"`
	AvailLunchEnd         string `mapstructure:"AVAIL_LUNCH_END"`
	AvailMeetingMinutes   int    `mapstructure:"AVAIL_MEETING_MINUTES"`
	AvailMinBreakMinutes  int    `mapstructure:"AVAIL_MIN_BREAK_MINUTES"`
	AvailMaxMeetingsPerDay int   `mapstructure:"AVAIL_MAX_MEETINGS_PER_DAY"`
	AvailSetupMinutes     int    `mapstructure:"AVAIL_SETUP_MINUTES"`

	// Slot proposal behaviour.
	ProposalSlots    int `mapstructure:"PROPOSAL_SLOTS"`
	SearchDaysAhead  int `mapstructure:"SEARCH_DAYS_AHEAD"`
	ProposalTTLMin   int `mapstructure:"PROPOSAL_TTL_MIN"`
	AvailCacheTTLMin int `mapstructure:"AVAIL_CACHE_TTL_MIN"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("AVAIL_EARLIEST_MEETING", "10:00")
	viper.SetDefault("AVAIL_LATEST_MEETING_END", "18:00")
	viper.SetDefault("AVAIL_LUNCH_START", "13:00")
	viper.SetDefault("AVAIL_LUNCH_END", "14:00")
	viper.SetDefault("AVAIL_MEETING_MINUTES", 45)
	viper.SetDefault("AVAIL_MIN_BREAK_MINUTES", 5)
	viper.SetDefault("AVAIL_MAX_MEETINGS_PER_DAY", 4)
	viper.SetDefault("AVAIL_SETUP_MINUTES", 5)
	viper.SetDefault("PROPOSAL_SLOTS", 3)
	viper.SetDefault("SEARCH_DAYS_AHEAD", 14)
	viper.SetDefault("PROPOSAL_TTL_MIN", 30)
	viper.SetDefault("AVAIL_CACHE_TTL_MIN", 5)

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
