package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"secretary-api/core/constants"
)

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SchedulingConfig externalizes the slot-search policy
type SchedulingConfig struct {
	Timezone          string `mapstructure:"timezone"`
	MeetingMinutes    int    `mapstructure:"meeting_minutes"`
	WorkingHoursStart int    `mapstructure:"working_hours_start"`
	WorkingHoursEnd   int    `mapstructure:"working_hours_end"`
	WeekendDays       []int  `mapstructure:"weekend_days"` // time.Weekday values
	BufferMinutes     int    `mapstructure:"buffer_minutes"`
	MaxSlots          int    `mapstructure:"max_slots"`
	SearchHorizonDays int    `mapstructure:"search_horizon_days"`
}

type GoogleAPIConfig struct {
	ClientID      string `mapstructure:"client_id"`
	ClientSecret  string `mapstructure:"client_secret"`
	RefreshToken  string `mapstructure:"refresh_token"`
	CalendarID    string `mapstructure:"calendar_id"`
	SpreadsheetID string `mapstructure:"spreadsheet_id"`
	SheetName     string `mapstructure:"sheet_name"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SessionConfig struct {
	TTLMinutes  int    `mapstructure:"ttl_minutes"`
	TokenSecret string `mapstructure:"token_secret"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Scheduling SchedulingConfig `mapstructure:"scheduling"`
	GoogleAPI  GoogleAPIConfig  `mapstructure:"google"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Session    SessionConfig    `mapstructure:"session"`
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env, config.yaml (optional) and environment variables.
// Environment keys use the SECRETARY_ prefix, e.g. SECRETARY_GOOGLE_CLIENT_ID.
func Load() error {
	// .env is optional; ignore missing file
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SECRETARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	mu.Lock()
	instance = &cfg
	mu.Unlock()
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("scheduling.timezone", constants.DefaultTimezone)
	v.SetDefault("scheduling.meeting_minutes", constants.DefaultMeetingMinutes)
	v.SetDefault("scheduling.working_hours_start", constants.DefaultWorkingHoursStart)
	v.SetDefault("scheduling.working_hours_end", constants.DefaultWorkingHoursEnd)
	// Friday, Saturday, Sunday
	v.SetDefault("scheduling.weekend_days", []int{5, 6, 0})
	v.SetDefault("scheduling.buffer_minutes", constants.DefaultBufferMinutes)
	v.SetDefault("scheduling.max_slots", constants.DefaultMaxSlots)
	v.SetDefault("scheduling.search_horizon_days", constants.DefaultSearchHorizonDays)

	// empty defaults register the keys so env-only values survive Unmarshal
	v.SetDefault("server.base_url", "")
	v.SetDefault("google.client_id", "")
	v.SetDefault("google.client_secret", "")
	v.SetDefault("google.refresh_token", "")
	v.SetDefault("google.spreadsheet_id", "")
	v.SetDefault("google.calendar_id", "primary")
	v.SetDefault("google.sheet_name", "Meeting Requests")
	v.SetDefault("session.token_secret", "")
	v.SetDefault("redis.password", "")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.ttl_minutes", constants.DefaultSessionTTLMinutes)
}

// Get returns the loaded config; panics if Load was never called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config not loaded")
	}
	return instance
}

// GetSafe returns the loaded config and whether it is initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
