package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log      Logger         `mapstructure:"logger"`
	DB       Database       `mapstructure:"database"`
	API      API            `mapstructure:"api"`
	Auth     Auth           `mapstructure:"auth"`
	AI       AI             `mapstructure:"ai"`
	News     News           `mapstructure:"news"`
	Cache    Cache          `mapstructure:"cache"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

// Auth describes the token contract of the external identity provider.
// The provider owns issuance; we only check signature, issuer and audience
// before trusting the subject claim as the owner identifier.
type Auth struct {
	Issuer   string `mapstructure:"issuer"`
	Audience string `mapstructure:"audience"`
	Secret   string `mapstructure:"secret"`
}

type AI struct {
	Provider string       `mapstructure:"provider"`
	Gemini   GeminiConfig `mapstructure:"gemini"`
	OpenAI   OpenAIConfig `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	BaseModel           string        `mapstructure:"base_model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
}

type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type News struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	PageSize            int           `mapstructure:"page_size"`
	BodyMatchThreshold  int           `mapstructure:"body_match_threshold"`
	CachePath           string        `mapstructure:"cache_path"`
	CacheTTL            time.Duration `mapstructure:"cache_ttl"`
	RefreshSchedule     string        `mapstructure:"refresh_schedule"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

func Load() (*Config, error) {
	// Local development keeps secrets in .env; a missing file is fine.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("ai.gemini.base_model", "gemini-2.0-flash")
	viper.SetDefault("ai.gemini.timeout", 60*time.Second)
	viper.SetDefault("ai.gemini.max_request_per_minute", 15)
	viper.SetDefault("ai.gemini.max_token_per_minute", 1000000)
	viper.SetDefault("ai.openai.model", "gpt-4o-mini")
	viper.SetDefault("ai.openai.timeout", 60*time.Second)
	viper.SetDefault("news.base_url", "https://newsapi.org/v2")
	viper.SetDefault("news.timeout", 30*time.Second)
	viper.SetDefault("news.max_request_per_minute", 30)
	viper.SetDefault("news.page_size", 20)
	viper.SetDefault("news.body_match_threshold", 1)
	viper.SetDefault("news.cache_path", "data/news-cache.json")
	viper.SetDefault("news.cache_ttl", time.Hour)
	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
}
