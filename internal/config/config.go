package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/traffiscan/pkg/geo"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Kafka Config (лента изменений инцидентов, пустой список брокеров отключает ленту)
	KafkaBrokers       []string `env:"KAFKA_BROKERS"`
	KafkaIncidentTopic string   `env:"KAFKA_INCIDENT_TOPIC" envDefault:"traffic-incidents"`

	// Weather Config
	OpenMeteoURL        string        `env:"OPEN_METEO_URL" envDefault:"https://api.open-meteo.com"`
	WeatherTimeout      time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
	WeatherCacheTTL     time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"60s"`
	WeatherPollInterval time.Duration `env:"WEATHER_POLL_INTERVAL" envDefault:"5m"`

	// Координата по умолчанию, если пользователь не передал свою
	DefaultLatitude  float64 `env:"DEFAULT_LATITUDE" envDefault:"25.2048"`
	DefaultLongitude float64 `env:"DEFAULT_LONGITUDE" envDefault:"55.2708"`

	// Proximity Config
	NearbyRadiusKm    float64 `env:"NEARBY_RADIUS_KM" envDefault:"5"`
	AlertRadiusKm     float64 `env:"ALERT_RADIUS_KM" envDefault:"8"`
	NearbyMaxResults  int     `env:"NEARBY_MAX_RESULTS" envDefault:"5"`
	AlertMaxIncidents int     `env:"ALERT_MAX_INCIDENTS" envDefault:"2"`
	AlertTimezone     string  `env:"ALERT_TIMEZONE" envDefault:"UTC"`

	SimulatorEnabled bool `env:"SIMULATOR_ENABLED" envDefault:"false"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// HTTP Config
	RateLimitRPS int      `env:"RATE_LIMIT_RPS" envDefault:"20"`
	CORSOrigins  []string `env:"CORS_ORIGINS" envDefault:"*"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		KafkaBrokers:           getEnvAsList("KAFKA_BROKERS", nil),
		KafkaIncidentTopic:     getEnv("KAFKA_INCIDENT_TOPIC", "traffic-incidents"),
		OpenMeteoURL:           getEnv("OPEN_METEO_URL", "https://api.open-meteo.com"),
		WeatherTimeout:         getEnvAsDuration("WEATHER_TIMEOUT", 5*time.Second),
		WeatherCacheTTL:        getEnvAsDuration("WEATHER_CACHE_TTL", time.Minute),
		WeatherPollInterval:    getEnvAsDuration("WEATHER_POLL_INTERVAL", 5*time.Minute),
		DefaultLatitude:        getEnvAsFloat("DEFAULT_LATITUDE", 25.2048),
		DefaultLongitude:       getEnvAsFloat("DEFAULT_LONGITUDE", 55.2708),
		NearbyRadiusKm:         getEnvAsFloat("NEARBY_RADIUS_KM", 5),
		AlertRadiusKm:          getEnvAsFloat("ALERT_RADIUS_KM", 8),
		NearbyMaxResults:       getEnvAsInt("NEARBY_MAX_RESULTS", 5),
		AlertMaxIncidents:      getEnvAsInt("ALERT_MAX_INCIDENTS", 2),
		AlertTimezone:          getEnv("ALERT_TIMEZONE", "UTC"),
		SimulatorEnabled:       getEnvAsBool("SIMULATOR_ENABLED", false),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		RateLimitRPS:           getEnvAsInt("RATE_LIMIT_RPS", 20),
		CORSOrigins:            getEnvAsList("CORS_ORIGINS", []string{"*"}),
		APIKeys:                getEnvAsList("API_KEYS", nil),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if err := c.DefaultLocation().Validate(); err != nil {
		return fmt.Errorf("invalid default location: %w", err)
	}
	if c.NearbyRadiusKm <= 0 || c.AlertRadiusKm <= 0 {
		return fmt.Errorf("NEARBY_RADIUS_KM and ALERT_RADIUS_KM must be positive")
	}
	if c.NearbyMaxResults < 1 {
		return fmt.Errorf("NEARBY_MAX_RESULTS must be at least 1")
	}
	if c.WeatherPollInterval < 30*time.Second {
		return fmt.Errorf("WEATHER_POLL_INTERVAL must be at least 30s")
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1")
	}
	if c.RateLimitRPS < 1 {
		return fmt.Errorf("RATE_LIMIT_RPS must be at least 1")
	}
	if _, err := time.LoadLocation(c.AlertTimezone); err != nil {
		return fmt.Errorf("invalid ALERT_TIMEZONE %q: %w", c.AlertTimezone, err)
	}
	return nil
}

// DefaultLocation - координата, используемая когда геолокация пользователя недоступна
func (c *Config) DefaultLocation() geo.Coordinate {
	return geo.Coordinate{Lat: c.DefaultLatitude, Lng: c.DefaultLongitude}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
