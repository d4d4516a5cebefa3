package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Places   PlacesConfig
	Geo      GeoConfig
	Search   SearchConfig
	History  HistoryConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type PlacesConfig struct {
	BaseURL        string
	APIKey         string
	Language       string
	RequestTimeout int // seconds
}

type GeoConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
	DefaultLat     float64
	DefaultLon     float64
}

type SearchConfig struct {
	DebounceInterval time.Duration
	MinQueryLength   int
	RadiusMeters     int
	CacheTTL         time.Duration
	SessionTTL       time.Duration
}

type HistoryConfig struct {
	Capacity       int
	StorageKey     string
	StorageBackend string // "redis" or "postgres"
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Places: PlacesConfig{
			BaseURL:        viper.GetString("PLACES_BASE_URL"),
			APIKey:         viper.GetString("PLACES_API_KEY"),
			Language:       viper.GetString("PLACES_LANGUAGE"),
			RequestTimeout: viper.GetInt("PLACES_REQUEST_TIMEOUT"),
		},
		Geo: GeoConfig{
			BaseURL:        viper.GetString("GEO_BASE_URL"),
			RequestTimeout: viper.GetInt("GEO_REQUEST_TIMEOUT"),
			DefaultLat:     viper.GetFloat64("GEO_DEFAULT_LAT"),
			DefaultLon:     viper.GetFloat64("GEO_DEFAULT_LON"),
		},
		Search: SearchConfig{
			DebounceInterval: time.Duration(viper.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond,
			MinQueryLength:   viper.GetInt("SEARCH_MIN_QUERY_LENGTH"),
			RadiusMeters:     viper.GetInt("SEARCH_RADIUS_METERS"),
			CacheTTL:         time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
			SessionTTL:       time.Duration(viper.GetInt("SEARCH_SESSION_TTL")) * time.Second,
		},
		History: HistoryConfig{
			Capacity:       viper.GetInt("HISTORY_CAPACITY"),
			StorageKey:     viper.GetString("HISTORY_STORAGE_KEY"),
			StorageBackend: viper.GetString("HISTORY_STORAGE_BACKEND"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Places.Language == "" {
		cfg.Places.Language = "en"
	}
	if cfg.Places.RequestTimeout == 0 {
		cfg.Places.RequestTimeout = 10
	}
	if cfg.Geo.RequestTimeout == 0 {
		cfg.Geo.RequestTimeout = 5
	}
	if cfg.Geo.DefaultLat == 0 && cfg.Geo.DefaultLon == 0 {
		// San Francisco
		cfg.Geo.DefaultLat = 37.7749
		cfg.Geo.DefaultLon = -122.4194
	}
	if cfg.Search.DebounceInterval == 0 {
		cfg.Search.DebounceInterval = 300 * time.Millisecond
	}
	if cfg.Search.MinQueryLength == 0 {
		cfg.Search.MinQueryLength = 2
	}
	if cfg.Search.RadiusMeters == 0 {
		cfg.Search.RadiusMeters = 5000
	}
	if cfg.Search.CacheTTL == 0 {
		cfg.Search.CacheTTL = 5 * time.Minute
	}
	if cfg.Search.SessionTTL == 0 {
		cfg.Search.SessionTTL = 30 * time.Minute
	}
	if cfg.History.Capacity == 0 {
		cfg.History.Capacity = 20
	}
	if cfg.History.StorageKey == "" {
		cfg.History.StorageKey = "places:history:v1"
	}
	if cfg.History.StorageBackend == "" {
		cfg.History.StorageBackend = "redis"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
