package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Broker    BrokerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`

	MaxConns          int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns          int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime   time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	StatementTimeout  time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"5s"`
	LockTimeout       time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"3s"`
	TxMaxRetries      int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
	TxRetryBaseDelay  time.Duration `envconfig:"DB_TX_RETRY_BASE_DELAY" default:"100ms"`
	ConnectTimeout    time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
	HealthCheckPeriod time.Duration `envconfig:"DB_HEALTH_CHECK_PERIOD" default:"1m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-RateLimit-Limit,X-RateLimit-Remaining,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"cowork-booking"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Empty Addr disables Redis-backed features.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
	KeyStrategy    string        `envconfig:"RATE_LIMIT_KEY_STRATEGY" default:"ip_route"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"60"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"1s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
}

// Empty URL disables event publishing.
type BrokerConfig struct {
	URL            string        `envconfig:"AMQP_URL" default:""`
	Exchange       string        `envconfig:"AMQP_EXCHANGE" default:"reservations"`
	PublishTimeout time.Duration `envconfig:"AMQP_PUBLISH_TIMEOUT" default:"2s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database section, for tools that do not serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	_ = godotenv.Load()

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:             "localhost",
			Port:             "15433", // Test DB port
			User:             "test",
			Password:         "test",
			DBName:           "test_db",
			SSLMode:          "disable",
			TimeZone:         "UTC",
			MaxConns:         10,
			MinConns:         1,
			MaxConnLifetime:  time.Hour,
			StatementTimeout: 5 * time.Second,
			LockTimeout:      3 * time.Second,
			TxMaxRetries:     3,
			TxRetryBaseDelay: 10 * time.Millisecond,
			ConnectTimeout:   5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-signing-tokens",
			Duration: time.Hour,
			Issuer:   "cowork-booking-test",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Broker: BrokerConfig{
			Exchange:       "reservations",
			PublishTimeout: time.Second,
		},
	}
}
