package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Pricing PricingConfig
	Cart    CartConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects the persistence driver: "postgres" or "memory".
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// RedisConfig: an empty Addr disables the cart cache and checkout idempotency.
type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR"`
	Password       string        `envconfig:"REDIS_PASSWORD"`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	CartTTL        time.Duration `envconfig:"REDIS_CART_TTL" default:"15m"`
	IdempotencyTTL time.Duration `envconfig:"REDIS_IDEMPOTENCY_TTL" default:"24h"`
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// KafkaConfig: with no brokers the outbox relay logs events instead of producing them.
type KafkaConfig struct {
	Brokers       []string      `envconfig:"KAFKA_BROKERS"`
	Topic         string        `envconfig:"KAFKA_TOPIC" default:"commerce.events"`
	RelayID       string        `envconfig:"OUTBOX_RELAY_ID" default:"relay-1"`
	RelayInterval time.Duration `envconfig:"OUTBOX_RELAY_INTERVAL" default:"500ms"`
	RelayBatch    int           `envconfig:"OUTBOX_RELAY_BATCH" default:"100"`
	MaxAttempts   int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Guest-Session"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig: tokens are issued by the identity service; this service only validates them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type PricingConfig struct {
	TaxRate           string `envconfig:"TAX_RATE" default:"0.08"`
	FixedCouponPolicy string `envconfig:"COUPON_FIXED_POLICY" default:"cap"`
	StandardRate      string `envconfig:"SHIPPING_STANDARD" default:"5.99"`
	ExpressRate       string `envconfig:"SHIPPING_EXPRESS" default:"12.99"`
	OvernightRate     string `envconfig:"SHIPPING_OVERNIGHT" default:"24.99"`
}

type CartConfig struct {
	PurgeInterval time.Duration `envconfig:"CART_PURGE_INTERVAL" default:"10m"`
	PurgeBatch    int           `envconfig:"CART_PURGE_BATCH" default:"500"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Store.Driver) {
	case "memory":
	case "postgres":
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for the postgres store driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{Driver: "memory"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			CartTTL:        time.Minute,
			IdempotencyTTL: time.Hour,
		},
		Kafka: KafkaConfig{
			Topic:         "commerce.events.test",
			RelayID:       "relay-test",
			RelayInterval: 50 * time.Millisecond,
			RelayBatch:    10,
			MaxAttempts:   3,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-validation",
			Duration: "1h",
		},
		Pricing: PricingConfig{
			TaxRate:           "0.08",
			FixedCouponPolicy: "cap",
			StandardRate:      "5.99",
			ExpressRate:       "12.99",
			OvernightRate:     "24.99",
		},
		Cart: CartConfig{
			PurgeInterval: time.Minute,
			PurgeBatch:    100,
		},
	}
}
