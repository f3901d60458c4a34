package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Business BusinessConfig
	Redis    RedisConfig
	Notify   NotifyConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// Tokens are issued elsewhere; only the verification secret lives here.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// BusinessConfig is the raw calendar definition. Breaks are "Name@HH:MM-HH:MM" items.
type BusinessConfig struct {
	OpenTime        string   `envconfig:"BUSINESS_OPEN_TIME" default:"08:00"`
	CloseTime       string   `envconfig:"BUSINESS_CLOSE_TIME" default:"19:00"`
	IntervalMinutes int      `envconfig:"BUSINESS_SLOT_INTERVAL_MINUTES" default:"30"`
	WorkingDays     []int    `envconfig:"BUSINESS_WORKING_DAYS" default:"1,2,3,4,5"`
	Breaks          []string `envconfig:"BUSINESS_BREAKS" default:"Lunch@12:00-13:00"`
	TimeZone        string   `envconfig:"BUSINESS_TIMEZONE" default:"America/Sao_Paulo"`
	CloseInclusive  bool     `envconfig:"BUSINESS_CLOSE_INCLUSIVE" default:"true"`
}

// Empty Addr disables the distributed slot lock.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"REDIS_SLOT_LOCK_TTL" default:"10s"`
	LockWait time.Duration `envconfig:"REDIS_SLOT_LOCK_WAIT" default:"2s"`
}

type NotifyConfig struct {
	Driver         string        `envconfig:"NOTIFY_DRIVER" default:"log"` // log | sendgrid | kafka
	Timeout        time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
	SendGridAPIKey string        `envconfig:"SENDGRID_API_KEY" default:""`
	FromEmail      string        `envconfig:"NOTIFY_FROM_EMAIL" default:"agenda@example.com"`
	FromName       string        `envconfig:"NOTIFY_FROM_NAME" default:"Agenda"`
	KafkaBrokers   []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic     string        `envconfig:"KAFKA_APPOINTMENT_TOPIC" default:"appointment-events"`
}

type MetricsConfig struct {
	Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"scheduler"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
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
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Business: BusinessConfig{
			OpenTime:        "08:00",
			CloseTime:       "19:00",
			IntervalMinutes: 30,
			WorkingDays:     []int{1, 2, 3, 4, 5},
			Breaks:          []string{"Lunch@12:00-13:00"},
			TimeZone:        "UTC",
			CloseInclusive:  true,
		},
		Redis: RedisConfig{
			LockTTL:  10 * time.Second,
			LockWait: 2 * time.Second,
		},
		Notify: NotifyConfig{
			Driver:  "log",
			Timeout: 5 * time.Second,
		},
	}
}
