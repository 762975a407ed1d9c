package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   merchant account) and anything security sensitive
// - default: Values common across all environments (timezone, cookie names)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	PayPal  PayPalConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	Host string `envconfig:"PUBLIC_HOST" default:"http://localhost:8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/New_York"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type SessionConfig struct {
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"club_session"`
	Domain     string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite   string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

// PayPalConfig carries the merchant side of the IPN round trip. ReceiverEmail
// is compared against every inbound notification before inventory moves.
type PayPalConfig struct {
	ReceiverEmail string `envconfig:"PAYPAL_RECEIVER_EMAIL" required:"true"`
	NotifyPath    string `envconfig:"PAYPAL_NOTIFY_PATH" default:"/api/payments/notify"`
	ReturnPath    string `envconfig:"PAYPAL_RETURN_PATH" default:"/confirm"`
	CancelPath    string `envconfig:"PAYPAL_CANCEL_PATH" default:"/cart"`
	ItemName      string `envconfig:"PAYPAL_ITEM_NAME" default:"Gear Order"`
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
			Host: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/New_York",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/New_York",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		Session: SessionConfig{
			CookieName: "club_session",
			SameSite:   "Lax",
			TTL:        time.Hour,
		},
		PayPal: PayPalConfig{
			ReceiverEmail: "treasurer@example.edu",
			NotifyPath:    "/api/payments/notify",
			ReturnPath:    "/confirm",
			CancelPath:    "/cart",
			ItemName:      "Gear Order",
		},
	}
}
