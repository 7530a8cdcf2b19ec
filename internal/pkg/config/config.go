package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	DB         DBConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Mail       MailConfig
	SMS        SMSConfig
	Cloudinary CloudinaryConfig
	App        AppConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

type StorageConfig struct {
	Backend string `envconfig:"STORAGE_BACKEND" default:"postgres"`
	// Local development only: when the primary backend cannot be reached, serve from memory.
	FallbackToMemory bool `envconfig:"STORAGE_FALLBACK_MEMORY" default:"false"`
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

type MongoConfig struct {
	URI    string `envconfig:"MONGODB_URI"`
	DBName string `envconfig:"MONGODB_DB_NAME" default:"clickcollect"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	TTL      time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"60s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
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
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"None"`
}

type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"MAIL_FROM"`
}

// Enabled reports whether SMTP credentials were supplied.
func (c MailConfig) Enabled() bool {
	return c.User != "" && c.Password != ""
}

func (c MailConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.User
}

type SMSConfig struct {
	APIURL             string `envconfig:"SMS_API_URL" default:"https://api.sms.to/sms/send"`
	APIKey             string `envconfig:"SMS_API_KEY"`
	DefaultCountryCode string `envconfig:"SMS_DEFAULT_COUNTRY_CODE" default:"+242"`
	SenderID           string `envconfig:"SMS_SENDER_ID" default:"ClickCollect"`
}

func (c SMSConfig) Enabled() bool {
	return c.APIKey != ""
}

type CloudinaryConfig struct {
	CloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	APISecret string `envconfig:"CLOUDINARY_API_SECRET"`
	Folder    string `envconfig:"CLOUDINARY_FOLDER" default:"clickcollect/products"`
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type AppConfig struct {
	FrontendURL    string        `envconfig:"FRONTEND_URL" default:"http://localhost:5000"`
	PaymentBaseURL string        `envconfig:"PAYMENT_BASE_URL" default:"https://mock-payment.geantcasino.cg"`
	NotifyTimeout  time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"15s"`
}

var ErrUnknownBackend = errors.New("unknown storage backend")

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("postgres backend requires DB_USER and DB_NAME")
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("mongo backend requires MONGODB_URI")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	return nil
}

// LoadConfig reads an optional .env file and then the process environment.
// Values already present in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
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
		Storage: StorageConfig{
			Backend: BackendMemory,
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
		Redis: RedisConfig{
			TTL: time.Minute,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-click-collect",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		SMS: SMSConfig{
			DefaultCountryCode: "+242",
		},
		App: AppConfig{
			FrontendURL:    "http://localhost:5000",
			PaymentBaseURL: "https://mock-payment.geantcasino.cg",
			NotifyTimeout:  time.Second,
		},
	}
}
