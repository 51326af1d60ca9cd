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
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Redis       RedisConfig
	Worker      WorkerConfig
	Marketplace MarketplaceConfig
	Migrate     MigrateConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
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
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Empty Addr disables the Redis publisher; notifications are then only logged.
type RedisConfig struct {
	Addr          string `envconfig:"REDIS_ADDR" default:""`
	Password      string `envconfig:"REDIS_PASSWORD" default:""`
	DB            int    `envconfig:"REDIS_DB" default:"0"`
	ChannelPrefix string `envconfig:"REDIS_CHANNEL_PREFIX" default:"notifications"`
}

type WorkerConfig struct {
	Enabled                  bool          `envconfig:"WORKER_ENABLED" default:"true"`
	OfferSweepInterval       time.Duration `envconfig:"WORKER_OFFER_SWEEP_INTERVAL" default:"1m"`
	NotificationInterval     time.Duration `envconfig:"WORKER_NOTIFICATION_INTERVAL" default:"5s"`
	IdempotencyPurgeInterval time.Duration `envconfig:"WORKER_IDEMPOTENCY_PURGE_INTERVAL" default:"1h"`
	BatchSize                int           `envconfig:"WORKER_BATCH_SIZE" default:"100"`
}

type MarketplaceConfig struct {
	OfferDefaultExpiryHours int           `envconfig:"OFFER_DEFAULT_EXPIRY_HOURS" default:"48"`
	IdempotencyTTL          time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

type MigrateConfig struct {
	AtlasBin    string `envconfig:"ATLAS_BIN" default:"atlas"`
	DevURL      string `envconfig:"ATLAS_DEV_URL" default:"docker://postgres/17/dev"`
	SchemaDir   string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	AutoApprove bool   `envconfig:"MIGRATE_AUTO_APPROVE" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *MarketplaceConfig) OfferDefaultExpiry() time.Duration {
	return time.Duration(c.OfferDefaultExpiryHours) * time.Hour
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Marketplace.OfferDefaultExpiryHours <= 0 {
		return Config{}, fmt.Errorf("OFFER_DEFAULT_EXPIRY_HOURS must be positive, got %d", cfg.Marketplace.OfferDefaultExpiryHours)
	}
	if err := cfg.Worker.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would stop a worker loop from ticking.
func (c WorkerConfig) Validate() error {
	intervals := []struct {
		env string
		val time.Duration
	}{
		{"WORKER_OFFER_SWEEP_INTERVAL", c.OfferSweepInterval},
		{"WORKER_NOTIFICATION_INTERVAL", c.NotificationInterval},
		{"WORKER_IDEMPOTENCY_PURGE_INTERVAL", c.IdempotencyPurgeInterval},
	}
	for _, iv := range intervals {
		if iv.val <= 0 {
			return fmt.Errorf("%s must be positive, got %s", iv.env, iv.val)
		}
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("WORKER_BATCH_SIZE must be positive, got %d", c.BatchSize)
	}
	return nil
}

// LoadMigrateConfig reads only the settings the migrate command needs.
func LoadMigrateConfig() (DBConfig, MigrateConfig, error) {
	var db DBConfig
	if err := envconfig.Process("", &db); err != nil {
		return DBConfig{}, MigrateConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	var m MigrateConfig
	if err := envconfig.Process("", &m); err != nil {
		return DBConfig{}, MigrateConfig{}, fmt.Errorf("failed to process migrate env config: %w", err)
	}
	return db, m, nil
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
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-e2e-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Redis:  RedisConfig{ChannelPrefix: "notifications"},
		Worker: WorkerConfig{
			// Tests drive workers through RunOnce.
			Enabled:                  false,
			OfferSweepInterval:       time.Minute,
			NotificationInterval:     time.Second,
			IdempotencyPurgeInterval: time.Hour,
			BatchSize:                50,
		},
		Marketplace: MarketplaceConfig{
			OfferDefaultExpiryHours: 48,
			IdempotencyTTL:          24 * time.Hour,
		},
		Migrate: MigrateConfig{AtlasBin: "atlas", SchemaDir: "migrations"},
	}
}
