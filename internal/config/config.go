package config

import (
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Admin         AdminConfig         `toml:"admin"`
	Storage       StorageConfig       `toml:"storage"`
	Notifications NotificationsConfig `toml:"notifications"`
	Booking       BookingConfig       `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	Timezone        string `toml:"timezone"`         // часовой пояс салона, например America/Toronto
	// Адреса или CIDR прокси, которым разрешено передавать X-Forwarded-For / X-Real-IP
	TrustedProxies []string `toml:"trusted_proxies"`
}

// TrustedProxyPrefixes разбирает trusted_proxies; одиночный адрес становится префиксом /32 или /128
func (c ServerConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid trusted proxy %q", ErrInvalidConfig, raw)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid trusted proxy %q", ErrInvalidConfig, raw)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL строка подключения для golang-migrate
func (c DatabaseConfig) MigrateURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AdminConfig struct {
	PasswordHash   string  `toml:"password_hash"` // bcrypt
	JWTSecret      string  `toml:"jwt_secret"`
	TokenTTL       int     `toml:"token_ttl"`        // минуты
	LoginRateLimit float64 `toml:"login_rate_limit"` // попыток в минуту с одного IP
	LoginBurst     int     `toml:"login_burst"`
}

// TokenTTLDuration время жизни админской сессии
func (c AdminConfig) TokenTTLDuration() time.Duration {
	return time.Duration(c.TokenTTL) * time.Minute
}

type StorageConfig struct {
	Endpoint       string `toml:"endpoint"`
	Region         string `toml:"region"`
	Bucket         string `toml:"bucket"`
	PublicBaseURL  string `toml:"public_base_url"`
	AccessKey      string `toml:"access_key"`
	SecretKey      string `toml:"secret_key"`
	UsePathStyle   bool   `toml:"use_path_style"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
}

type NotificationsConfig struct {
	WebhookURL     string `toml:"webhook_url"`
	WebhookTimeout int    `toml:"webhook_timeout"` // секунды
	AMQPEnabled    bool   `toml:"amqp_enabled"`
	AMQPURL        string `toml:"amqp_url"`
	AMQPQueue      string `toml:"amqp_queue"`
}

type BookingConfig struct {
	DefaultPresets []string `toml:"default_presets"`
	WizardTTL      int      `toml:"wizard_ttl"` // минуты
}

// WizardTTLDuration время жизни незавершенной формы бронирования
func (c BookingConfig) WizardTTLDuration() time.Duration {
	return time.Duration(c.WizardTTL) * time.Minute
}

// Load читает TOML файл, подмешивает .env и переменные окружения, проставляет значения по умолчанию
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv секреты можно не держать в config.toml
func (c *Config) applyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"ADMIN_PASSWORD_HASH", &c.Admin.PasswordHash},
		{"ADMIN_JWT_SECRET", &c.Admin.JWTSecret},
		{"DB_PASSWORD", &c.Database.Password},
		{"REDIS_PASSWORD", &c.Redis.Password},
		{"STORAGE_ACCESS_KEY", &c.Storage.AccessKey},
		{"STORAGE_SECRET_KEY", &c.Storage.SecretKey},
		{"WEBHOOK_URL", &c.Notifications.WebhookURL},
		{"AMQP_URL", &c.Notifications.AMQPURL},
	}

	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok && v != "" {
			*o.target = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Server.Timezone == "" {
		c.Server.Timezone = "UTC"
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon-booking"
	}

	if c.Admin.TokenTTL == 0 {
		c.Admin.TokenTTL = 8 * 60
	}
	if c.Admin.LoginRateLimit == 0 {
		c.Admin.LoginRateLimit = 5
	}
	if c.Admin.LoginBurst == 0 {
		c.Admin.LoginBurst = 5
	}

	if c.Storage.Region == "" {
		c.Storage.Region = "us-east-1"
	}
	if c.Storage.MaxUploadBytes == 0 {
		c.Storage.MaxUploadBytes = 10 << 20
	}
	c.Storage.PublicBaseURL = strings.TrimRight(c.Storage.PublicBaseURL, "/")

	if c.Notifications.WebhookTimeout == 0 {
		c.Notifications.WebhookTimeout = 5
	}
	if c.Notifications.AMQPQueue == "" {
		c.Notifications.AMQPQueue = "salon.bookings"
	}

	if len(c.Booking.DefaultPresets) == 0 {
		c.Booking.DefaultPresets = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00"}
	}
	if c.Booking.WizardTTL == 0 {
		c.Booking.WizardTTL = 60
	}
}

// Validate проверяет обязательные параметры
// Пустой admin.password_hash допустим: логин тогда отвечает ошибкой конфигурации
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis addr is required", ErrInvalidConfig)
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("%w: storage bucket is required", ErrInvalidConfig)
	}
	if c.Storage.PublicBaseURL == "" {
		return fmt.Errorf("%w: storage public_base_url is required", ErrInvalidConfig)
	}
	if c.Admin.PasswordHash != "" && c.Admin.JWTSecret == "" {
		return fmt.Errorf("%w: admin jwt_secret is required when password_hash is set", ErrInvalidConfig)
	}
	if c.Notifications.AMQPEnabled && c.Notifications.AMQPURL == "" {
		return fmt.Errorf("%w: notifications amqp_url is required when amqp is enabled", ErrInvalidConfig)
	}
	if _, err := c.Server.TrustedProxyPrefixes(); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, c.Server.Timezone)
	}
	return nil
}
