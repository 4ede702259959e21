package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // зоны в контейнерах без tzdata

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы хранилища
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
)

// Драйверы почты
const (
	MailSendGrid = "sendgrid"
	MailLog      = "log"
)

// ErrInvalidConfig конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	SQLite    SQLiteConfig    `toml:"sqlite"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Admin     AdminConfig     `toml:"admin"`
	Mail      MailConfig      `toml:"mail"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Webhook   WebhookConfig   `toml:"webhook"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Seed      SeedConfig      `toml:"seed"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	Timezone        string `toml:"timezone"`         // часовой пояс слотов, IANA
}

// Location часовой пояс слотов
func (s ServerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

type StorageConfig struct {
	Driver string `toml:"driver"` // memory | postgres | sqlite | redis
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
}

// DSN строка подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

// DSN строка подключения go-sqlite3
func (s SQLiteConfig) DSN() string {
	return "file:" + s.Path + "?_busy_timeout=5000&_journal_mode=WAL"
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
	JWTSecret string   `toml:"jwt_secret"`
	Emails    []string `toml:"emails"`
}

type MailConfig struct {
	Driver        string `toml:"driver"` // sendgrid | log
	SendGridKey   string `toml:"sendgrid_api_key"`
	SendGridHost  string `toml:"sendgrid_host"`
	FromName      string `toml:"from_name"`
	FromEmail     string `toml:"from_email"`
	OperatorName  string `toml:"operator_name"`
	OperatorEmail string `toml:"operator_email"`
	Place         string `toml:"place"`      // LOCATION приглашения
	UIDDomain     string `toml:"uid_domain"` // домен UID приглашения
	DurationMin   int    `toml:"duration_minutes"`
}

type CalendarConfig struct {
	Enabled         bool   `toml:"enabled"`
	CredentialsFile string `toml:"credentials_file"` // JSON сервисного аккаунта
	CalendarID      string `toml:"calendar_id"`
}

type WebhookConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerMinute float64 `toml:"requests_per_minute"`
	Burst             int     `toml:"burst"`
}

type SeedConfig struct {
	File string `toml:"file"` // пусто: без предопределенных правил
}

// Load читает .env (если есть) и TOML файл, подставляет ${ENV} и значения по умолчанию
func Load(path string) (*Config, error) {
	// .env рядом с конфигом, затем в рабочей директории
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(string(data))
}

// Parse разбирает TOML после подстановки переменных окружения
func Parse(raw string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(os.ExpandEnv(raw), cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)
	setDefault(&c.Server.Timezone, "America/Sao_Paulo")

	setDefault(&c.Storage.Driver, StorageMemory)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 10)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Redis.Addr, "localhost:6379")
	setDefault(&c.Redis.KeyPrefix, "astroya:")

	setDefault(&c.SQLite.Path, "data/astroya.db")

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "astroya_scheduling")

	setDefault(&c.Mail.Driver, MailLog)
	setDefault(&c.Mail.FromName, "Astroya")
	setDefault(&c.Mail.OperatorName, "Astroya")
	setDefault(&c.Mail.Place, "Online / A definir")
	setDefault(&c.Mail.UIDDomain, "astroya.com.br")
	setDefault(&c.Mail.DurationMin, 60)
	if c.Mail.OperatorEmail == "" {
		c.Mail.OperatorEmail = c.Mail.FromEmail
	}

	setDefault(&c.Webhook.Timeout, 10)

	setDefault(&c.RateLimit.RequestsPerMinute, 10)
	setDefault(&c.RateLimit.Burst, 5)
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var problems []string

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres, StorageSQLite, StorageRedis:
	default:
		problems = append(problems, fmt.Sprintf("unknown storage.driver %q", c.Storage.Driver))
	}

	switch c.Mail.Driver {
	case MailLog:
	case MailSendGrid:
		if c.Mail.SendGridKey == "" {
			problems = append(problems, "mail.sendgrid_api_key is required for the sendgrid driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown mail.driver %q", c.Mail.Driver))
	}

	if c.Mail.FromEmail == "" {
		problems = append(problems, "mail.from_email is required")
	}

	if _, err := c.Server.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("server.timezone: %v", err))
	}

	if c.Admin.JWTSecret == "" {
		problems = append(problems, "admin.jwt_secret is required")
	}

	if c.Calendar.Enabled && (c.Calendar.CredentialsFile == "" || c.Calendar.CalendarID == "") {
		problems = append(problems, "calendar.credentials_file and calendar.calendar_id are required when calendar is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
