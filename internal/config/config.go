package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	Storage   StorageConfig   `yaml:"storage"    validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler"  validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Redis     RedisConfig     `yaml:"redis"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit" validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"sittermatch"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// Storage selects the repository backend. "memory" keeps everything in
// process and skips migrations.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
}

func (s StorageConfig) InMemory() bool {
	return s.Driver == "memory"
}

func (s StorageConfig) Validate() error {
	switch s.Driver {
	case "postgres", "memory":
		return nil
	}
	return fmt.Errorf("unknown storage driver %q: want postgres or memory", s.Driver)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// Пустой URL отключает публикацию событий
type RedisConfig struct {
	URL     string `yaml:"url"     env:"REDIS_URL"     env-default:""`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"sittermatch.events"`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"telephony"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-default:""`
}

func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"   env:"RATE_LIMIT_RPS"   env-default:"10" validate:"gt=0"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20" validate:"min=1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
