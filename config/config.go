package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// DefaultDatabaseName is used when neither MONGODB_DATABASE nor the URI path names a database
const DefaultDatabaseName = "node_app"

// Config holds all application configuration
type Config struct {
	Environment     string        `env:"ENVIRONMENT" envDefault:"dev"`
	Port            int           `env:"PORT" envDefault:"3000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	JSONBodyLimit   int           `env:"JSON_BODY_LIMIT" envDefault:"102400"`
	Mongo           MongoConfig
	Redis           RedisConfig
}

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI            string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017/node_app"`
	Database       string        `env:"MONGODB_DATABASE"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"30s"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled     bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Host        string        `env:"REDIS_HOST" envDefault:"127.0.0.1"`
	Port        string        `env:"REDIS_PORT" envDefault:"6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	Endpoint    string        `env:"REDIS_ENDPOINT"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"staging": true,
	"prod":    true,
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("error loading .env file: %v", err)
	}
	return LoadFromEnvironment(env.ToMap(os.Environ()))
}

// LoadFromEnvironment parses configuration from the given variables only
func LoadFromEnvironment(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	// 0 lets the OS pick an ephemeral port
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 0 and 65535, got %d", cfg.Port)
	}
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	if cfg.JSONBodyLimit <= 0 {
		return fmt.Errorf("JSON_BODY_LIMIT must be positive, got %d", cfg.JSONBodyLimit)
	}
	if cfg.Mongo.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGODB_CONNECT_TIMEOUT must be positive")
	}
	return nil
}

// Address returns the listen address for the configured port
func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

// DatabaseName resolves the database name: explicit setting, then the URI path, then DefaultDatabaseName
func (m *MongoConfig) DatabaseName() string {
	if m.Database != "" {
		return m.Database
	}
	if cs, err := connstring.ParseAndValidate(m.URI); err == nil && cs.Database != "" {
		return cs.Database
	}
	return DefaultDatabaseName
}

func (r *RedisConfig) GetRedisAddr() string {
	if r.Endpoint != "" {
		return r.Endpoint
	}
	return r.Host + ":" + r.Port
}
