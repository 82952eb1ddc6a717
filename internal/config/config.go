package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer `yaml:"http_server"`
	Storage    `yaml:"storage"`
	Database   `yaml:"database"`
	Remote     `yaml:"remote"`
	Events     `yaml:"events"`
	Metrics    `yaml:"metrics"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-required:"true"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"organizer_console"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Remote struct {
	BaseURL     string        `yaml:"base_url" env:"REMOTE_BASE_URL" env-default:"https://api.iwent.com.tr"`
	Timeout     time.Duration `yaml:"timeout" env:"REMOTE_TIMEOUT" env-default:"10s"`
	EventsLimit int           `yaml:"events_limit" env-default:"50"`
}

type Events struct {
	// RefreshInterval of zero disables the background reload.
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"EVENTS_REFRESH_INTERVAL" env-default:"0s"`
}

type Metrics struct {
	Series string `yaml:"series" env:"METRICS_SERIES" env-default:"real"`
}

func MustLoad() *Config {
	// .env is optional, values already present in the environment win
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
