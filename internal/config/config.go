package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type MappingConfig struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	MappingDB    `yaml:"mapping_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	AdminAuth    `yaml:"admin_auth"`
	CORS         `yaml:"cors"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type MappingDB struct {
	Dsn string `yaml:"dsn" env:"MAPPING_DB_DSN"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host  string `yaml:"host" env:"KAFKA_HOST"`
	Port  string `yaml:"port" env:"KAFKA_PORT"`
	Topic string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"moderation-events"`
}

type AdminAuth struct {
	Username      string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password      string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin"`
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-default:"dev-secret"`
	SessionHours  int    `yaml:"session_hours" env:"SESSION_EXPIRE_HOURS" env-default:"12"`
}

type CORS struct {
	Origins string `yaml:"origins" env:"CORS_ORIGINS" env-default:"http://localhost:5173,http://localhost:3000"`
}

func MustLoad() *MappingConfig {

	configPath := os.Getenv("MAPPING_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MAPPING_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg MappingConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
