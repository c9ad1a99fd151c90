package config

import (
	"encoding/hex"
	"errors"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type SettlementConfig struct {
	Env           string `yaml:"env" env:"APP_ENV" env-default:"development"`
	MetricsServer `yaml:"metrics_server"`
	SettlementDB  `yaml:"settlement_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	Vault         `yaml:"vault"`
}

type MetricsServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"9090"`
}

type SettlementDB struct {
	Dsn           string `yaml:"dsn" env:"SETTLEMENT_DB_DSN"`
	MigrationPath string `yaml:"migration_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"settlement-events"`
}

type Vault struct {
	// EncryptionKey must be exactly 64 hex characters (a 32-byte AES key).
	EncryptionKey string `yaml:"-" env:"VAULT_ENCRYPTION_KEY"`
}

func (c *SettlementConfig) IsProduction() bool {
	return c.Env == "production"
}

func MustLoad() *SettlementConfig {

	configPath := os.Getenv("SETTLEMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SETTLEMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg SettlementConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	if err := validateVaultKey(cfg.Vault.EncryptionKey); err != nil {
		log.Fatalf("invalid VAULT_ENCRYPTION_KEY: %v", err)
	}

	return &cfg
}

func validateVaultKey(key string) error {
	if len(key) != 64 {
		return errors.New("key must be exactly 64 hex characters")
	}
	if _, err := hex.DecodeString(key); err != nil {
		return err
	}
	return nil
}
