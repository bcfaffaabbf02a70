// Package config loads and validates the service configuration.
package config

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Ethereum EthereumConfig `mapstructure:"ethereum"`
	Route    RouteConfig    `mapstructure:"route"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" default:"0.0.0.0"`
	Port            int           `mapstructure:"port" default:"8080"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host" default:"localhost" validate:"required"`
	Port     int    `mapstructure:"port" default:"5432"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" default:"sweep" validate:"required"`
	SSLMode  string `mapstructure:"ssl_mode" default:"disable"`
}

// EthereumConfig contains chain client settings.
//
// InitCodeHash is fixed for the lifetime of a deployer instance. Changing the
// proxy implementation behind the deployer invalidates every predicted but
// undeployed address, so the client verifies the configured hash against the
// deployer contract at startup and refuses to run on a mismatch.
type EthereumConfig struct {
	RPCURL              string        `mapstructure:"rpc_url" validate:"required,url"`
	ChainID             int64         `mapstructure:"chain_id" validate:"required"`
	DeployerContract    string        `mapstructure:"deployer_contract" validate:"required,eth_addr"`
	StorageContract     string        `mapstructure:"storage_contract" validate:"required,eth_addr"`
	TreasuryAddress     string        `mapstructure:"treasury_address" validate:"required,eth_addr"`
	OperatorPrivateKey  string        `mapstructure:"operator_private_key" validate:"required"`
	InitCodeHash        string        `mapstructure:"init_code_hash" validate:"required"`
	Tokens              []string      `mapstructure:"tokens" validate:"dive,eth_addr"`
	GasLimit            uint64        `mapstructure:"gas_limit" default:"300000"`
	MaxGasPrice         string        `mapstructure:"max_gas_price"`
	CallTimeout         time.Duration `mapstructure:"call_timeout" default:"15s"`
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout" default:"3m"`
}

// RouteConfig contains sweep orchestration settings
type RouteConfig struct {
	BatchLimit         int           `mapstructure:"batch_limit" default:"100"`
	ClaimLease         time.Duration `mapstructure:"claim_lease" default:"10m"`
	PermissionCacheTTL time.Duration `mapstructure:"permission_cache_ttl" default:"30s"`
}

// AuthConfig contains route-trigger authentication settings.
// An empty secret disables the bearer-token check.
type AuthConfig struct {
	RouteSecret string `mapstructure:"route_secret"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info"`
	Format     string `mapstructure:"format" default:"json"`
	OutputPath string `mapstructure:"output_path" default:"stdout"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Fill zero-valued fields from struct default tags, then validate.
	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}
