package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap/zapcore"

	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/types"
	"github.com/bifrost-platform/btc-relayer/util"
)

// Constants for config default values
const (
	defaultLogLevel       = zapcore.InfoLevel
	defaultLogFormat      = "console"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "relayerd.log"
	defaultConfigFileName = "relayerd.conf"
	defaultDataDirname    = "data"
	defaultCallInterval   = 3 * time.Second
	defaultNativeChainID  = types.ChainID(49088)

	// RelayerKeyEnvVar is read when the relayer key is not set in the config file
	RelayerKeyEnvVar = "RELAYER_KEY"
)

var (
	//   C:\Users\<username>\AppData\Local\ on Windows
	//   ~/.relayerd on Linux
	//   ~/Users/<username>/Library/Application Support/Relayerd on MacOS
	DefaultRelayerdDir = btcutil.AppDataDir("relayerd", false)
)

// Config is the main config for the relayerd cli command
type Config struct {
	LogLevel  string `long:"loglevel" description:"Logging level for all subsystems" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal"`
	LogFormat string `long:"logformat" description:"Logging format" choice:"console" choice:"json" choice:"logfmt"`

	CallInterval time.Duration `long:"callinterval" description:"The interval between each re-check of the bootstrap state while waiting for other chains"`
	RelayerKey   string        `long:"relayerkey" description:"The hex encoded secp256k1 private key of the relayer account. If not provided, will use RELAYER_KEY environment variable."`

	Chains []ChainConfig `long:"chain" description:"A managed chain, as id=<id>,name=<name>,rpc=<url>,native=<bool>,authority=<addr>,relayermanager=<addr>,socketqueue=<addr>; repeat for each chain"`

	BootstrapConfig *BootstrapConfig `group:"bootstrap" namespace:"bootstrap"`

	PollerConfig *ChainPollerConfig `group:"chainpollerconfig" namespace:"chainpollerconfig"`

	DatabaseConfig *DBConfig `group:"dbconfig" namespace:"dbconfig"`

	SentryConfig *SentryConfig `group:"sentry" namespace:"sentry"`

	Metrics *metrics.Config `group:"metrics" namespace:"metrics"`
}

func DefaultConfigWithHome(homePath string) Config {
	bootstrapCfg := DefaultBootstrapConfig()
	pollerCfg := DefaultChainPollerConfig()
	sentryCfg := DefaultSentryConfig()
	cfg := Config{
		LogLevel:     defaultLogLevel.String(),
		LogFormat:    defaultLogFormat,
		CallInterval: defaultCallInterval,
		Chains: []ChainConfig{
			{
				ID:       defaultNativeChainID,
				Name:     "bifrost",
				RPCAddr:  "http://127.0.0.1:9933",
				IsNative: true,
			},
		},
		BootstrapConfig: &bootstrapCfg,
		PollerConfig:    &pollerCfg,
		DatabaseConfig:  DefaultDBConfigWithHomePath(homePath),
		SentryConfig:    &sentryCfg,
		Metrics:         metrics.DefaultConfig(),
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func DefaultConfig() Config {
	return DefaultConfigWithHome(DefaultRelayerdDir)
}

func CfgFile(homePath string) string {
	return filepath.Join(homePath, defaultConfigFileName)
}

func LogDir(homePath string) string {
	return filepath.Join(homePath, defaultLogDirname)
}

func LogFile(homePath string) string {
	return filepath.Join(LogDir(homePath), defaultLogFilename)
}

func DataDir(homePath string) string {
	return filepath.Join(homePath, defaultDataDirname)
}

// LoadConfig initializes and parses the config using a config file.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Load configuration file overwriting defaults with any specified options
//  3. Validate the result
func LoadConfig(homePath string) (*Config, error) {
	// The home directory is required to have a configuration file with a specific name
	// under it.
	cfgFile := CfgFile(homePath)
	if !util.FileExists(cfgFile) {
		return nil, fmt.Errorf("specified config file does "+
			"not exist in %s", cfgFile)
	}

	cfg := DefaultConfigWithHome(homePath)
	// chains are a repeated option, the file replaces the default entry
	cfg.Chains = nil

	fileParser := flags.NewParser(&cfg, flags.Default)
	if err := flags.NewIniParser(fileParser).ParseFile(cfgFile); err != nil {
		return nil, err
	}

	// Make sure everything we just loaded makes sense.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the given configuration to be sane. This makes sure no
// illegal values or a combination of values are set.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if cfg.CallInterval <= 0 {
		return fmt.Errorf("call interval must be positive, got %v", cfg.CallInterval)
	}

	if err := cfg.validateChains(); err != nil {
		return fmt.Errorf("chain configuration validation failed: %w", err)
	}

	if cfg.BootstrapConfig == nil {
		return fmt.Errorf("bootstrap config cannot be empty")
	}
	if err := cfg.BootstrapConfig.Validate(); err != nil {
		return fmt.Errorf("bootstrap configuration validation failed: %w", err)
	}

	if cfg.PollerConfig == nil {
		return fmt.Errorf("poller config cannot be empty")
	}
	if err := cfg.PollerConfig.Validate(); err != nil {
		return fmt.Errorf("poller configuration validation failed: %w", err)
	}

	if cfg.DatabaseConfig == nil {
		return fmt.Errorf("database config cannot be empty")
	}
	if err := cfg.DatabaseConfig.Validate(); err != nil {
		return fmt.Errorf("database configuration validation failed: %w", err)
	}

	if cfg.SentryConfig == nil {
		return fmt.Errorf("sentry config cannot be empty")
	}
	if err := cfg.SentryConfig.Validate(); err != nil {
		return fmt.Errorf("sentry configuration validation failed: %w", err)
	}

	if cfg.Metrics == nil {
		return fmt.Errorf("metrics configuration cannot be empty")
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics configuration validation failed: %w", err)
	}

	return nil
}

func (cfg *Config) validateChains() error {
	if len(cfg.Chains) == 0 {
		return fmt.Errorf("at least one chain must be configured")
	}

	seen := make(map[types.ChainID]struct{}, len(cfg.Chains))
	natives := 0
	for i := range cfg.Chains {
		chain := &cfg.Chains[i]
		if err := chain.Validate(); err != nil {
			return err
		}
		if _, exists := seen[chain.ID]; exists {
			return fmt.Errorf("duplicate chain id %d", chain.ID)
		}
		seen[chain.ID] = struct{}{}
		if chain.IsNative {
			natives++
		}
	}

	if natives > 1 {
		return fmt.Errorf("at most one chain can be native, got %d", natives)
	}

	return nil
}

// BootstrapWindow returns the bootstrap configuration, or nil when historical
// replay is disabled.
func (cfg *Config) BootstrapWindow() *BootstrapConfig {
	if cfg.BootstrapConfig == nil || !cfg.BootstrapConfig.Enabled {
		return nil
	}

	return cfg.BootstrapConfig
}

// GetRelayerKey returns the relayer key from the config, falling back to the
// environment.
func (cfg *Config) GetRelayerKey() (string, error) {
	if cfg.RelayerKey != "" {
		return cfg.RelayerKey, nil
	}

	if key := os.Getenv(RelayerKeyEnvVar); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("relayer key is not set in the config nor in %s", RelayerKeyEnvVar)
}
