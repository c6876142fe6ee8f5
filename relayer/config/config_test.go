package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/types"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(*config.Config) {},
			wantErr: "",
		},
		{
			name:    "zero call interval",
			mutate:  func(cfg *config.Config) { cfg.CallInterval = 0 },
			wantErr: "call interval must be positive, got 0s",
		},
		{
			name:    "no chains",
			mutate:  func(cfg *config.Config) { cfg.Chains = nil },
			wantErr: "chain configuration validation failed: at least one chain must be configured",
		},
		{
			name: "duplicate chain ids",
			mutate: func(cfg *config.Config) {
				dup := cfg.Chains[0]
				dup.IsNative = false
				cfg.Chains = append(cfg.Chains, dup)
			},
			wantErr: "chain configuration validation failed: duplicate chain id 49088",
		},
		{
			name: "two native chains",
			mutate: func(cfg *config.Config) {
				other := cfg.Chains[0]
				other.ID = 1
				cfg.Chains = append(cfg.Chains, other)
			},
			wantErr: "chain configuration validation failed: at most one chain can be native, got 2",
		},
		{
			name:    "round offset too large",
			mutate:  func(cfg *config.Config) { cfg.BootstrapConfig.RoundOffset = config.MaxBootstrapRoundOffset + 1 },
			wantErr: "bootstrap configuration validation failed: bootstrap round offset must not exceed 100, got 101",
		},
		{
			name:    "zero poll size",
			mutate:  func(cfg *config.Config) { cfg.PollerConfig.PollSize = 0 },
			wantErr: "poller configuration validation failed: invalid pollsize: 0",
		},
		{
			name:    "invalid sentry sample rate",
			mutate:  func(cfg *config.Config) { cfg.SentryConfig.SampleRate = 2 },
			wantErr: "sentry configuration validation failed: sentry sample rate must be between 0 and 1, got 2",
		},
		{
			name:    "invalid metrics host",
			mutate:  func(cfg *config.Config) { cfg.Metrics.Host = "not-an-ip" },
			wantErr: "metrics configuration validation failed: invalid host: not-an-ip",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfigWithHome(t.TempDir())
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_BootstrapWindow(t *testing.T) {
	cfg := config.DefaultConfigWithHome(t.TempDir())
	require.NotNil(t, cfg.BootstrapWindow())
	require.Equal(t, config.DefaultBootstrapRoundOffset, cfg.BootstrapWindow().GetRoundOffset())

	cfg.BootstrapConfig.RoundOffset = 0
	require.Equal(t, config.DefaultBootstrapRoundOffset, cfg.BootstrapWindow().GetRoundOffset())

	cfg.BootstrapConfig.Enabled = false
	require.Nil(t, cfg.BootstrapWindow())
}

func TestChainConfig_UnmarshalFlag(t *testing.T) {
	authority := common.HexToAddress("0x0000000000000000000000000000000000000400")
	socket := common.HexToAddress("0x0000000000000000000000000000000000000500")

	var chain config.ChainConfig
	err := chain.UnmarshalFlag("id=1, name=eth, rpc=http://127.0.0.1:8545, native=false, authority=" +
		authority.Hex() + ",socketqueue=" + socket.Hex())
	require.NoError(t, err)
	require.Equal(t, config.ChainConfig{
		ID:          types.ChainID(1),
		Name:        "eth",
		RPCAddr:     "http://127.0.0.1:8545",
		Authority:   authority,
		SocketQueue: socket,
	}, chain)

	marshaled, err := chain.MarshalFlag()
	require.NoError(t, err)
	var parsed config.ChainConfig
	require.NoError(t, parsed.UnmarshalFlag(marshaled))
	require.Equal(t, chain, parsed)

	invalid := []string{
		"id=notanumber",
		"native=maybe",
		"authority=0x1234",
		"colour=blue",
		"justakey",
	}
	for _, value := range invalid {
		require.Error(t, new(config.ChainConfig).UnmarshalFlag(value), value)
	}
}

func TestLoadConfig(t *testing.T) {
	homePath := t.TempDir()

	_, err := config.LoadConfig(homePath)
	require.Error(t, err)

	content := `[Application Options]
loglevel = debug
callinterval = 5s
chain = id=49088,name=bifrost,rpc=http://127.0.0.1:9933,native=true
chain = id=1,name=ethereum,rpc=http://127.0.0.1:8545,native=false

[bootstrap]
bootstrap.enabled = true
bootstrap.roundoffset = 5
`
	require.NoError(t, os.WriteFile(filepath.Join(homePath, "relayerd.conf"), []byte(content), 0600))

	cfg, err := config.LoadConfig(homePath)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5*time.Second, cfg.CallInterval)
	require.Len(t, cfg.Chains, 2)
	require.True(t, cfg.Chains[0].IsNative)
	require.Equal(t, "ethereum", cfg.Chains[1].Name)
	require.Equal(t, uint32(5), cfg.BootstrapWindow().GetRoundOffset())
}

func TestConfig_GetRelayerKey(t *testing.T) {
	cfg := config.DefaultConfigWithHome(t.TempDir())

	t.Setenv(config.RelayerKeyEnvVar, "")
	_, err := cfg.GetRelayerKey()
	require.Error(t, err)

	t.Setenv(config.RelayerKeyEnvVar, "abcd")
	key, err := cfg.GetRelayerKey()
	require.NoError(t, err)
	require.Equal(t, "abcd", key)

	cfg.RelayerKey = "ef01"
	key, err = cfg.GetRelayerKey()
	require.NoError(t, err)
	require.Equal(t, "ef01", key)
}
