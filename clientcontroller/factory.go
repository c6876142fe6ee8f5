package clientcontroller

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
	"github.com/bifrost-platform/btc-relayer/clientcontroller/evm"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
)

// NewChainClients connects to every managed chain. The clients of the chains
// connected before a failure are closed.
func NewChainClients(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]api.ChainClient, error) {
	key, err := LoadRelayerKey(cfg)
	if err != nil {
		return nil, err
	}

	clients := make([]api.ChainClient, 0, len(cfg.Chains))
	for i := range cfg.Chains {
		chainCfg := &cfg.Chains[i]
		cc, err := evm.NewClient(ctx, chainCfg, key, logger)
		if err != nil {
			for _, c := range clients {
				_ = c.Close()
			}

			return nil, fmt.Errorf("failed to create the client of chain %s: %w", chainCfg.Name, err)
		}

		logger.Info("connected to chain",
			zap.String("chain", chainCfg.Name),
			zap.Stringer("chain_id", chainCfg.ID),
			zap.Bool("native", chainCfg.IsNative),
			zap.String("relayer", cc.Address().Hex()),
		)
		clients = append(clients, cc)
	}

	return clients, nil
}

// LoadRelayerKey parses the hex encoded secp256k1 key of the relayer account
func LoadRelayerKey(cfg *config.Config) (*ecdsa.PrivateKey, error) {
	keyHex, err := cfg.GetRelayerKey()
	if err != nil {
		return nil, err
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(keyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid relayer key: %w", err)
	}

	return key, nil
}
