package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
	"github.com/bifrost-platform/btc-relayer/codec"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/types"
)

var (
	rtyAttNum = uint(5)
	rtyAtt    = retry.Attempts(rtyAttNum)
	rtyDel    = retry.Delay(time.Millisecond * 400)
	rtyErr    = retry.LastErrorOnly(true)
)

var _ api.ChainClient = &Client{}

// Backend is the subset of the ethclient API the relayer relies on
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ethereum.BlockNumberReader
	ethereum.ChainIDReader
	ethereum.ChainSyncReader
	Close()
}

// Client talks to one EVM compatible chain: it reads the round and relayer
// registries, filters the socket queue logs and submits signed psbts.
type Client struct {
	cfg     *config.ChainConfig
	eth     Backend
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int

	authority      *bind.BoundContract
	relayerManager *bind.BoundContract
	socketQueue    *bind.BoundContract

	logger *zap.Logger
}

// NewClient dials the rpc endpoint of the chain and checks that it serves the
// configured chain id
func NewClient(ctx context.Context, cfg *config.ChainConfig, key *ecdsa.PrivateKey, logger *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for chain client: %w", err)
	}

	ethClient, err := ethclient.DialContext(ctx, cfg.RPCAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial the rpc of chain %s: %w", cfg.Name, err)
	}

	remoteID, err := ethClient.ChainID(ctx)
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("failed to query the chain id of chain %s: %w", cfg.Name, err)
	}
	if remoteID.Uint64() != uint64(cfg.ID) {
		ethClient.Close()
		return nil, fmt.Errorf("chain %s: the rpc serves chain id %s, configured %d", cfg.Name, remoteID, cfg.ID)
	}

	return NewClientWithBackend(cfg, ethClient, key, logger), nil
}

func NewClientWithBackend(cfg *config.ChainConfig, backend Backend, key *ecdsa.PrivateKey, logger *zap.Logger) *Client {
	return &Client{
		cfg:            cfg,
		eth:            backend,
		key:            key,
		address:        crypto.PubkeyToAddress(key.PublicKey),
		chainID:        new(big.Int).SetUint64(uint64(cfg.ID)),
		authority:      bind.NewBoundContract(cfg.Authority, AuthorityABI, backend, backend, backend),
		relayerManager: bind.NewBoundContract(cfg.RelayerManager, RelayerManagerABI, backend, backend, backend),
		socketQueue:    bind.NewBoundContract(cfg.SocketQueue, SocketQueueABI, backend, backend, backend),
		logger:         logger.With(zap.String("chain", cfg.Name)),
	}
}

func (c *Client) ChainID() types.ChainID {
	return c.cfg.ID
}

func (c *Client) ChainName() string {
	return c.cfg.Name
}

func (c *Client) Address() common.Address {
	return c.address
}

func (c *Client) IsNative() bool {
	return c.cfg.IsNative
}

func (c *Client) Close() error {
	c.eth.Close()

	return nil
}

// doWithRetry retries the given read until it succeeds or the attempts run out
func (c *Client) doWithRetry(ctx context.Context, desc string, fn func() error) error {
	return retry.Do(fn, rtyAtt, rtyDel, rtyErr, retry.Context(ctx), retry.OnRetry(func(n uint, err error) {
		c.logger.Debug(
			"failed to query the chain",
			zap.String("query", desc),
			zap.Uint("attempt", n+1),
			zap.Uint("max_attempts", rtyAttNum),
			zap.Error(err),
		)
	}))
}

func (c *Client) call(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	err := c.doWithRetry(ctx, method, func() error {
		out = nil
		return contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	return out, nil
}

// RoundInfo implements api.Authority
func (c *Client) RoundInfo(ctx context.Context) (*types.RoundMetaData, error) {
	out, err := c.call(ctx, c.authority, methodRoundInfo)
	if err != nil {
		return nil, err
	}
	if len(out) != 8 {
		return nil, fmt.Errorf("unexpected %s output length: %d", methodRoundInfo, len(out))
	}

	fields := make([]uint64, len(out))
	for i, v := range out {
		n, ok := v.(*big.Int)
		if !ok {
			return nil, fmt.Errorf("unexpected %s output type at %d: %T", methodRoundInfo, i, v)
		}
		fields[i] = n.Uint64()
	}

	return &types.RoundMetaData{
		CurrentRoundIndex:   fields[0],
		FirstSessionIndex:   fields[1],
		CurrentSessionIndex: fields[2],
		FirstRoundBlock:     fields[3],
		FirstSessionBlock:   fields[4],
		CurrentBlock:        fields[5],
		RoundLength:         fields[6],
		SessionLength:       fields[7],
	}, nil
}

// LatestRound implements api.RelayerManager
func (c *Client) LatestRound(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, c.relayerManager, methodLatestRound)
	if err != nil {
		return 0, err
	}

	round, ok := abiFirst[*big.Int](out)
	if !ok {
		return 0, fmt.Errorf("unexpected %s output: %v", methodLatestRound, out)
	}

	return round.Uint64(), nil
}

// IsPreviousSelectedRelayer implements api.RelayerManager
func (c *Client) IsPreviousSelectedRelayer(ctx context.Context, round uint64, relayer common.Address, isInitial bool) (bool, error) {
	out, err := c.call(ctx, c.relayerManager, methodIsPreviousSelectedRelayer,
		new(big.Int).SetUint64(round), relayer, isInitial)
	if err != nil {
		return false, err
	}

	selected, ok := abiFirst[bool](out)
	if !ok {
		return false, fmt.Errorf("unexpected %s output: %v", methodIsPreviousSelectedRelayer, out)
	}

	return selected, nil
}

func abiFirst[T any](out []interface{}) (T, bool) {
	var zero T
	if len(out) != 1 {
		return zero, false
	}
	v, ok := out[0].(T)

	return v, ok
}

// LatestBlockNumber implements api.BlockQuerier
func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	var latest uint64
	err := c.doWithRetry(ctx, "eth_blockNumber", func() error {
		var err error
		latest, err = c.eth.BlockNumber(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to query the latest block number: %w", err)
	}

	return latest, nil
}

// IsSyncing implements api.BlockQuerier
func (c *Client) IsSyncing(ctx context.Context) (bool, error) {
	progress, err := c.eth.SyncProgress(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query the sync progress: %w", err)
	}

	return progress != nil && !progress.Done(), nil
}

// FilterBlockEvents implements api.EventFilterer
func (c *Client) FilterBlockEvents(ctx context.Context, fromBlock, toBlock uint64) ([]*types.EventMessage, error) {
	if fromBlock > toBlock {
		return nil, fmt.Errorf("invalid block range [%d, %d]", fromBlock, toBlock)
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.cfg.SocketQueue},
		Topics:    [][]common.Hash{{SocketQueueABI.Events[types.UnsignedPsbtSubmittedEventName].ID}},
	}

	var logs []ethtypes.Log
	err := c.doWithRetry(ctx, "eth_getLogs", func() error {
		var err error
		logs, err = c.eth.FilterLogs(ctx, query)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter logs in [%d, %d]: %w", fromBlock, toBlock, err)
	}

	return ToEventMessages(logs), nil
}

// SubmitSignedPsbt implements api.PsbtSubmitter. It waits until the
// transaction is mined and fails if it reverted.
func (c *Client) SubmitSignedPsbt(ctx context.Context, from common.Address, packet *psbt.Packet) (*types.TxResponse, error) {
	if from != c.address {
		return nil, fmt.Errorf("cannot submit from %s, the client signs for %s", from.Hex(), c.address.Hex())
	}

	raw, err := codec.EncodePsbt(packet)
	if err != nil {
		return nil, err
	}

	auth, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create the transactor: %w", err)
	}
	auth.Context = ctx

	tx, err := c.socketQueue.Transact(auth, methodSubmitSignedPsbt, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", methodSubmitSignedPsbt, err)
	}

	c.logger.Debug("sent the signed psbt, waiting for the receipt",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("txid", codec.TxID(packet)),
	)

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for the receipt of %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("the transaction %s reverted at block %s", tx.Hash().Hex(), receipt.BlockNumber)
	}

	return &types.TxResponse{
		TxHash:      tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}
