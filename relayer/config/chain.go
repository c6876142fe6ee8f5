package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bifrost-platform/btc-relayer/types"
)

// ChainConfig describes one managed chain. It is written in the config file
// as a single comma separated list of key=value pairs, e.g.
//
//	chain=id=49088,name=bifrost,rpc=http://127.0.0.1:9933,native=true,authority=0x..,relayermanager=0x..,socketqueue=0x..
type ChainConfig struct {
	ID             types.ChainID
	Name           string
	RPCAddr        string
	IsNative       bool
	Authority      common.Address
	RelayerManager common.Address
	SocketQueue    common.Address
}

// UnmarshalFlag implements flags.Unmarshaler
func (c *ChainConfig) UnmarshalFlag(value string) error {
	parsed := ChainConfig{}
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("invalid chain field %q, expected key=value", field)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)

		switch key {
		case "id":
			id, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return fmt.Errorf("invalid chain id %q: %w", val, err)
			}
			parsed.ID = types.ChainID(id)
		case "name":
			parsed.Name = val
		case "rpc":
			parsed.RPCAddr = val
		case "native":
			isNative, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid native flag %q: %w", val, err)
			}
			parsed.IsNative = isNative
		case "authority", "relayermanager", "socketqueue":
			if !common.IsHexAddress(val) {
				return fmt.Errorf("invalid %s address %q", key, val)
			}
			addr := common.HexToAddress(val)
			switch key {
			case "authority":
				parsed.Authority = addr
			case "relayermanager":
				parsed.RelayerManager = addr
			default:
				parsed.SocketQueue = addr
			}
		default:
			return fmt.Errorf("unknown chain field %q", key)
		}
	}

	*c = parsed

	return nil
}

// MarshalFlag implements flags.Marshaler
func (c ChainConfig) MarshalFlag() (string, error) {
	fields := []string{
		"id=" + c.ID.String(),
		"name=" + c.Name,
		"rpc=" + c.RPCAddr,
		"native=" + strconv.FormatBool(c.IsNative),
		"authority=" + c.Authority.Hex(),
		"relayermanager=" + c.RelayerManager.Hex(),
		"socketqueue=" + c.SocketQueue.Hex(),
	}

	return strings.Join(fields, ","), nil
}

func (c *ChainConfig) Validate() error {
	if c.ID == 0 {
		return fmt.Errorf("chain id must be set")
	}
	if c.Name == "" {
		return fmt.Errorf("chain %d: name must be set", c.ID)
	}
	if _, err := url.Parse(c.RPCAddr); err != nil || c.RPCAddr == "" {
		return fmt.Errorf("chain %s: invalid rpc address %q", c.Name, c.RPCAddr)
	}

	return nil
}
