package app

import (
	"fmt"

	dbm "github.com/cometbft/cometbft-db"

	"github.com/cosmos/tokenfactory/x/tokenfactory/bindings"
)

const (
	DefaultBech32Prefix = "wormhole"
	DefaultListenAddr   = "127.0.0.1:7070"
)

type Config struct {
	Home            string
	DBBackend       string
	Bech32Prefix    string
	ContractAddress string
	ListenAddr      string
}

func DefaultConfig() Config {
	return Config{
		Home:         DefaultNodeHome,
		DBBackend:    string(dbm.GoLevelDBBackend),
		Bech32Prefix: DefaultBech32Prefix,
		ListenAddr:   DefaultListenAddr,
	}
}

func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory must be set")
	}
	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db backend %q", c.DBBackend)
	}
	if c.ContractAddress == "" {
		return fmt.Errorf("contract address must be set")
	}
	if err := bindings.NewBech32AddressValidator(c.Bech32Prefix).ValidateAddress(c.ContractAddress); err != nil {
		return fmt.Errorf("invalid contract address: %w", err)
	}
	return nil
}
