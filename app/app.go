package app

import (
	"os"
	"path/filepath"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	dbm "github.com/cometbft/cometbft-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/tokenfactory/x/tokenfactory/bindings"
	"github.com/cosmos/tokenfactory/x/tokenfactory/keeper"
)

const (
	// Name is the application name, also used for the home directory.
	Name = "tokenfactoryd"

	// DBName is the name of the contract's state database inside the data dir.
	DBName = "tokenfactory"
)

// DefaultNodeHome default home directory for the application
var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name)

	SetAddressVerifier()
}

// SetAddressVerifier bounds account address length the same way the chain does.
func SetAddressVerifier() {
	config := sdk.GetConfig()
	config.SetAddressVerifier(func(bytes []byte) error {
		if len(bytes) == 0 {
			return errorsmod.Wrap(sdkerrors.ErrUnknownAddress, "addresses cannot be empty")
		}

		if len(bytes) > address.MaxAddrLen {
			return errorsmod.Wrapf(sdkerrors.ErrUnknownAddress, "address max length is %d, got %d", address.MaxAddrLen, len(bytes))
		}

		return nil
	})
}

// App hosts the tokenfactory contract outside of a chain: it supplies the
// state database, the bech32 address validator and a token querier that
// resolves denoms with the chain's rules.
type App struct {
	Keeper keeper.Keeper

	cfg    Config
	db     dbm.DB
	logger log.Logger
}

func New(cfg Config, logger log.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := dbm.NewDB(DBName, dbm.BackendType(cfg.DBBackend), filepath.Join(cfg.Home, "data"))
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to open state database")
	}

	addresses := bindings.NewBech32AddressValidator(cfg.Bech32Prefix)
	querier := bindings.NewCustomQuerier(bindings.NewChainResolver(addresses))
	resolver := bindings.NewTokenQuerier(querier, bindings.DefaultQueryGasLimit)

	return &App{
		Keeper: keeper.NewKeeper(db, resolver, addresses, logger),
		cfg:    cfg,
		db:     db,
		logger: logger,
	}, nil
}

// Env describes the environment the contract executes in.
func (a *App) Env() wasmvmtypes.Env {
	return wasmvmtypes.Env{
		Contract: wasmvmtypes.ContractInfo{Address: a.cfg.ContractAddress},
	}
}

func (a *App) Config() Config { return a.cfg }

func (a *App) Close() error {
	return a.db.Close()
}
