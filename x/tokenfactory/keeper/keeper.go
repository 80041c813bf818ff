package keeper

import (
	"fmt"

	"cosmossdk.io/log"

	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// Keeper validates tokenfactory contract commands and turns accepted ones
// into TokenFactoryMsg actions. It owns no mutable state: the owner record is
// written once by Instantiate and only read afterwards.
type Keeper struct {
	store     types.KVStore
	resolver  types.Resolver
	addresses types.AddressValidator
	logger    log.Logger
}

// NewKeeper returns a new instance of the x/tokenfactory contract keeper
func NewKeeper(
	store types.KVStore,
	resolver types.Resolver,
	addresses types.AddressValidator,
	logger log.Logger,
) Keeper {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return Keeper{
		store:     store,
		resolver:  resolver,
		addresses: addresses,
		logger:    logger,
	}
}

// Logger returns a logger for the x/tokenfactory module
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
