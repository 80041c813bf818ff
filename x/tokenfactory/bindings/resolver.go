package bindings

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// ChainResolver answers full denom lookups with the chain's own rules: the
// creator must be a valid address and the assembled denom must be a legal
// bank denom.
type ChainResolver struct {
	addresses types.AddressValidator
}

var _ types.Resolver = ChainResolver{}

func NewChainResolver(addresses types.AddressValidator) ChainResolver {
	return ChainResolver{addresses: addresses}
}

func (r ChainResolver) FullDenom(creatorAddr string, subdenom string) (string, error) {
	if err := r.addresses.ValidateAddress(creatorAddr); err != nil {
		return "", err
	}
	fullDenom, err := types.GetTokenDenom(creatorAddr, subdenom)
	if err != nil {
		return "", errorsmod.Wrap(err, "validate sub-denom")
	}
	return fullDenom, nil
}
