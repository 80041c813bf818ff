package bindings

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// Bech32AddressValidator accepts normalized bech32 account addresses. An
// empty Prefix accepts any human readable part.
type Bech32AddressValidator struct {
	Prefix string
}

var _ types.AddressValidator = Bech32AddressValidator{}

func NewBech32AddressValidator(prefix string) Bech32AddressValidator {
	return Bech32AddressValidator{Prefix: prefix}
}

// ValidateAddress parses address from bech32 string and verifies its format.
func (v Bech32AddressValidator) ValidateAddress(addr string) error {
	if len(strings.TrimSpace(addr)) == 0 {
		return errorsmod.Wrap(types.ErrInvalidAddress, "empty address string is not allowed")
	}
	// addresses must round trip unchanged, so mixed or upper case is rejected
	if addr != strings.ToLower(addr) {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "address not normalized: %s", addr)
	}
	hrp, bz, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "address from bech32: %s", err)
	}
	if v.Prefix != "" && hrp != v.Prefix {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "invalid bech32 prefix; expected %s, got %s", v.Prefix, hrp)
	}
	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "verify address format: %s", err)
	}
	return nil
}
