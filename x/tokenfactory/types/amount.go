package types

import (
	"encoding/json"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

const maxAmountBits = 128

// Uint128 is an unsigned token amount bounded to 128 bits. It is encoded in
// JSON as a decimal string, matching CosmWasm's Uint128.
type Uint128 struct {
	i sdkmath.Uint
}

func NewUint128(n uint64) Uint128 {
	return Uint128{i: sdkmath.NewUint(n)}
}

// ParseUint128 reads a plain decimal string. Signs, other bases and values
// wider than 128 bits are rejected.
func ParseUint128(s string) (Uint128, error) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return Uint128{}, errorsmod.Wrapf(ErrInvalidRequest, "invalid amount %q", s)
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, errorsmod.Wrapf(ErrInvalidRequest, "invalid amount %q", s)
	}
	if i.BitLen() > maxAmountBits {
		return Uint128{}, errorsmod.Wrapf(ErrAmountOverflow, "%s", s)
	}
	return Uint128{i: sdkmath.NewUintFromBigInt(i)}, nil
}

// Uint returns the amount as a math.Uint. The zero value of Uint128 is zero.
func (a Uint128) Uint() sdkmath.Uint {
	if a.i == (sdkmath.Uint{}) {
		return sdkmath.ZeroUint()
	}
	return a.i
}

func (a Uint128) IsZero() bool { return a.Uint().IsZero() }

func (a Uint128) Equal(b Uint128) bool { return a.Uint().Equal(b.Uint()) }

func (a Uint128) String() string { return a.Uint().String() }

func (a Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Uint128) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return errorsmod.Wrap(ErrInvalidRequest, "amount must be a decimal string")
	}
	parsed, err := ParseUint128(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
