package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	tokenfactorytypes "github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// TokenFactoryMsg is the custom message the contract hands to the chain's
// tokenfactory bindings. It is carried as CosmosMsg.Custom.
type TokenFactoryMsg struct {
	Token *TokenMsg `json:"token,omitempty"`
}

type TokenMsg struct {
	/// Contracts can create denoms, namespaced under the contract's address.
	/// A contract may create any number of independent sub-denoms.
	CreateDenom *CreateDenom `json:"create_denom,omitempty"`
	/// Contracts can change the admin of a denom that they are the admin of.
	ChangeAdmin *ChangeAdmin `json:"change_admin,omitempty"`
	/// Contracts can mint native tokens for an existing factory denom
	/// that they are the admin of.
	MintTokens *MintTokens `json:"mint_tokens,omitempty"`
	/// Contracts can burn native tokens for an existing factory denom
	/// that they are the admin of.
	BurnTokens *BurnTokens `json:"burn_tokens,omitempty"`
	/// Forces a transfer of tokens from one address to another.
	ForceTransfer *ForceTransfer `json:"force_transfer,omitempty"`
}

// CreateDenom creates a new factory denom, of denomination:
// factory/{creating contract address}/{Subdenom}
// Subdenom can be of length at most 44 characters, in [0-9a-zA-Z./]
// The (creating contract address, subdenom) pair must be unique.
type CreateDenom struct {
	Subdenom string    `json:"subdenom"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// ChangeAdmin changes the admin for a factory denom.
type ChangeAdmin struct {
	Denom           string `json:"denom"`
	NewAdminAddress string `json:"new_admin_address"`
}

type MintTokens struct {
	Denom         string                    `json:"denom"`
	Amount        tokenfactorytypes.Uint128 `json:"amount"`
	MintToAddress string                    `json:"mint_to_address"`
}

// BurnTokens burns from BurnFromAddress when set, which requires the chain to
// have the enable_burn_from capability. Without it the contract burns from
// its own balance.
type BurnTokens struct {
	Denom           string                    `json:"denom"`
	Amount          tokenfactorytypes.Uint128 `json:"amount"`
	BurnFromAddress *string                   `json:"burn_from_address,omitempty"`
}

type ForceTransfer struct {
	Denom       string                    `json:"denom"`
	Amount      tokenfactorytypes.Uint128 `json:"amount"`
	FromAddress string                    `json:"from_address"`
	ToAddress   string                    `json:"to_address"`
}

func CreateDenomMsg(subdenom string) TokenFactoryMsg {
	return TokenFactoryMsg{Token: &TokenMsg{CreateDenom: &CreateDenom{Subdenom: subdenom}}}
}

func ChangeAdminMsg(denom, newAdminAddress string) TokenFactoryMsg {
	return TokenFactoryMsg{Token: &TokenMsg{ChangeAdmin: &ChangeAdmin{
		Denom:           denom,
		NewAdminAddress: newAdminAddress,
	}}}
}

func MintContractTokens(denom string, amount tokenfactorytypes.Uint128, mintToAddress string) TokenFactoryMsg {
	return TokenFactoryMsg{Token: &TokenMsg{MintTokens: &MintTokens{
		Denom:         denom,
		Amount:        amount,
		MintToAddress: mintToAddress,
	}}}
}

func BurnContractTokens(denom string, amount tokenfactorytypes.Uint128, burnFromAddress string) TokenFactoryMsg {
	return TokenFactoryMsg{Token: &TokenMsg{BurnTokens: &BurnTokens{
		Denom:           denom,
		Amount:          amount,
		BurnFromAddress: &burnFromAddress,
	}}}
}

func BurnContractTokensFromSelf(denom string, amount tokenfactorytypes.Uint128) TokenFactoryMsg {
	return TokenFactoryMsg{Token: &TokenMsg{BurnTokens: &BurnTokens{
		Denom:  denom,
		Amount: amount,
	}}}
}

func ForceTransferTokens(denom string, amount tokenfactorytypes.Uint128, fromAddress, toAddress string) TokenFactoryMsg {
	return TokenFactoryMsg{Token: &TokenMsg{ForceTransfer: &ForceTransfer{
		Denom:       denom,
		Amount:      amount,
		FromAddress: fromAddress,
		ToAddress:   toAddress,
	}}}
}

// ValidateBasic checks that exactly one variant is set.
func (m TokenFactoryMsg) ValidateBasic() error {
	if m.Token == nil {
		return errorsmod.Wrap(tokenfactorytypes.ErrInvalidRequest, "nil token field")
	}
	set := 0
	for _, present := range []bool{
		m.Token.CreateDenom != nil,
		m.Token.ChangeAdmin != nil,
		m.Token.MintTokens != nil,
		m.Token.BurnTokens != nil,
		m.Token.ForceTransfer != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return errorsmod.Wrapf(tokenfactorytypes.ErrInvalidRequest, "token msg must carry exactly one variant, had %d", set)
	}
	return nil
}

// ToCosmosMsg encodes the message as a custom CosmosMsg.
func (m TokenFactoryMsg) ToCosmosMsg() (wasmvmtypes.CosmosMsg, error) {
	if err := m.ValidateBasic(); err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}
	bz, err := json.Marshal(m)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, errorsmod.Wrap(err, "failed to marshal TokenFactoryMsg")
	}
	return wasmvmtypes.CosmosMsg{Custom: bz}, nil
}
