package types

import (
	errorsmod "cosmossdk.io/errors"
)

type InstantiateMsg struct{}

// ExecuteMsg is the wire form of a contract command, an externally tagged
// union: exactly one field is set.
type ExecuteMsg struct {
	CreateDenom   *CreateDenom   `json:"create_denom,omitempty"`
	ChangeAdmin   *ChangeAdmin   `json:"change_admin,omitempty"`
	MintTokens    *MintTokens    `json:"mint_tokens,omitempty"`
	BurnTokens    *BurnTokens    `json:"burn_tokens,omitempty"`
	ForceTransfer *ForceTransfer `json:"force_transfer,omitempty"`
}

// Command is implemented only by the ExecuteMsg variants below.
type Command interface {
	// Method is the value of the "method" attribute emitted on success.
	Method() string

	isCommand()
}

// CreateDenom creates factory/{contract address}/{Subdenom}.
type CreateDenom struct {
	Subdenom string `json:"subdenom"`
}

// ChangeAdmin hands admin rights over Denom to NewAdminAddress.
type ChangeAdmin struct {
	Denom           string `json:"denom"`
	NewAdminAddress string `json:"new_admin_address"`
}

// MintTokens mints Amount of Denom. If MintToAddress is nil the contract
// itself receives the tokens.
type MintTokens struct {
	Denom         string  `json:"denom"`
	Amount        Uint128 `json:"amount"`
	MintToAddress *string `json:"mint_to_address,omitempty"`
}

// BurnTokens burns Amount of Denom. If BurnFromAddress is nil the tokens are
// burned from the contract's own balance.
type BurnTokens struct {
	Denom           string  `json:"denom"`
	Amount          Uint128 `json:"amount"`
	BurnFromAddress *string `json:"burn_from_address,omitempty"`
}

// ForceTransfer moves Amount of Denom between two addresses without the
// sender's consent.
type ForceTransfer struct {
	Denom       string  `json:"denom"`
	Amount      Uint128 `json:"amount"`
	FromAddress string  `json:"from_address"`
	ToAddress   string  `json:"to_address"`
}

func (CreateDenom) Method() string   { return MethodCreateDenom }
func (ChangeAdmin) Method() string   { return MethodChangeAdmin }
func (MintTokens) Method() string    { return MethodMintTokens }
func (BurnTokens) Method() string    { return MethodBurnTokens }
func (ForceTransfer) Method() string { return MethodForceTransfer }

func (CreateDenom) isCommand()   {}
func (ChangeAdmin) isCommand()   {}
func (MintTokens) isCommand()    {}
func (BurnTokens) isCommand()    {}
func (ForceTransfer) isCommand() {}

// NewExecuteMsg wraps a command into its wire form.
func NewExecuteMsg(cmd Command) ExecuteMsg {
	var msg ExecuteMsg
	switch c := cmd.(type) {
	case CreateDenom:
		msg.CreateDenom = &c
	case ChangeAdmin:
		msg.ChangeAdmin = &c
	case MintTokens:
		msg.MintTokens = &c
	case BurnTokens:
		msg.BurnTokens = &c
	case ForceTransfer:
		msg.ForceTransfer = &c
	}
	return msg
}

// Command returns the single variant carried by msg.
func (msg ExecuteMsg) Command() (Command, error) {
	var cmds []Command
	if msg.CreateDenom != nil {
		cmds = append(cmds, *msg.CreateDenom)
	}
	if msg.ChangeAdmin != nil {
		cmds = append(cmds, *msg.ChangeAdmin)
	}
	if msg.MintTokens != nil {
		cmds = append(cmds, *msg.MintTokens)
	}
	if msg.BurnTokens != nil {
		cmds = append(cmds, *msg.BurnTokens)
	}
	if msg.ForceTransfer != nil {
		cmds = append(cmds, *msg.ForceTransfer)
	}

	switch len(cmds) {
	case 0:
		return nil, errorsmod.Wrap(ErrInvalidRequest, "empty execute msg")
	case 1:
		return cmds[0], nil
	default:
		return nil, errorsmod.Wrapf(ErrInvalidRequest, "execute msg must carry exactly one variant, had %d", len(cmds))
	}
}

// QueryMsg is the wire form of a contract query.
type QueryMsg struct {
	GetDenom *GetDenom `json:"get_denom,omitempty"`
}

type GetDenom struct {
	CreatorAddress string `json:"creator_address"`
	Subdenom       string `json:"subdenom"`
}

type GetDenomResponse struct {
	Denom string `json:"denom"`
}
