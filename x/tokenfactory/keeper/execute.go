package keeper

import (
	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	bindingstypes "github.com/cosmos/tokenfactory/x/tokenfactory/bindings/types"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// Execute decodes msg, dispatches it and wraps the resulting action in a
// contract response. The sender is logged but never checked against the
// recorded owner.
func (k Keeper) Execute(env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, msg types.ExecuteMsg) (*wasmvmtypes.Response, error) {
	cmd, err := msg.Command()
	if err != nil {
		return nil, err
	}

	action, attr, err := k.Dispatch(env.Contract.Address, cmd)
	if err != nil {
		k.Logger().Debug("rejected command", "method", cmd.Method(), "sender", info.Sender, "err", err)
		return nil, err
	}

	cosmosMsg, err := action.ToCosmosMsg()
	if err != nil {
		return nil, err
	}

	k.Logger().Debug("accepted command", "method", cmd.Method(), "sender", info.Sender)
	return &wasmvmtypes.Response{
		Messages: []wasmvmtypes.SubMsg{{
			Msg:     cosmosMsg,
			ReplyOn: wasmvmtypes.ReplyNever,
		}},
		Attributes: []wasmvmtypes.EventAttribute{attr},
	}, nil
}

// Dispatch validates a single command and returns the action it produces
// together with its "method" attribute. The first failing check aborts.
func (k Keeper) Dispatch(self string, cmd types.Command) (action bindingstypes.TokenFactoryMsg, attr wasmvmtypes.EventAttribute, err error) {
	defer func() { observeCommand(cmd, err) }()

	switch c := cmd.(type) {
	case types.CreateDenom:
		action, err = k.createDenom(c)
	case types.ChangeAdmin:
		action, err = k.changeAdmin(c)
	case types.MintTokens:
		action, err = k.mintTokens(self, c)
	case types.BurnTokens:
		action, err = k.burnTokens(c)
	case types.ForceTransfer:
		action, err = k.forceTransfer(c)
	default:
		err = errorsmod.Wrapf(types.ErrInvalidRequest, "unknown command %T", cmd)
	}
	if err != nil {
		return bindingstypes.TokenFactoryMsg{}, wasmvmtypes.EventAttribute{}, err
	}
	return action, wasmvmtypes.EventAttribute{Key: types.AttributeKeyMethod, Value: cmd.Method()}, nil
}

func (k Keeper) createDenom(c types.CreateDenom) (bindingstypes.TokenFactoryMsg, error) {
	if c.Subdenom == "" {
		return bindingstypes.TokenFactoryMsg{}, &types.InvalidSubdenomError{Subdenom: c.Subdenom}
	}
	return bindingstypes.CreateDenomMsg(c.Subdenom), nil
}

func (k Keeper) changeAdmin(c types.ChangeAdmin) (bindingstypes.TokenFactoryMsg, error) {
	if err := k.addresses.ValidateAddress(c.NewAdminAddress); err != nil {
		return bindingstypes.TokenFactoryMsg{}, err
	}
	if err := k.ValidateDenom(c.Denom); err != nil {
		return bindingstypes.TokenFactoryMsg{}, err
	}
	return bindingstypes.ChangeAdminMsg(c.Denom, c.NewAdminAddress), nil
}

func (k Keeper) mintTokens(self string, c types.MintTokens) (bindingstypes.TokenFactoryMsg, error) {
	if c.Amount.IsZero() {
		return bindingstypes.TokenFactoryMsg{}, types.ErrZeroAmount
	}
	if c.MintToAddress != nil {
		if err := k.addresses.ValidateAddress(*c.MintToAddress); err != nil {
			return bindingstypes.TokenFactoryMsg{}, err
		}
	}
	if err := k.ValidateDenom(c.Denom); err != nil {
		return bindingstypes.TokenFactoryMsg{}, err
	}

	recipient := self
	if c.MintToAddress != nil {
		recipient = *c.MintToAddress
	}
	return bindingstypes.MintContractTokens(c.Denom, c.Amount, recipient), nil
}

func (k Keeper) burnTokens(c types.BurnTokens) (bindingstypes.TokenFactoryMsg, error) {
	if c.Amount.IsZero() {
		return bindingstypes.TokenFactoryMsg{}, types.ErrZeroAmount
	}
	if c.BurnFromAddress != nil {
		if err := k.addresses.ValidateAddress(*c.BurnFromAddress); err != nil {
			return bindingstypes.TokenFactoryMsg{}, err
		}
	}
	if err := k.ValidateDenom(c.Denom); err != nil {
		return bindingstypes.TokenFactoryMsg{}, err
	}

	if c.BurnFromAddress != nil {
		return bindingstypes.BurnContractTokens(c.Denom, c.Amount, *c.BurnFromAddress), nil
	}
	return bindingstypes.BurnContractTokensFromSelf(c.Denom, c.Amount), nil
}

// forceTransfer leaves from and to unchecked; the chain validates them when
// it executes the action.
func (k Keeper) forceTransfer(c types.ForceTransfer) (bindingstypes.TokenFactoryMsg, error) {
	if c.Amount.IsZero() {
		return bindingstypes.TokenFactoryMsg{}, types.ErrZeroAmount
	}
	if err := k.ValidateDenom(c.Denom); err != nil {
		return bindingstypes.TokenFactoryMsg{}, err
	}
	return bindingstypes.ForceTransferTokens(c.Denom, c.Amount, c.FromAddress, c.ToAddress), nil
}
