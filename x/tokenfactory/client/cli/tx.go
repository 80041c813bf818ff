package cli

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	"github.com/spf13/cobra"

	"github.com/cosmos/tokenfactory/app"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(CmdCreateDenom(open))
	cmd.AddCommand(CmdChangeAdmin(open))
	cmd.AddCommand(CmdMint(open))
	cmd.AddCommand(CmdBurn(open))
	cmd.AddCommand(CmdForceTransfer(open))
	cmd.AddCommand(CmdExecute(open))

	return cmd
}

func CmdCreateDenom(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-denom [subdenom]",
		Short: "Create factory/{contract}/{subdenom}",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			return execute(cmd, a, types.CreateDenom{Subdenom: args[0]})
		}),
	}

	addSenderFlag(cmd)
	return cmd
}

func CmdChangeAdmin(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-admin [denom] [new-admin]",
		Short: "Hand admin rights over a denom to another address",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			return execute(cmd, a, types.ChangeAdmin{Denom: args[0], NewAdminAddress: args[1]})
		}),
	}

	addSenderFlag(cmd)
	return cmd
}

func CmdMint(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint [denom] [amount]",
		Short: "Mint tokens to the contract or to --to",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			amount, err := types.ParseUint128(args[1])
			if err != nil {
				return err
			}
			msg := types.MintTokens{Denom: args[0], Amount: amount}
			if cmd.Flags().Changed(FlagTo) {
				to, _ := cmd.Flags().GetString(FlagTo)
				msg.MintToAddress = &to
			}
			return execute(cmd, a, msg)
		}),
	}

	addSenderFlag(cmd)
	cmd.Flags().String(FlagTo, "", "Recipient of the minted tokens")
	return cmd
}

func CmdBurn(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn [denom] [amount]",
		Short: "Burn tokens from the contract or from --from",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			amount, err := types.ParseUint128(args[1])
			if err != nil {
				return err
			}
			msg := types.BurnTokens{Denom: args[0], Amount: amount}
			if cmd.Flags().Changed(FlagFrom) {
				from, _ := cmd.Flags().GetString(FlagFrom)
				msg.BurnFromAddress = &from
			}
			return execute(cmd, a, msg)
		}),
	}

	addSenderFlag(cmd)
	cmd.Flags().String(FlagFrom, "", "Address the tokens are burned from")
	return cmd
}

func CmdForceTransfer(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force-transfer [denom] [amount] [from] [to]",
		Short: "Move tokens between two addresses",
		Args:  cobra.ExactArgs(4),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			amount, err := types.ParseUint128(args[1])
			if err != nil {
				return err
			}
			return execute(cmd, a, types.ForceTransfer{
				Denom:       args[0],
				Amount:      amount,
				FromAddress: args[2],
				ToAddress:   args[3],
			})
		}),
	}

	addSenderFlag(cmd)
	return cmd
}

// CmdExecute runs a raw JSON execute message.
func CmdExecute(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "execute [json]",
		Short:   "Execute a JSON encoded message",
		Example: `execute '{"create_denom":{"subdenom":"moon"}}'`,
		Args:    cobra.ExactArgs(1),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			var msg types.ExecuteMsg
			if err := json.Unmarshal([]byte(args[0]), &msg); err != nil {
				return errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
			}
			return executeMsg(cmd, a, msg)
		}),
	}

	addSenderFlag(cmd)
	return cmd
}

func execute(cmd *cobra.Command, a *app.App, c types.Command) error {
	return executeMsg(cmd, a, types.NewExecuteMsg(c))
}

func executeMsg(cmd *cobra.Command, a *app.App, msg types.ExecuteMsg) error {
	sender, err := cmd.Flags().GetString(FlagSender)
	if err != nil {
		return err
	}

	res, err := a.Keeper.Execute(a.Env(), wasmvmtypes.MessageInfo{Sender: sender}, msg)
	if err != nil {
		return err
	}
	return printJSON(cmd, res)
}
