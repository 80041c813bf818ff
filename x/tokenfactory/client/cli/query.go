package cli

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cobra"

	"github.com/cosmos/tokenfactory/app"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(CmdDenom(open))
	cmd.AddCommand(CmdValidateDenom(open))
	cmd.AddCommand(CmdShowState(open))
	cmd.AddCommand(CmdShowContractInfo(open))
	cmd.AddCommand(CmdRawQuery(open))

	return cmd
}

func CmdDenom(open AppOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "denom [creator] [subdenom]",
		Short: "Resolve the full denom for a creator and subdenom",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			res, err := a.Keeper.GetDenom(args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		}),
	}
}

func CmdValidateDenom(open AppOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-denom [denom]",
		Short: "Check that a denom is a well formed factory denom",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			if err := a.Keeper.ValidateDenom(args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return err
		}),
	}
}

func CmdShowState(open AppOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "shows the contract owner",
		Args:  cobra.NoArgs,
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, _ []string) error {
			state, err := a.Keeper.GetState()
			if err != nil {
				return err
			}
			return printJSON(cmd, state)
		}),
	}
}

func CmdShowContractInfo(open AppOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "contract-info",
		Short: "shows the stored contract name and version",
		Args:  cobra.NoArgs,
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, _ []string) error {
			info, err := a.Keeper.GetContractInfo()
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		}),
	}
}

func CmdRawQuery(open AppOpener) *cobra.Command {
	return &cobra.Command{
		Use:     "raw [json]",
		Short:   "Run a JSON encoded contract query",
		Example: `raw '{"get_denom":{"creator_address":"wormhole1...","subdenom":"moon"}}'`,
		Args:    cobra.ExactArgs(1),
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, args []string) error {
			var msg types.QueryMsg
			if err := json.Unmarshal([]byte(args[0]), &msg); err != nil {
				return errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
			}
			bz, err := a.Keeper.Query(msg)
			if err != nil {
				return err
			}
			return printJSON(cmd, json.RawMessage(bz))
		}),
	}
}
