package cli

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	"github.com/spf13/cobra"

	"github.com/cosmos/tokenfactory/app"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// CmdInit instantiates the contract, recording --sender as its owner.
func CmdInit(open AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Instantiate the contract state",
		Args:  cobra.NoArgs,
		RunE: withApp(open, func(cmd *cobra.Command, a *app.App, _ []string) error {
			sender, err := cmd.Flags().GetString(FlagSender)
			if err != nil {
				return err
			}
			res, err := a.Keeper.Instantiate(wasmvmtypes.MessageInfo{Sender: sender}, types.InstantiateMsg{})
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		}),
	}

	addSenderFlag(cmd)
	return cmd
}
