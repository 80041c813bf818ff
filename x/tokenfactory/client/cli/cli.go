package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/tokenfactory/app"
)

const (
	FlagSender = "sender"
	FlagTo     = "to"
	FlagFrom   = "from"
)

// AppOpener opens the application for the duration of a single command. The
// caller closes the returned app.
type AppOpener func(cmd *cobra.Command) (*app.App, error)

func withApp(open AppOpener, run func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a, err := open(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := a.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close state database: %w", cerr)
			}
		}()
		return run(cmd, a, args)
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

func addSenderFlag(cmd *cobra.Command) {
	cmd.Flags().String(FlagSender, "", "Address recorded as the message sender")
}
