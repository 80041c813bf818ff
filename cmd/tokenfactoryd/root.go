package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/tokenfactory/app"
	"github.com/cosmos/tokenfactory/x/tokenfactory/client/cli"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

const (
	flagConfig          = "config"
	flagHome            = "home"
	flagDBBackend       = "db-backend"
	flagBech32Prefix    = "bech32-prefix"
	flagContractAddress = "contract-address"
	flagLogLevel        = "log-level"
	flagLogFormat       = "log-format"
	flagListenAddr      = "listen-addr"

	envPrefix = "TOKENFACTORYD"
)

// Version is set at build time.
var Version = "development"

// NewRootCmd creates the tokenfactoryd command tree. Settings are read from
// flags, then TOKENFACTORYD_* environment variables, then the config file.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	defaults := app.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           app.Name,
		Short:         "Token factory contract host",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flagConfig, "", "config file (default is $HOME/.tokenfactoryd.yaml)")
	pf.String(flagHome, defaults.Home, "directory for the state database")
	pf.String(flagDBBackend, defaults.DBBackend, "state database backend (goleveldb|memdb)")
	pf.String(flagBech32Prefix, defaults.Bech32Prefix, "bech32 prefix of account addresses")
	pf.String(flagContractAddress, "", "address of the contract; receives minted tokens by default")
	pf.String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error)")
	pf.String(flagLogFormat, "plain", "log format (plain|json)")

	open := func(cmd *cobra.Command) (*app.App, error) {
		logger, err := newLogger(cmd, v)
		if err != nil {
			return nil, err
		}
		return app.New(readConfig(v), logger)
	}

	rootCmd.AddCommand(
		cli.CmdInit(open),
		cli.GetTxCmd(open),
		cli.GetQueryCmd(open),
		serveCmd(v, open),
		versionCmd(),
	)

	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfgFile := v.GetString(flagConfig); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Dir(app.DefaultNodeHome))
		v.SetConfigName("." + app.Name)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func readConfig(v *viper.Viper) app.Config {
	return app.Config{
		Home:            v.GetString(flagHome),
		DBBackend:       v.GetString(flagDBBackend),
		Bech32Prefix:    v.GetString(flagBech32Prefix),
		ContractAddress: v.GetString(flagContractAddress),
		ListenAddr:      v.GetString(flagListenAddr),
	}
}

func newLogger(cmd *cobra.Command, v *viper.Viper) (log.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := []log.Option{log.LevelOption(level)}
	switch format := v.GetString(flagLogFormat); format {
	case "plain":
	case "json":
		opts = append(opts, log.OutputJSONOption())
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	return log.NewLogger(cmd.ErrOrStderr(), opts...), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display binary version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s %s)\n", app.Name, Version, types.ContractName, types.ContractVersion)
		},
	}
}
