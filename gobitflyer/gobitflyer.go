package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	. "github.com/deforceHK/gobitflyer"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd builds the cli. Config comes from BITFLYER_KEY, BITFLYER_SECRET,
// BITFLYER_CONNECT_TIMEOUT, BITFLYER_READ_TIMEOUT, BITFLYER_ENDPOINT,
// BITFLYER_PROXY and BITFLYER_LOG_LEVEL.
func NewRootCmd() *cobra.Command {
	c := &Command{}
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "gobitflyer",
		Short:         "bitflyer lightning rest api client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			if debug {
				config.LogLevel = "debug"
			}
			InitLogger(config.LogLevel)

			client, err := initClient(config)
			if err != nil {
				return err
			}
			c.config = config
			c.client = client
			c.out = cmd.OutOrStdout()
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(newEndpointsCmd(c))
	rootCmd.AddCommand(newCallCmd(c))
	rootCmd.AddCommand(newSignCmd(c))
	return rootCmd
}
