package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "lvldom",
		Short:         "Adjacency-list graph tooling and total Roman domination search",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	loglevel = rootCmd.PersistentFlags().String("loglevel", "info", "Console log level")
)

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(*loglevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", *loglevel, err)
		}
		zerolog.SetGlobalLevel(level)
		return nil
	}
}
