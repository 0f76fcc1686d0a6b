// Package main provides the tabfn CLI: it tabulates analytic functions,
// compares them with their tabulated counterparts and saves or loads tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	verbose bool
	log     *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tabfn",
		Short:         "Tabulate functions and store them in binary, text or object form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.log != nil {
				return nil
			}
			var err error
			if a.verbose {
				a.log, err = zap.NewDevelopment()
			} else {
				a.log, err = zap.NewProduction()
			}
			return err
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose (development) logging")

	rootCmd.AddCommand(compareCmd(a))
	rootCmd.AddCommand(studyCmd(a))
	rootCmd.AddCommand(saveCmd(a))
	rootCmd.AddCommand(loadCmd(a))
	rootCmd.AddCommand(plotCmd(a))

	return rootCmd
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	if a.log != nil {
		if err != nil {
			a.log.Error("command failed", zap.Error(err))
		}
		_ = a.log.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
