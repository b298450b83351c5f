// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cmd implements the pciinfo commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/siderolabs/pciinfo/pkg/logging"
	"github.com/siderolabs/pciinfo/pkg/pci"
	"github.com/siderolabs/pciinfo/pkg/pciids"
)

var rootCmdFlags struct {
	root        string
	idsFile     string
	concurrency int
	debug       bool
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:               "pciinfo",
	Short:             "Inspect PCI devices present on the host",
	Long:              ``,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if f, ok := cmd.OutOrStdout().(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
			color.NoColor = true
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	cmd, err := rootCmd.ExecuteContextC(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		errorString := err.Error()
		if strings.Contains(errorString, "arg(s)") || strings.Contains(errorString, "flag") || strings.Contains(errorString, "command") {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, cmd.UsageString())
		}
	}

	return err
}

// newScanner builds the scanner from the persistent flags.
func newScanner(cmd *cobra.Command) (*pci.Scanner, error) {
	logger := logging.CLI(cmd.ErrOrStderr(), rootCmdFlags.debug)

	resolver, err := loadResolver(logger)
	if err != nil {
		return nil, err
	}

	return pci.NewScanner(
		pci.WithRoot(rootCmdFlags.root),
		pci.WithResolver(resolver),
		pci.WithLogger(logger.With(logging.Component("scanner"))),
		pci.WithConcurrency(rootCmdFlags.concurrency),
	), nil
}

// loadResolver prefers the pci.ids database for subsystem names, the built-in database
// fills the gaps.
func loadResolver(logger *zap.Logger) (pciids.Resolver, error) {
	if rootCmdFlags.idsFile != "" {
		db, err := pciids.LoadFile(rootCmdFlags.idsFile)
		if err != nil {
			return nil, fmt.Errorf("error loading pci.ids database: %w", err)
		}

		return pciids.Chain(db, pciids.Builtin()), nil
	}

	db, err := pciids.LoadSystem()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("system pci.ids database not found, using built-in database")
		} else {
			logger.Warn("failed to load system pci.ids database", zap.Error(err))
		}

		return pciids.Builtin(), nil
	}

	return pciids.Chain(db, pciids.Builtin()), nil
}

func addScannerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&rootCmdFlags.root, "root", pci.DevicesPath, "directory listing the PCI devices")
	flags.StringVar(&rootCmdFlags.idsFile, "ids-file", "", "path to the pci.ids database (defaults to the system database if present)")
	flags.IntVar(&rootCmdFlags.concurrency, "concurrency", 1, "number of devices read in parallel")
	flags.BoolVar(&rootCmdFlags.debug, "debug", false, "enable debug logging")
}

func init() {
	addScannerFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(listCmd, showCmd, gpusCmd, classesCmd)
}
