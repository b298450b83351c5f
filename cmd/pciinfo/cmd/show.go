// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siderolabs/pciinfo/cmd/pciinfo/cmd/output"
	"github.com/siderolabs/pciinfo/cmd/pciinfo/pkg/helpers"
)

var showCmdFlags struct {
	output   string
	diagnose bool
}

var showCmd = &cobra.Command{
	Use:   "show <address|path>...",
	Short: "Show PCI devices by address or sysfs path",
	Long: `Devices can be specified by their sysfs path, by their full address (0000:00:02.0)
or by their address without the domain (00:02.0).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner, err := newScanner(cmd)
		if err != nil {
			return err
		}

		out, err := output.NewWriter(showCmdFlags.output, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if err = out.WriteHeader(); err != nil {
			return err
		}

		var errs error

		for _, identifier := range args {
			device, err := scanner.Lookup(identifier)
			if err != nil {
				errs = helpers.AppendErrors(errs, err)

				continue
			}

			if showCmdFlags.diagnose {
				_, diagErr := scanner.Diagnose(device.Path())

				fmt.Fprintln(cmd.ErrOrStderr(), helpers.FormatDiagnostics(device.Address(), diagErr))
			}

			if err = out.WriteDevice(device.Info()); err != nil {
				return err
			}
		}

		if err = out.Flush(); err != nil {
			return err
		}

		return errs
	},
}

func init() {
	showCmd.Flags().StringVarP(&showCmdFlags.output, "output", "o", "yaml", "output mode (json, table, yaml)")
	showCmd.Flags().BoolVar(&showCmdFlags.diagnose, "diagnose", false, "report attributes which couldn't be read to stderr")

	showCmd.RegisterFlagCompletionFunc("output", output.CompleteOutputArg) //nolint:errcheck
}
