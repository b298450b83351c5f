// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siderolabs/pciinfo/cmd/pciinfo/cmd/output"
	"github.com/siderolabs/pciinfo/cmd/pciinfo/pkg/helpers"
	"github.com/siderolabs/pciinfo/pkg/pci"
)

var listCmdFlags struct {
	class      string
	output     string
	maxDevices int
	summary    bool
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List PCI devices",
	Long:    ``,
	Example: `  pciinfo list --class display-controller
  pciinfo list --max 8 -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner, err := newScanner(cmd)
		if err != nil {
			return err
		}

		out, err := output.NewWriter(listCmdFlags.output, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		var opts []pci.FetchOption

		if cmd.Flags().Changed("max") {
			opts = append(opts, pci.WithMaxDevices(listCmdFlags.maxDevices))
		}

		var devices []*pci.Device

		if listCmdFlags.class != "" {
			class, err := pci.ParseClass(listCmdFlags.class)
			if err != nil {
				return err
			}

			devices = scanner.FetchByClass(class, opts...)
		} else {
			devices = scanner.FetchAll(opts...)
		}

		if err = out.WriteHeader(); err != nil {
			return err
		}

		for _, device := range devices {
			if err = out.WriteDevice(device.Info()); err != nil {
				return err
			}
		}

		if err = out.Flush(); err != nil {
			return err
		}

		if listCmdFlags.summary {
			fmt.Fprintln(cmd.ErrOrStderr(), helpers.Count("device", len(devices)))
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCmdFlags.class, "class", "", "only list devices of the class (name like display-controller or code like 0x03)")
	listCmd.Flags().IntVar(&listCmdFlags.maxDevices, "max", 0, "maximum number of device directories to visit")
	listCmd.Flags().BoolVar(&listCmdFlags.summary, "summary", false, "print the number of listed devices to stderr")
	listCmd.Flags().StringVarP(&listCmdFlags.output, "output", "o", "table", "output mode (json, table, yaml)")

	listCmd.RegisterFlagCompletionFunc("output", output.CompleteOutputArg) //nolint:errcheck
	listCmd.RegisterFlagCompletionFunc("class", completeClassArg)          //nolint:errcheck
}
