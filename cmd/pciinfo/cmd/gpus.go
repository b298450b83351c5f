// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siderolabs/pciinfo/pkg/pci"
)

var gpusCmdFlags struct {
	maxDevices int
}

var gpusCmd = &cobra.Command{
	Use:   "gpus",
	Short: "List enabled display adapters as \"vendor model\"",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner, err := newScanner(cmd)
		if err != nil {
			return err
		}

		var opts []pci.FetchOption

		if cmd.Flags().Changed("max") {
			opts = append(opts, pci.WithMaxDevices(gpusCmdFlags.maxDevices))
		}

		for _, adapter := range scanner.FetchDisplayAdapters(opts...) {
			fmt.Fprintln(cmd.OutOrStdout(), adapter)
		}

		return nil
	},
}

func init() {
	gpusCmd.Flags().IntVar(&gpusCmdFlags.maxDevices, "max", 0, "maximum number of device directories to visit")
}
