// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"

	"github.com/ryanuber/columnize"
	"github.com/siderolabs/gen/xslices"
	"github.com/spf13/cobra"

	"github.com/siderolabs/pciinfo/pkg/pci"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List PCI device classes accepted by --class",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := append([]string{"CODE | NAME | SLUG"}, xslices.Map(pci.Classes, func(class pci.Class) string {
			return fmt.Sprintf("0x%02x | %s | %s", uint8(class), class, class.Slug())
		})...)

		_, err := fmt.Fprintln(cmd.OutOrStdout(), columnize.SimpleFormat(lines))

		return err
	},
}

func completeClassArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return xslices.Map(pci.Classes, pci.Class.Slug), cobra.ShellCompDirectiveNoFileComp
}
