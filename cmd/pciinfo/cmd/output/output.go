// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package output provides device writers in different formats.
package output

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/siderolabs/pciinfo/pkg/pci"
)

// Writer interface.
type Writer interface {
	WriteHeader() error
	WriteDevice(info pci.Info) error
	Flush() error
}

// NewWriter builds writer from type.
func NewWriter(format string, w io.Writer) (Writer, error) {
	switch format {
	case "table":
		return NewTable(w), nil
	case "yaml":
		return NewYAML(w), nil
	case "json":
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("output format %q is not supported", format)
	}
}

// CompleteOutputArg represents tab completion for `--output` argument.
func CompleteOutputArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"json", "table", "yaml"}, cobra.ShellCompDirectiveNoFileComp
}
