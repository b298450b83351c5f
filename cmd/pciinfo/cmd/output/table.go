// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ryanuber/columnize"

	"github.com/siderolabs/pciinfo/pkg/pci"
)

// Table outputs devices in Table view.
type Table struct {
	w     io.Writer
	lines []string
}

// NewTable initializes table device output.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// WriteHeader implements output.Writer interface.
func (table *Table) WriteHeader() error {
	table.lines = append(table.lines, "ADDRESS | CLASS | VENDOR | DEVICE | NUMA | ENABLED")

	return nil
}

// WriteDevice implements output.Writer interface.
func (table *Table) WriteDevice(info pci.Info) error {
	table.lines = append(table.lines, strings.Join([]string{
		placeholder(info.Address),
		placeholder(info.Subclass, info.Class),
		placeholder(info.Vendor, info.VendorID),
		placeholder(pci.MarketingName(info.Device), info.DeviceID),
		fmt.Sprintf("%d", info.NUMANode),
		fmt.Sprintf("%t", info.Enabled),
	}, " | "))

	return nil
}

// Flush implements output.Writer interface.
func (table *Table) Flush() error {
	if len(table.lines) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(table.w, columnize.SimpleFormat(table.lines))
	table.lines = nil

	return err
}

// placeholder returns the first non-empty value, "-" if there is none.
func placeholder(values ...string) string {
	for _, v := range values {
		if v != "" {
			return strings.ReplaceAll(v, "|", "/")
		}
	}

	return "-"
}
