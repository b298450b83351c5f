// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/siderolabs/pciinfo/pkg/pci"
)

// YAML outputs devices in YAML format, as a stream of documents.
type YAML struct {
	enc     *yaml.Encoder
	written bool
}

// NewYAML initializes YAML device output.
func NewYAML(w io.Writer) *YAML {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	return &YAML{enc: enc}
}

// WriteHeader implements output.Writer interface.
func (y *YAML) WriteHeader() error {
	return nil
}

// WriteDevice implements output.Writer interface.
func (y *YAML) WriteDevice(info pci.Info) error {
	y.written = true

	return y.enc.Encode(info)
}

// Flush implements output.Writer interface.
func (y *YAML) Flush() error {
	if !y.written {
		return nil
	}

	return y.enc.Close()
}
