// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package output

import (
	"encoding/json"
	"io"

	"github.com/siderolabs/pciinfo/pkg/pci"
)

// JSON outputs devices in JSON format, one document per device.
type JSON struct {
	enc *json.Encoder
}

// NewJSON initializes JSON device output.
func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")

	return &JSON{enc: enc}
}

// WriteHeader implements output.Writer interface.
func (j *JSON) WriteHeader() error {
	return nil
}

// WriteDevice implements output.Writer interface.
func (j *JSON) WriteDevice(info pci.Info) error {
	return j.enc.Encode(info)
}

// Flush implements output.Writer interface.
func (j *JSON) Flush() error {
	return nil
}
