// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/siderolabs/pciinfo/cmd/pciinfo/cmd/output"
	"github.com/siderolabs/pciinfo/pkg/pci"
)

var testInfos = []pci.Info{
	{
		Address:  "00:02.0",
		ClassID:  "0x0300",
		Class:    "Display controller",
		Subclass: "VGA compatible controller",
		VendorID: "0x10de",
		Vendor:   "NVIDIA Corporation",
		DeviceID: "0x1b81",
		Device:   "GP104 [GeForce GTX 1070]",
		NUMANode: 0,
		Enabled:  true,
	},
	{
		Address:  "01:00.0",
		VendorID: "0x1234",
		DeviceID: "0x5678",
		NUMANode: -1,
	},
}

func write(t *testing.T, format string, infos []pci.Info) string {
	t.Helper()

	var buf bytes.Buffer

	w, err := output.NewWriter(format, &buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader())

	for _, info := range infos {
		require.NoError(t, w.WriteDevice(info))
	}

	require.NoError(t, w.Flush())

	return buf.String()
}

func TestTable(t *testing.T) {
	t.Parallel()

	lines := strings.Split(strings.TrimSpace(write(t, "table", testInfos)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, []string{"ADDRESS", "CLASS", "VENDOR", "DEVICE", "NUMA", "ENABLED"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[1], "VGA compatible controller")
	assert.Contains(t, lines[1], "GeForce GTX 1070")
	assert.NotContains(t, lines[1], "GP104")
	assert.Equal(t, []string{"01:00.0", "-", "0x1234", "0x5678", "-1", "false"}, strings.Fields(lines[2]))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	dec := json.NewDecoder(strings.NewReader(write(t, "json", testInfos)))

	for _, expected := range testInfos {
		var info pci.Info

		require.NoError(t, dec.Decode(&info))
		assert.Equal(t, expected, info)
	}

	assert.False(t, dec.More())
}

func TestYAML(t *testing.T) {
	t.Parallel()

	out := write(t, "yaml", testInfos)
	assert.Contains(t, out, "vendor: NVIDIA Corporation")
	assert.Contains(t, out, "numaNode: -1")

	dec := yaml.NewDecoder(strings.NewReader(out))

	var info pci.Info

	require.NoError(t, dec.Decode(&info))
	assert.Equal(t, testInfos[0], info)

	assert.Empty(t, write(t, "yaml", nil))
}

func TestUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := output.NewWriter("xml", &bytes.Buffer{})
	assert.Error(t, err)
}
