// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pciids_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/pciinfo/pkg/pciids"
)

const sampleIDs = `#
#	List of PCI ID's
#

10de  NVIDIA Corporation
	1b81  GP104 [GeForce GTX 1070]
		1043 8599  ROG Strix GTX 1070
		10de 119d  GeForce GTX 1070 Founders Edition
	1c82  GP107 [GeForce GTX 1050 Ti]
8086  Intel Corporation
	1572  Ethernet Controller X710 for 10GbE SFP+
		8086 0001  Ethernet Converged Network Adapter X710-4
zzzz  Broken Vendor
	0001  Orphaned Device

# List of known device classes, subclasses and programming interfaces

C 02  Network controller
	00  Ethernet controller
	80  Network controller
C 03  Display controller
	00  VGA compatible controller
		00  VGA controller
		01  8514 controller
	02  3D controller
`

func TestParse(t *testing.T) {
	t.Parallel()

	db, err := pciids.Parse(strings.NewReader(sampleIDs))
	require.NoError(t, err)

	vendors, devices, classes := db.Len()
	assert.Equal(t, 2, vendors)
	assert.Equal(t, 3, devices)
	assert.Equal(t, 2, classes)

	vendor, ok := db.Vendor(0x10de)
	require.True(t, ok)
	assert.Equal(t, "NVIDIA Corporation", vendor.Name)

	device, ok := db.Device(0x10de, 0x1b81)
	require.True(t, ok)
	assert.Equal(t, "GP104 [GeForce GTX 1070]", device.Name)
	require.Len(t, device.Subsystems, 2)

	subsystem, ok := device.Subsystem(0x10de, 0x119d)
	require.True(t, ok)
	assert.Equal(t, "GeForce GTX 1070 Founders Edition", subsystem.Name)

	_, ok = device.Subsystem(0x10de, 0xffff)
	assert.False(t, ok)

	device, ok = db.Device(0x10de, 0x1c82)
	require.True(t, ok)
	assert.Empty(t, device.Subsystems)

	_, ok = db.Device(0x8086, 0x0001)
	assert.False(t, ok, "orphaned device must not be attached to the previous vendor")

	class, ok := db.Class(0x03)
	require.True(t, ok)
	assert.Equal(t, "Display controller", class.Name)
	assert.Len(t, class.Subclasses, 2, "programming interfaces are not subclasses")

	subclass, ok := class.Subclass(0x02)
	require.True(t, ok)
	assert.Equal(t, "3D controller", subclass.Name)

	_, ok = db.Class(0x01)
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pci.ids")
	require.NoError(t, os.WriteFile(path, []byte(sampleIDs), 0o644))

	db, err := pciids.LoadFile(path)
	require.NoError(t, err)

	vendor, ok := db.Vendor(0x8086)
	require.True(t, ok)
	assert.Equal(t, "Intel Corporation", vendor.Name)

	_, err = pciids.LoadFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	resolver := pciids.Builtin()

	vendor, ok := resolver.Vendor(0x8086)
	require.True(t, ok)
	assert.Equal(t, "Intel Corporation", vendor.Name)

	class, ok := resolver.Class(0x03)
	require.True(t, ok)
	assert.Equal(t, "Display controller", class.Name)

	subclass, ok := class.Subclass(0x00)
	require.True(t, ok)
	assert.Equal(t, "VGA compatible controller", subclass.Name)

	device, ok := resolver.Device(0x10de, 0x1b81)
	require.True(t, ok)
	assert.Equal(t, "GP104 [GeForce GTX 1070]", device.Name)
	assert.Empty(t, device.Subsystems)

	_, ok = resolver.Class(0xfe)
	assert.False(t, ok)
}

func TestChain(t *testing.T) {
	t.Parallel()

	db, err := pciids.Parse(strings.NewReader(`10de  NVIDIA Corp. (local)
	1b81  GP104 [GeForce GTX 1070]
		10de 119d  GeForce GTX 1070 Founders Edition
`))
	require.NoError(t, err)

	resolver := pciids.Chain(db, pciids.Builtin())

	vendor, ok := resolver.Vendor(0x10de)
	require.True(t, ok)
	assert.Equal(t, "NVIDIA Corp. (local)", vendor.Name)

	// falls through to the built-in database
	vendor, ok = resolver.Vendor(0x8086)
	require.True(t, ok)
	assert.Equal(t, "Intel Corporation", vendor.Name)

	device, ok := resolver.Device(0x10de, 0x1b81)
	require.True(t, ok)
	assert.Len(t, device.Subsystems, 1)

	class, ok := resolver.Class(0x02)
	require.True(t, ok)
	assert.Equal(t, "Network controller", class.Name)

	_, ok = pciids.Chain().Vendor(0x8086)
	assert.False(t, ok)
}
