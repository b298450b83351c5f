// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

import (
	"encoding/hex"
	"slices"

	"github.com/siderolabs/gen/optional"
)

// Device is a PCI device record.
//
// Device is immutable once returned by a Scanner.
type Device struct {
	numaNode optional.Optional[int]

	path    string
	address string

	className     string
	subclassName  string
	vendorName    string
	deviceName    string
	subsystemName string

	classID           []byte
	vendorID          []byte
	deviceID          []byte
	revision          []byte
	subsystemVendorID []byte
	subsystemDeviceID []byte

	enabled       bool
	d3coldAllowed bool
}

// Path returns the device sysfs directory.
func (d *Device) Path() string { return d.path }

// Address returns the bus address without the default domain, e.g. 00:02.0.
func (d *Device) Address() string { return d.address }

// ClassID returns the class and subclass bytes.
func (d *Device) ClassID() []byte { return slices.Clone(d.classID) }

// VendorID returns the big-endian vendor id.
func (d *Device) VendorID() []byte { return slices.Clone(d.vendorID) }

// DeviceID returns the big-endian device id.
func (d *Device) DeviceID() []byte { return slices.Clone(d.deviceID) }

// Revision returns the device revision.
func (d *Device) Revision() []byte { return slices.Clone(d.revision) }

// SubsystemVendorID returns the big-endian subsystem vendor id.
func (d *Device) SubsystemVendorID() []byte { return slices.Clone(d.subsystemVendorID) }

// SubsystemDeviceID returns the big-endian subsystem device id.
func (d *Device) SubsystemDeviceID() []byte { return slices.Clone(d.subsystemDeviceID) }

// ClassName returns the class name, e.g. "Display controller".
func (d *Device) ClassName() string { return d.className }

// SubclassName returns the subclass name, e.g. "VGA compatible controller".
func (d *Device) SubclassName() string { return d.subclassName }

// VendorName returns the vendor name.
func (d *Device) VendorName() string { return d.vendorName }

// DeviceName returns the device (model) name.
func (d *Device) DeviceName() string { return d.deviceName }

// SubsystemName returns the subsystem (board) name.
func (d *Device) SubsystemName() string { return d.subsystemName }

// NUMANode returns the NUMA node of the device, -1 if unknown.
func (d *Device) NUMANode() int { return d.numaNode.ValueOr(-1) }

// NUMANodeValue returns the NUMA node as reported by the kernel.
//
// The second value is false when the node wasn't read.
func (d *Device) NUMANodeValue() (int, bool) { return d.numaNode.Get() }

// Enabled reports whether the device is enabled.
func (d *Device) Enabled() bool { return d.enabled }

// D3ColdAllowed reports whether the D3cold power state is allowed for the device.
func (d *Device) D3ColdAllowed() bool { return d.d3coldAllowed }

// Class returns the device class code, false if the class wasn't read.
func (d *Device) Class() (Class, bool) {
	if len(d.classID) == 0 {
		return 0, false
	}

	return Class(d.classID[0]), true
}

// Info is a serializable snapshot of a Device.
type Info struct {
	Path              string `json:"path" yaml:"path"`
	Address           string `json:"address" yaml:"address"`
	ClassID           string `json:"classID" yaml:"classID"`
	Class             string `json:"class" yaml:"class"`
	Subclass          string `json:"subclass" yaml:"subclass"`
	VendorID          string `json:"vendorID" yaml:"vendorID"`
	Vendor            string `json:"vendor" yaml:"vendor"`
	DeviceID          string `json:"deviceID" yaml:"deviceID"`
	Device            string `json:"device" yaml:"device"`
	Revision          string `json:"revision" yaml:"revision"`
	SubsystemVendorID string `json:"subsystemVendorID" yaml:"subsystemVendorID"`
	SubsystemDeviceID string `json:"subsystemDeviceID" yaml:"subsystemDeviceID"`
	Subsystem         string `json:"subsystem" yaml:"subsystem"`
	NUMANode          int    `json:"numaNode" yaml:"numaNode"`
	Enabled           bool   `json:"enabled" yaml:"enabled"`
	D3ColdAllowed     bool   `json:"d3coldAllowed" yaml:"d3coldAllowed"`
}

// Info returns the snapshot of the device.
func (d *Device) Info() Info {
	return Info{
		Path:              d.path,
		Address:           d.address,
		ClassID:           formatID(d.classID),
		Class:             d.className,
		Subclass:          d.subclassName,
		VendorID:          formatID(d.vendorID),
		Vendor:            d.vendorName,
		DeviceID:          formatID(d.deviceID),
		Device:            d.deviceName,
		Revision:          formatID(d.revision),
		SubsystemVendorID: formatID(d.subsystemVendorID),
		SubsystemDeviceID: formatID(d.subsystemDeviceID),
		Subsystem:         d.subsystemName,
		NUMANode:          d.NUMANode(),
		Enabled:           d.enabled,
		D3ColdAllowed:     d.d3coldAllowed,
	}
}

func formatID(id []byte) string {
	if len(id) == 0 {
		return ""
	}

	return "0x" + hex.EncodeToString(id)
}
