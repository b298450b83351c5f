// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package pci enumerates PCI devices from sysfs and resolves their identifiers to names.
//
// Device information is collected on a best-effort basis: missing or malformed sysfs
// attributes leave the corresponding field empty, and a device record is always produced.
package pci

import "errors"

// DevicesPath is the sysfs directory with one entry per PCI device.
const DevicesPath = "/sys/bus/pci/devices"

// DomainPrefix is the PCI domain part of the addresses of devices in the default domain.
const DomainPrefix = "0000:"

// ErrDeviceNotFound is returned by strict lookups when the device directory doesn't exist.
var ErrDeviceNotFound = errors.New("pci device not found")

var defaultScanner = NewScanner()

// New builds the full device record for the identifier using the default scanner.
//
// The identifier is either a path to the device directory or a PCI address with or
// without the domain (0000:00:02.0, 00:02.0).
func New(identifier string) *Device {
	return defaultScanner.New(identifier)
}

// FetchAll builds the records of all PCI devices using the default scanner.
func FetchAll(opts ...FetchOption) []*Device {
	return defaultScanner.FetchAll(opts...)
}

// FetchByClass builds the records of PCI devices of the given class using the default scanner.
func FetchByClass(class Class, opts ...FetchOption) []*Device {
	return defaultScanner.FetchByClass(class, opts...)
}

// FetchDisplayAdapters returns "vendor model" strings of enabled display controllers
// using the default scanner.
func FetchDisplayAdapters(opts ...FetchOption) []string {
	return defaultScanner.FetchDisplayAdapters(opts...)
}
