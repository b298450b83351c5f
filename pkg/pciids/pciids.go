// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package pciids provides PCI identifier databases which map numeric class, vendor,
// device and subsystem codes to human-readable names.
package pciids

// Resolver looks up PCI identifiers.
//
// Implementations are read-only and safe for concurrent use.
type Resolver interface {
	Class(id uint8) (Class, bool)
	Vendor(id uint16) (Vendor, bool)
	Device(vendor, device uint16) (Device, bool)
}

// Class is a PCI device class with its subclasses.
type Class struct {
	Name       string
	Subclasses []Subclass
	ID         uint8
}

// Subclass is a PCI device subclass.
type Subclass struct {
	Name string
	ID   uint8
}

// Vendor is a PCI vendor.
type Vendor struct {
	Name string
	ID   uint16
}

// Device is a PCI device model with the subsystems (boards) built on top of it.
type Device struct {
	Name       string
	Subsystems []Subsystem
	Vendor     uint16
	ID         uint16
}

// Subsystem identifies a specific board variant of a device.
type Subsystem struct {
	Name   string
	Vendor uint16
	Device uint16
}

// Subclass returns the subclass with the given id.
func (c Class) Subclass(id uint8) (Subclass, bool) {
	for _, subclass := range c.Subclasses {
		if subclass.ID == id {
			return subclass, true
		}
	}

	return Subclass{}, false
}

// Subsystem returns the first subsystem matching the subsystem vendor and device ids.
func (d Device) Subsystem(vendor, device uint16) (Subsystem, bool) {
	for _, subsystem := range d.Subsystems {
		if subsystem.Vendor == vendor && subsystem.Device == device {
			return subsystem, true
		}
	}

	return Subsystem{}, false
}
