// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

import (
	"encoding/binary"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/siderolabs/gen/optional"
	"go.uber.org/zap"

	"github.com/siderolabs/pciinfo/pkg/pciids"
)

// New builds the full device record for the identifier.
//
// New never fails: if the identifier doesn't resolve to a device directory, the record
// only carries the path and the address.
func (s *Scanner) New(identifier string) *Device {
	b := s.newBuilder(ResolvePath(s.root, identifier))
	b.full()

	return b.device
}

// Lookup is like New, but fails with ErrDeviceNotFound if the device directory doesn't exist.
func (s *Scanner) Lookup(identifier string) (*Device, error) {
	path := ResolvePath(s.root, identifier)
	if !PathExists(path) {
		return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, identifier)
	}

	b := s.newBuilder(path)
	b.full()

	return b.device, nil
}

// Diagnose builds the full device record and returns all attribute read failures.
//
// The returned error is a *multierror.Error, nil if every attribute was read.
func (s *Scanner) Diagnose(identifier string) (*Device, error) {
	b := s.newBuilder(ResolvePath(s.root, identifier))
	b.full()

	return b.device, b.errs.ErrorOrNil()
}

// builder populates a single device record.
type builder struct {
	scanner *Scanner
	device  *Device
	logger  *zap.Logger
	errs    *multierror.Error
}

func (s *Scanner) newBuilder(path string) *builder {
	return &builder{
		scanner: s,
		device:  &Device{path: path},
		logger:  s.logger.With(zap.String("path", path)),
	}
}

// full populates every field.
func (b *builder) full() {
	b.setAddress()
	b.setClassID()
	b.setVendorID()
	b.setDeviceID()
	b.setNUMANode()
	b.setEnabled()
	b.setD3ColdAllowed()
	b.setRevision()
	b.setSubsystemDeviceID()
	b.setSubsystemVendorID()
	b.setClassName()
	b.setDeviceName()
	b.setVendorName()
	b.setSubsystemName()
	b.setSubclassName()
}

// reserved populates only the fields needed to filter by class.
func (b *builder) reserved() {
	b.setClassID()
	b.setClassName()
}

// upgrade populates the fields skipped by reserved.
func (b *builder) upgrade() {
	b.setAddress()
	b.setVendorID()
	b.setDeviceID()
	b.setNUMANode()
	b.setEnabled()
	b.setD3ColdAllowed()
	b.setRevision()
	b.setSubsystemDeviceID()
	b.setSubsystemVendorID()
	b.setDeviceName()
	b.setVendorName()
	b.setSubsystemName()
	b.setSubclassName()
}

// load reads the attribute and stores the value, on failure the field is left untouched.
func load[T any](b *builder, attribute string, read func(string) (T, error), set func(T)) {
	value, err := read(filepath.Join(b.device.path, attribute))
	if err != nil {
		b.logger.Debug("failed to read attribute", zap.String("attribute", attribute), zap.Error(err))
		b.errs = multierror.Append(b.errs, fmt.Errorf("error reading %s: %w", attribute, err))

		return
	}

	set(value)
}

func (b *builder) setAddress() {
	b.device.address = addressFromPath(b.device.path)
}

func (b *builder) setClassID() {
	load(b, attrClass, readClassID, func(v []byte) { b.device.classID = v })
}

func (b *builder) setVendorID() {
	load(b, attrVendor, readHex, func(v []byte) { b.device.vendorID = v })
}

func (b *builder) setDeviceID() {
	load(b, attrDevice, readHex, func(v []byte) { b.device.deviceID = v })
}

func (b *builder) setRevision() {
	load(b, attrRevision, readHex, func(v []byte) { b.device.revision = v })
}

func (b *builder) setSubsystemVendorID() {
	load(b, attrSubsystemVendor, readHex, func(v []byte) { b.device.subsystemVendorID = v })
}

func (b *builder) setSubsystemDeviceID() {
	load(b, attrSubsystemDevice, readHex, func(v []byte) { b.device.subsystemDeviceID = v })
}

func (b *builder) setNUMANode() {
	load(b, attrNUMANode, readInt, func(v int) { b.device.numaNode = optional.Some(v) })
}

func (b *builder) setEnabled() {
	load(b, attrEnable, readFlag, func(v bool) { b.device.enabled = v })
}

func (b *builder) setD3ColdAllowed() {
	load(b, attrD3ColdAllowed, readFlag, func(v bool) { b.device.d3coldAllowed = v })
}

func (b *builder) setClassName() {
	if len(b.device.classID) == 0 {
		return
	}

	if class, ok := b.scanner.resolver.Class(b.device.classID[0]); ok {
		b.device.className = class.Name
	}
}

func (b *builder) setSubclassName() {
	if len(b.device.classID) < 2 {
		return
	}

	class, ok := b.scanner.resolver.Class(b.device.classID[0])
	if !ok {
		return
	}

	if subclass, ok := class.Subclass(b.device.classID[1]); ok {
		b.device.subclassName = subclass.Name
	}
}

func (b *builder) setVendorName() {
	vendorID, ok := be16(b.device.vendorID)
	if !ok {
		return
	}

	if vendor, ok := b.scanner.resolver.Vendor(vendorID); ok {
		b.device.vendorName = vendor.Name
	}
}

func (b *builder) setDeviceName() {
	if device, ok := b.lookupDevice(); ok {
		b.device.deviceName = device.Name
	}
}

func (b *builder) setSubsystemName() {
	subsystemVendorID, ok := be16(b.device.subsystemVendorID)
	if !ok {
		return
	}

	subsystemDeviceID, ok := be16(b.device.subsystemDeviceID)
	if !ok {
		return
	}

	device, ok := b.lookupDevice()
	if !ok {
		return
	}

	if subsystem, ok := device.Subsystem(subsystemVendorID, subsystemDeviceID); ok {
		b.device.subsystemName = subsystem.Name
	}
}

func (b *builder) lookupDevice() (pciids.Device, bool) {
	vendorID, ok := be16(b.device.vendorID)
	if !ok {
		return pciids.Device{}, false
	}

	deviceID, ok := be16(b.device.deviceID)
	if !ok {
		return pciids.Device{}, false
	}

	return b.scanner.resolver.Device(vendorID, deviceID)
}

// be16 converts a 2-byte big-endian id.
func be16(id []byte) (uint16, bool) {
	if len(id) != 2 {
		return 0, false
	}

	return binary.BigEndian.Uint16(id), true
}
