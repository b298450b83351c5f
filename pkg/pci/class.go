// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/siderolabs/pciinfo/pkg/pciids"
)

// Class is a PCI device class code.
type Class uint8

// PCI device classes.
const (
	ClassUnclassified                      Class = 0x00
	ClassMassStorageController             Class = 0x01
	ClassNetworkController                 Class = 0x02
	ClassDisplayController                 Class = 0x03
	ClassMultimediaController              Class = 0x04
	ClassMemoryController                  Class = 0x05
	ClassBridge                            Class = 0x06
	ClassCommunicationController           Class = 0x07
	ClassGenericSystemPeripheral           Class = 0x08
	ClassInputDeviceController             Class = 0x09
	ClassDockingStation                    Class = 0x0a
	ClassProcessor                         Class = 0x0b
	ClassSerialBusController               Class = 0x0c
	ClassWirelessController                Class = 0x0d
	ClassIntelligentController             Class = 0x0e
	ClassSatelliteCommunicationsController Class = 0x0f
	ClassEncryptionController              Class = 0x10
	ClassSignalProcessingController        Class = 0x11
	ClassProcessingAccelerator             Class = 0x12
	ClassNonEssentialInstrumentation       Class = 0x13
	ClassCoprocessor                       Class = 0x40
	ClassUnassigned                        Class = 0xff
)

// Classes lists all known classes in code order.
var Classes = []Class{
	ClassUnclassified,
	ClassMassStorageController,
	ClassNetworkController,
	ClassDisplayController,
	ClassMultimediaController,
	ClassMemoryController,
	ClassBridge,
	ClassCommunicationController,
	ClassGenericSystemPeripheral,
	ClassInputDeviceController,
	ClassDockingStation,
	ClassProcessor,
	ClassSerialBusController,
	ClassWirelessController,
	ClassIntelligentController,
	ClassSatelliteCommunicationsController,
	ClassEncryptionController,
	ClassSignalProcessingController,
	ClassProcessingAccelerator,
	ClassNonEssentialInstrumentation,
	ClassCoprocessor,
	ClassUnassigned,
}

// String returns the class name from the built-in identifier database.
func (c Class) String() string {
	return c.Name(pciids.Builtin())
}

// Name returns the class name as known to the resolver.
func (c Class) Name(resolver pciids.Resolver) string {
	if class, ok := resolver.Class(uint8(c)); ok {
		return class.Name
	}

	return fmt.Sprintf("Class %02x", uint8(c))
}

// Slug returns the class name in the lowercase dashed form, e.g. "display-controller".
func (c Class) Slug() string {
	return slugify(c.String())
}

// ParseClass parses a class from its code (0x03, 03) or its name
// ("Display controller", "display-controller").
func ParseClass(s string) (Class, error) {
	s = strings.TrimSpace(s)

	if code, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 8); err == nil {
		return Class(code), nil
	}

	slug := slugify(s)

	for _, class := range Classes {
		if class.Slug() == slug {
			return class, nil
		}
	}

	return 0, fmt.Errorf("unknown pci device class %q", s)
}

func slugify(s string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	}), "-")
}
