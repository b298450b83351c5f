// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pciids

import (
	"math"
	"sync"

	"github.com/siderolabs/go-pcidb/pkg/pcidb"
)

// Builtin returns the resolver backed by the identifier database compiled into the binary.
//
// The built-in database carries classes, subclasses, vendors and products, but no subsystems.
func Builtin() Resolver {
	return builtin{}
}

type builtin struct{}

// builtinClasses is the class table expanded with the subclass lists, go-pcidb only
// supports point lookups.
var builtinClasses = sync.OnceValue(func() map[uint8]Class {
	classes := map[uint8]Class{}

	for id := 0; id < math.MaxUint8+1; id++ {
		classID := pcidb.Class(id)

		name, ok := pcidb.LookupClass(classID)
		if !ok {
			continue
		}

		class := Class{
			ID:   uint8(id),
			Name: name,
		}

		for sub := 0; sub < math.MaxUint8+1; sub++ {
			if subclassName, ok := pcidb.LookupSubclass(classID, pcidb.Subclass(sub)); ok {
				class.Subclasses = append(class.Subclasses, Subclass{ID: uint8(sub), Name: subclassName})
			}
		}

		classes[class.ID] = class
	}

	return classes
})

// Class implements Resolver.
func (builtin) Class(id uint8) (Class, bool) {
	class, ok := builtinClasses()[id]

	return class, ok
}

// Vendor implements Resolver.
func (builtin) Vendor(id uint16) (Vendor, bool) {
	name, ok := pcidb.LookupVendor(pcidb.Vendor(id))
	if !ok {
		return Vendor{}, false
	}

	return Vendor{ID: id, Name: name}, true
}

// Device implements Resolver.
func (builtin) Device(vendor, device uint16) (Device, bool) {
	name, ok := pcidb.LookupProduct(pcidb.Vendor(vendor), pcidb.Product(device))
	if !ok {
		return Device{}, false
	}

	return Device{Vendor: vendor, ID: device, Name: name}, true
}
