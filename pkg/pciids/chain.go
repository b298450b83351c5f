// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pciids

// Chain returns a resolver which queries resolvers in order, the first hit wins.
func Chain(resolvers ...Resolver) Resolver {
	return chain(resolvers)
}

type chain []Resolver

// Class implements Resolver.
func (c chain) Class(id uint8) (Class, bool) {
	for _, r := range c {
		if class, ok := r.Class(id); ok {
			return class, true
		}
	}

	return Class{}, false
}

// Vendor implements Resolver.
func (c chain) Vendor(id uint16) (Vendor, bool) {
	for _, r := range c {
		if vendor, ok := r.Vendor(id); ok {
			return vendor, true
		}
	}

	return Vendor{}, false
}

// Device implements Resolver.
func (c chain) Device(vendor, device uint16) (Device, bool) {
	for _, r := range c {
		if d, ok := r.Device(vendor, device); ok {
			return d, true
		}
	}

	return Device{}, false
}
