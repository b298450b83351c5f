// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

var (
	ReadHex         = readHex
	ReadClassID     = readClassID
	ReadInt         = readInt
	ReadFlag        = readFlag
	AddressFromPath = addressFromPath
)

// NewReserved builds a reserved record, as the fetch by class does before filtering.
func (s *Scanner) NewReserved(identifier string) *Device {
	b := s.newBuilder(ResolvePath(s.root, identifier))
	b.reserved()

	return b.device
}

// Upgrade completes a reserved record.
func (s *Scanner) Upgrade(d *Device) *Device {
	b := s.newBuilder(d.path)
	b.device = d
	b.upgrade()

	return d
}
