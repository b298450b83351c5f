// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

import "strings"

// FetchDisplayAdapters returns "vendor model" strings of the enabled display
// controllers, e.g. "NVIDIA GeForce GTX 1070".
func (s *Scanner) FetchDisplayAdapters(opts ...FetchOption) []string {
	return collect(s, s.visit(opts), func(path string) (string, bool) {
		b := s.newBuilder(path)
		b.reserved()

		if class, ok := b.device.Class(); !ok || class != ClassDisplayController {
			return "", false
		}

		b.setEnabled()

		if !b.device.enabled {
			return "", false
		}

		b.setVendorID()
		b.setDeviceID()
		b.setDeviceName()
		b.setVendorName()

		return TrimVendorSuffix(b.device.vendorName) + " " + MarketingName(b.device.deviceName), true
	})
}

// MarketingName extracts the text between the first '[' and the last ']' of a device
// name, e.g. "GP104 [GeForce GTX 1070]" becomes "GeForce GTX 1070".
//
// Names without brackets are returned unchanged.
func MarketingName(name string) string {
	start := strings.Index(name, "[")
	end := strings.LastIndex(name, "]")

	if start < 0 || end <= start {
		return name
	}

	return name[start+1 : end]
}

// TrimVendorSuffix removes the trailing " Corporation" from a vendor name.
func TrimVendorSuffix(name string) string {
	return strings.TrimSuffix(name, " Corporation")
}
