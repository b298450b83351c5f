// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// sysfs attribute file names.
const (
	attrClass             = "class"
	attrVendor            = "vendor"
	attrDevice            = "device"
	attrRevision          = "revision"
	attrNUMANode          = "numa_node"
	attrEnable            = "enable"
	attrD3ColdAllowed     = "d3cold_allowed"
	attrSubsystemVendor   = "subsystem_vendor"
	attrSubsystemDevice   = "subsystem_device"
	classIDHexLength      = 4
	disabledAttributeText = "0\n"
)

// readAttribute reads the attribute and strips the hex prefix and the trailing newlines.
func readAttribute(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	s := strings.TrimRight(string(contents), "\n")

	for strings.HasPrefix(s, "0x") {
		s = s[2:]
	}

	return s, nil
}

// readHex decodes a hex attribute like "0x8086\n" into bytes.
func readHex(path string) ([]byte, error) {
	s, err := readAttribute(path)
	if err != nil {
		return nil, err
	}

	return decodeHex(s)
}

// readClassID decodes the class and subclass bytes of the class attribute, the
// programming interface byte is dropped.
func readClassID(path string) ([]byte, error) {
	s, err := readAttribute(path)
	if err != nil {
		return nil, err
	}

	if len(s) < classIDHexLength {
		return nil, fmt.Errorf("class %q is too short", s)
	}

	return decodeHex(s[:classIDHexLength])
}

func decodeHex(s string) ([]byte, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", s, err)
	}

	return decoded, nil
}

// readInt parses a signed decimal attribute.
func readInt(path string) (int, error) {
	s, err := readAttribute(path)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(s)
}

// readFlag reads a boolean attribute: only the exact "0\n" contents are false.
func readFlag(path string) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	return string(contents) != disabledAttributeText, nil
}
