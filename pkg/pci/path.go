// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath returns the device directory for the identifier.
//
// The identifier is tried as a path first, then as an address under root, and last
// as an address without the domain under root. The first existing directory wins;
// if none exists, the last candidate is returned.
func ResolvePath(root, identifier string) string {
	candidates := []string{
		identifier,
		filepath.Join(root, identifier),
		filepath.Join(root, DomainPrefix+identifier),
	}

	for _, candidate := range candidates {
		if PathExists(candidate) {
			return candidate
		}
	}

	return candidates[len(candidates)-1]
}

// PathExists reports whether the path is an existing directory.
func PathExists(path string) bool {
	st, err := os.Stat(path)

	return err == nil && st.IsDir()
}

// addressFromPath strips the default domain and returns the last path segment.
func addressFromPath(path string) string {
	return filepath.Base(strings.ReplaceAll(path, DomainPrefix, ""))
}
