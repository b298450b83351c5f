// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/pciinfo/pkg/pci"
)

func writeAttribute(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "attribute")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestReadHex(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name     string
		contents string

		expected    []byte
		expectError bool
	}{
		{
			name:     "byte",
			contents: "0x06\n",
			expected: []byte{0x06},
		},
		{
			name:     "word",
			contents: "0x8086\n",
			expected: []byte{0x80, 0x86},
		},
		{
			name:     "no prefix no newline",
			contents: "10de",
			expected: []byte{0x10, 0xde},
		},
		{
			name:        "odd length",
			contents:    "0x123\n",
			expectError: true,
		},
		{
			name:        "garbage",
			contents:    "zz\n",
			expectError: true,
		},
	} {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			value, err := pci.ReadHex(writeAttribute(t, test.contents))
			if test.expectError {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, value)
		})
	}

	_, err := pci.ReadHex(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadClassID(t *testing.T) {
	t.Parallel()

	value, err := pci.ReadClassID(writeAttribute(t, "0x030000\n"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x00}, value)

	value, err = pci.ReadClassID(writeAttribute(t, "0x0c0330\n"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0c, 0x03}, value)

	_, err = pci.ReadClassID(writeAttribute(t, "0x03\n"))
	assert.Error(t, err)
}

func TestReadInt(t *testing.T) {
	t.Parallel()

	value, err := pci.ReadInt(writeAttribute(t, "1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	value, err = pci.ReadInt(writeAttribute(t, "-1\n"))
	require.NoError(t, err)
	assert.Equal(t, -1, value)

	_, err = pci.ReadInt(writeAttribute(t, "node\n"))
	assert.Error(t, err)
}

func TestReadFlag(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		contents string
		expected bool
	}{
		{contents: "0\n", expected: false},
		{contents: "1\n", expected: true},
		{contents: "0", expected: true},
		{contents: "garbage\n", expected: true},
	} {
		value, err := pci.ReadFlag(writeAttribute(t, test.contents))
		require.NoError(t, err)
		assert.Equal(t, test.expected, value, "contents %q", test.contents)
	}

	_, err := pci.ReadFlag(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
