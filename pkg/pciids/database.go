// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pciids

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// SystemPaths lists the locations of the pci.ids database shipped by distributions, in lookup order.
var SystemPaths = []string{
	"/usr/share/hwdata/pci.ids",
	"/usr/share/misc/pci.ids",
	"/usr/share/pci.ids",
}

// Database is a parsed pci.ids file.
type Database struct {
	vendors map[uint16]Vendor
	devices map[uint32]*Device
	classes map[uint8]*Class
}

// LoadSystem loads the first pci.ids file found in SystemPaths.
func LoadSystem() (*Database, error) {
	for _, path := range SystemPaths {
		db, err := LoadFile(path)
		if err == nil {
			return db, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("pci.ids database not found: %w", fs.ErrNotExist)
}

// LoadFile loads the pci.ids database from the given path.
func LoadFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close() //nolint:errcheck

	db, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}

	return db, nil
}

// Parse reads the pci.ids text format.
//
// Lines which can't be parsed are skipped, only read errors are returned.
//
//nolint:gocyclo
func Parse(r io.Reader) (*Database, error) {
	db := &Database{
		vendors: map[uint16]Vendor{},
		devices: map[uint32]*Device{},
		classes: map[uint8]*Class{},
	}

	var (
		vendor     uint16
		haveVendor bool
		device     *Device
		class      *Class
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \r")

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "C "):
			id, name, ok := splitEntry(line[2:], 8)
			if !ok {
				class = nil

				continue
			}

			class = &Class{ID: uint8(id), Name: name}
			db.classes[class.ID] = class
			haveVendor, device = false, nil
		case strings.HasPrefix(line, "\t\t"):
			if class != nil {
				// programming interfaces are not tracked
				continue
			}

			if device == nil {
				continue
			}

			ids, name, ok := strings.Cut(strings.TrimPrefix(line, "\t\t"), "  ")
			if !ok {
				continue
			}

			subvendorText, subdeviceText, ok := strings.Cut(ids, " ")
			if !ok {
				continue
			}

			subvendor, err := strconv.ParseUint(subvendorText, 16, 16)
			if err != nil {
				continue
			}

			subdevice, err := strconv.ParseUint(subdeviceText, 16, 16)
			if err != nil {
				continue
			}

			device.Subsystems = append(device.Subsystems, Subsystem{
				Vendor: uint16(subvendor),
				Device: uint16(subdevice),
				Name:   strings.TrimSpace(name),
			})
		case strings.HasPrefix(line, "\t"):
			if class != nil {
				id, name, ok := splitEntry(line[1:], 8)
				if ok {
					class.Subclasses = append(class.Subclasses, Subclass{ID: uint8(id), Name: name})
				}

				continue
			}

			if !haveVendor {
				continue
			}

			id, name, ok := splitEntry(line[1:], 16)
			if !ok {
				device = nil

				continue
			}

			device = &Device{Vendor: vendor, ID: uint16(id), Name: name}
			db.devices[deviceKey(vendor, device.ID)] = device
		default:
			// vendor lines and unknown top-level sections both end the previous block
			class, device = nil, nil

			id, name, ok := splitEntry(line, 16)
			if !ok {
				haveVendor = false

				continue
			}

			vendor, haveVendor = uint16(id), true
			db.vendors[vendor] = Vendor{ID: vendor, Name: name}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return db, nil
}

// splitEntry splits "<hex id>  <name>".
func splitEntry(line string, bitSize int) (uint64, string, bool) {
	idText, name, ok := strings.Cut(line, " ")
	if !ok {
		return 0, "", false
	}

	id, err := strconv.ParseUint(idText, 16, bitSize)
	if err != nil {
		return 0, "", false
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, "", false
	}

	return id, name, true
}

func deviceKey(vendor, device uint16) uint32 {
	return uint32(vendor)<<16 | uint32(device)
}

// Class implements Resolver.
func (db *Database) Class(id uint8) (Class, bool) {
	class, ok := db.classes[id]
	if !ok {
		return Class{}, false
	}

	return *class, true
}

// Vendor implements Resolver.
func (db *Database) Vendor(id uint16) (Vendor, bool) {
	vendor, ok := db.vendors[id]

	return vendor, ok
}

// Device implements Resolver.
func (db *Database) Device(vendor, device uint16) (Device, bool) {
	d, ok := db.devices[deviceKey(vendor, device)]
	if !ok {
		return Device{}, false
	}

	return *d, true
}

// Len returns the number of vendors, devices and classes in the database.
func (db *Database) Len() (vendors, devices, classes int) {
	return len(db.vendors), len(db.devices), len(db.classes)
}
