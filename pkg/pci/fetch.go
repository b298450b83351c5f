// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

import (
	"os"
	"path/filepath"

	"github.com/siderolabs/gen/optional"
	"github.com/siderolabs/gen/xslices"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FetchOption configures a fetch.
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	maxDevices optional.Optional[int]
}

// WithMaxDevices limits the number of device directories visited.
//
// The limit applies to visited directories, before any filtering: a fetch by class
// with a limit of N may return fewer than N devices even if more matching devices exist.
func WithMaxDevices(n int) FetchOption {
	return func(o *fetchOptions) {
		o.maxDevices = optional.Some(max(n, 0))
	}
}

// FetchAll builds the full records of the visited devices.
func (s *Scanner) FetchAll(opts ...FetchOption) []*Device {
	return collect(s, s.visit(opts), func(path string) (*Device, bool) {
		b := s.newBuilder(path)
		b.full()

		return b.device, true
	})
}

// FetchByClass builds the full records of the visited devices of the given class.
//
// Devices are first read with the class attribute only, the rest of the record is read
// for the matching devices.
func (s *Scanner) FetchByClass(class Class, opts ...FetchOption) []*Device {
	return collect(s, s.visit(opts), func(path string) (*Device, bool) {
		b := s.newBuilder(path)
		b.reserved()

		if deviceClass, ok := b.device.Class(); !ok || deviceClass != class {
			return nil, false
		}

		b.upgrade()

		return b.device, true
	})
}

// visit lists the device directories to visit in enumeration order, applying the limit.
func (s *Scanner) visit(opts []FetchOption) []string {
	var options fetchOptions

	for _, opt := range opts {
		opt(&options)
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.Debug("error scanning devices", zap.String("root", s.root), zap.Error(err))

		return nil
	}

	s.logger.Debug("found PCI devices", zap.Int("count", len(entries)))

	if limit, ok := options.maxDevices.Get(); ok && len(entries) > limit {
		entries = entries[:limit]
	}

	return xslices.Map(entries, func(entry os.DirEntry) string {
		return filepath.Join(s.root, entry.Name())
	})
}

// collect builds the value for each visited path, keeping the enumeration order.
func collect[T any](s *Scanner, paths []string, build func(path string) (T, bool)) []T {
	type result struct {
		value T
		ok    bool
	}

	results := make([]result, len(paths))

	if s.concurrency > 1 {
		var eg errgroup.Group

		eg.SetLimit(s.concurrency)

		for i, path := range paths {
			i, path := i, path

			eg.Go(func() error {
				results[i].value, results[i].ok = build(path)

				return nil
			})
		}

		eg.Wait() //nolint:errcheck
	} else {
		for i, path := range paths {
			results[i].value, results[i].ok = build(path)
		}
	}

	return xslices.Map(
		xslices.Filter(results, func(r result) bool { return r.ok }),
		func(r result) T { return r.value },
	)
}
