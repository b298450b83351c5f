// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pci

import (
	"go.uber.org/zap"

	"github.com/siderolabs/pciinfo/pkg/pciids"
)

// Scanner reads PCI devices from a sysfs devices directory.
//
// Scanner holds no state between calls and is safe for concurrent use.
type Scanner struct {
	resolver    pciids.Resolver
	logger      *zap.Logger
	root        string
	concurrency int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithRoot sets the directory listing the devices, DevicesPath by default.
func WithRoot(root string) Option {
	return func(s *Scanner) {
		s.root = root
	}
}

// WithResolver sets the identifier database, pciids.Builtin() by default.
func WithResolver(resolver pciids.Resolver) Option {
	return func(s *Scanner) {
		s.resolver = resolver
	}
}

// WithLogger sets the logger, attribute read failures are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithConcurrency sets the number of devices built in parallel by the fetch methods.
//
// Results are returned in enumeration order regardless of the concurrency.
func WithConcurrency(n int) Option {
	return func(s *Scanner) {
		s.concurrency = n
	}
}

// NewScanner creates a Scanner.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		root:        DevicesPath,
		resolver:    pciids.Builtin(),
		logger:      zap.NewNop(),
		concurrency: 1,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Root returns the devices directory of the scanner.
func (s *Scanner) Root() string {
	return s.root
}
