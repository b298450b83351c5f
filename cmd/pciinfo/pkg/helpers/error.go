// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package helpers provides rendering helpers shared by the pciinfo commands.
package helpers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/hashicorp/go-multierror"
)

// AppendErrors adds errors to the multierr wrapper.
func AppendErrors(err error, errs ...error) error {
	res := multierror.Append(err, errs...)

	res.ErrorFormat = func(errs []error) string {
		lines := make([]string, 0, len(errs))

		for _, err := range errs {
			lines = append(lines, fmt.Sprintf(" %s", err.Error()))
		}

		count := pluralize.NewClient().Pluralize("error", len(lines), true)

		return color.RedString(fmt.Sprintf("%s occurred:\n%s", count, strings.Join(lines, "\n")))
	}

	return res
}

// FormatDiagnostics renders the attribute read failures of a device.
func FormatDiagnostics(address string, err error) string {
	if err == nil {
		return color.GreenString("%s: all attributes read", address)
	}

	var merr *multierror.Error

	if !errors.As(err, &merr) {
		return fmt.Sprintf("%s: %s", address, AppendErrors(nil, err))
	}

	return fmt.Sprintf("%s: %s", address, AppendErrors(nil, merr.Errors...))
}

// Count renders "N <noun>" with the noun pluralized.
func Count(noun string, n int) string {
	return pluralize.NewClient().Pluralize(noun, n, true)
}
