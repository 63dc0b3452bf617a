// SPDX-License-Identifier: MIT

package config

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Validate reports every violation at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Size < 0 {
		result = multierror.Append(result, errors.Wrapf(ErrInvalid, "size %d must be >= 0", c.Size))
	}
	if c.Layout != LayoutNested && c.Layout != LayoutFlat {
		result = multierror.Append(result, errors.Wrapf(ErrInvalid, "layout %q must be %q or %q", c.Layout, LayoutNested, LayoutFlat))
	}
	if c.Format != FormatPlain && c.Format != FormatTable {
		result = multierror.Append(result, errors.Wrapf(ErrInvalid, "format %q must be %q or %q", c.Format, FormatPlain, FormatTable))
	}
	if c.Degree < 2 {
		result = multierror.Append(result, errors.Wrapf(ErrInvalid, "degree %d must be >= 2", c.Degree))
	}

	f := c.Fragment
	if f.RowBegin < 0 || f.ColBegin < 0 {
		result = multierror.Append(result, errors.Wrapf(ErrInvalid, "fragment begin (%d,%d) must be non-negative", f.RowBegin, f.ColBegin))
	}
	if f.RowBegin >= f.RowEnd {
		result = multierror.Append(result, errors.Wrapf(ErrInvalid, "fragment rows [%d,%d) are empty", f.RowBegin, f.RowEnd))
	}
	if f.ColBegin >= f.ColEnd {
		result = multierror.Append(result, errors.Wrapf(ErrInvalid, "fragment cols [%d,%d) are empty", f.ColBegin, f.ColEnd))
	}

	return result.ErrorOrNil()
}
