// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sparsedemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
size: 6
default: -1
layout: flat
fragment:
  rowBegin: 0
  rowEnd: 6
`)
	c, err := config.Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 6, c.Size)
	require.Equal(t, -1, c.Default)
	require.Equal(t, config.LayoutFlat, c.Layout)
	require.Equal(t, 0, c.Fragment.RowBegin)
	require.Equal(t, 6, c.Fragment.RowEnd)
	require.Equal(t, config.DefaultColBegin, c.Fragment.ColBegin) // untouched keys keep defaults
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config file")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "size: 6\nformat: plain\n")
	t.Setenv("SPARSEDEMO_SIZE", "12")
	t.Setenv("SPARSEDEMO_FORMAT", "table")
	t.Setenv("SPARSEDEMO_FRAGMENT_COLEND", "4")

	c, err := config.Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 12, c.Size)
	require.Equal(t, config.FormatTable, c.Format)
	require.Equal(t, 4, c.Fragment.ColEnd)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SPARSEDEMO_SIZE", "12")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--size=20", "--row-end=3", "--degree=4"}))

	c, err := config.Load("", fs)
	require.NoError(t, err)
	require.Equal(t, 20, c.Size)
	require.Equal(t, 3, c.Fragment.RowEnd)
	require.Equal(t, 4, c.Degree)
	require.Equal(t, config.DefaultLayout, c.Layout) // unchanged flag keeps default
}

func TestValidateAggregates(t *testing.T) {
	c := config.Default()
	c.Size = -1
	c.Layout = "diagonal"
	c.Format = "json"
	c.Degree = 1
	c.Fragment = config.Fragment{RowBegin: -1, RowEnd: -1, ColBegin: 5, ColEnd: 5}

	err := c.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 7)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "layout: sideways\n")
	_, err := config.Load(path, nil)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestMarshal(t *testing.T) {
	out, err := config.Default().Marshal()
	require.NoError(t, err)
	s := string(out)
	require.Contains(t, s, "size: 10")
	require.Contains(t, s, "layout: nested")
	require.Contains(t, s, "rowBegin: 1")
	require.Contains(t, s, "colEnd: 9")
}
