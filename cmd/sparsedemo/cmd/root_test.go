// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd(&buf)
	root.SetArgs(append([]string{"--color", colorModeNever}, args...))
	err := root.Execute()

	return buf.String(), err
}

func TestRootRunsDemo(t *testing.T) {
	out, err := execute(t, "--size", "6", "--row-begin", "0", "--row-end", "3", "--col-begin", "1", "--col-end", "6")
	require.NoError(t, err)
	require.Contains(t, out, "Matrix fragment:\n0 0 0 0 5\n1 0 0 4 0\n0 2 3 0 0\n")
	require.Contains(t, out, "Matrix size: 10\n")
}

func TestRootPrintConfig(t *testing.T) {
	out, err := execute(t, "--print-config", "--layout", config.LayoutFlat)
	require.NoError(t, err)
	require.Contains(t, out, "layout: flat\n")
	require.NotContains(t, out, "Matrix fragment:")
}

func TestRootRejectsBadInput(t *testing.T) {
	_, err := execute(t, "--layout", "dense")
	require.ErrorIs(t, err, config.ErrInvalid)

	root := newRootCmd(&bytes.Buffer{})
	root.SetArgs([]string{"--color", "sometimes"})
	require.ErrorContains(t, root.Execute(), "invalid color mode")

	_, err = execute(t, "extra")
	require.Error(t, err)
}
