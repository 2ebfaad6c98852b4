package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := rootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--addr", ":9000", "--terms", "t.txt"}))

	addr, err := cmd.Flags().GetString("addr")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	terms, err := cmd.Flags().GetString("terms")
	require.NoError(t, err)
	assert.Equal(t, "t.txt", terms)

	reports, err := cmd.Flags().GetString("reports")
	require.NoError(t, err)
	assert.Equal(t, "error_reports.txt", reports)
}
