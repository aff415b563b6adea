//go:build !integration

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCmd_Metadata(t *testing.T) {
	assert.Equal(t, "stats", statsCmd.Use)
	assert.NotEmpty(t, statsCmd.Short)

	for _, name := range []string{"geometry", "tabular"} {
		require.NotNil(t, statsCmd.Flags().Lookup(name), "stats should have --%s flag", name)
	}
}

func TestStatsCmd_EndToEnd(t *testing.T) {
	geometry, tabular := writeFixtures(t)
	cfg = testConfig(geometry, tabular, t.TempDir())

	statsCmd.SetContext(context.Background())
	defer statsCmd.SetContext(context.TODO())

	require.NoError(t, statsCmd.RunE(statsCmd, nil))
}

func TestStatsCmd_BadGeometryPath(t *testing.T) {
	_, tabular := writeFixtures(t)
	cfg = testConfig(filepath.Join(t.TempDir(), "nope.shp"), tabular, t.TempDir())

	statsCmd.SetContext(context.Background())
	defer statsCmd.SetContext(context.TODO())

	require.Error(t, statsCmd.RunE(statsCmd, nil))
}
