package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/vitalsync/internal/sync"
	"github.com/vitalsync/vitalsync/pkg/errors"
)

func sampleSummary() *sync.Summary {
	return &sync.Summary{
		Synced: 1,
		Failed: 1,
		Days: []sync.DayResult{
			{Day: "2025-03-14", Status: sync.StatusCreated},
			{Day: "2025-03-13", Status: sync.StatusFailed, Error: "db write rejected"},
		},
	}
}

func TestPrintSummaryText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, sampleSummary(), "text"))

	out := buf.String()
	assert.Contains(t, out, "Synced: 1 days")
	assert.Contains(t, out, "Errors: 1 days")
	assert.Contains(t, out, "2025-03-14: created")
	assert.Contains(t, out, "2025-03-13: failed (db write rejected)")
}

func TestPrintSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, sampleSummary(), "json"))

	var decoded sync.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Synced)
	require.Len(t, decoded.Days, 2)
	assert.Equal(t, sync.StatusFailed, decoded.Days[1].Status)
}

func TestPrintSummaryYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, sampleSummary(), "yaml"))

	var decoded sync.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Failed)
}

func TestPrintSummaryUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := printSummary(&buf, sampleSummary(), "xml")

	var cfgErr *errors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSyncCommandRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"sync"})
	require.NoError(t, err)
	assert.Equal(t, "sync", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("days"))
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
}

func TestRootPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "output", "verbose", "quiet"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}
