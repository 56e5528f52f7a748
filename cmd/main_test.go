package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesDataset(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data", "out.json")
	code := run([]string{
		"--num_buoys", "2", "--readings_per_buoy", "3",
		"--dataset_type", "temperature", "--output_file", out, "--seed", "5",
	})
	require.Equal(t, 0, code)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc["buoys"], 2)
}

func TestRunRejectsUnknownType(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	code := run([]string{"--dataset_type", "bogus", "--output_file", out})
	assert.Equal(t, 1, code)
	assert.NoFileExists(t, out)
}

func TestRunRequiresOutputFile(t *testing.T) {
	assert.Equal(t, 1, run([]string{"--dataset_type", "reef"}))
}

func TestRunBadFlag(t *testing.T) {
	assert.Equal(t, 2, run([]string{"--num_buoys", "many"}))
}
