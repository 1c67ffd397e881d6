package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCommand_MissingDatabase(t *testing.T) {
	_, _, err := executeCommand(t, "history", "draft-1", "--db", filepath.Join(t.TempDir(), "nope.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "database not found")
}

func TestHistoryCommand_EmptyLog(t *testing.T) {
	draftPath := writeDraftFile(t, testDraftYAML)
	dbPath := filepath.Join(t.TempDir(), "proposals.db")

	_, _, err := executeCommand(t, "assemble", draftPath, "--db", dbPath)
	require.NoError(t, err)

	// Another token shares the database but has no history.
	stdout, _, err := executeCommand(t, "history", "draft-other", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No override history for draft-other.")
}

func TestHistoryCommand_JSON(t *testing.T) {
	draftPath := writeDraftFile(t, testDraftYAML)
	dbPath := filepath.Join(t.TempDir(), "proposals.db")

	_, _, err := executeCommand(t, "assemble", draftPath, "--db", dbPath)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "history", "draft-cli-1", "--db", dbPath, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	entries, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)
	entry, ok := entries[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "background", entry["section_id"])
	assert.Equal(t, "set", entry["op"])
}
