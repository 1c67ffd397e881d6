package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_OK(t *testing.T) {
	draftPath := writeDraftFile(t, testDraftYAML)

	stdout, _, err := executeCommand(t, "validate", draftPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK")
}

func TestValidateCommand_InstallmentWarningIsSoft(t *testing.T) {
	draftPath := writeDraftFile(t, `document_date: "2026-01-15"
client:
  name: Acme
firm:
  name: Firm
services:
  - service_id: incorporation
    name: Entity Incorporation
    selected: true
    fee_type: one_time
    suggested_fee: 12000
pricing:
  mode: per_service
  installments:
    - percentage: 50
      description: upon signing
    - percentage: 30
      description: upon delivery
`)

	stdout, _, err := executeCommand(t, "validate", draftPath)
	require.NoError(t, err, "schedule mismatch must warn, not fail")
	assert.Contains(t, stdout, "OK")
	assert.Contains(t, stdout, "warning: installment percentages total 80%")
}

func TestValidateCommand_InvalidDraftFails(t *testing.T) {
	draftPath := writeDraftFile(t, `document_date: "2026-01-15"
client:
  name: Acme
firm:
  name: Firm
services:
  - service_id: x
    name: X
    fee_type: hourly
pricing:
  mode: per_service
`)

	stdout, _, err := executeCommand(t, "validate", draftPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "INVALID")
	assert.Contains(t, stdout, "fee_type")
}

func TestValidateCommand_JSON(t *testing.T) {
	draftPath := writeDraftFile(t, testDraftYAML)

	stdout, _, err := executeCommand(t, "validate", draftPath, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
}
