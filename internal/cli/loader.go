package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lexdraft/lexdraft/internal/harness"
)

// DraftFile is the on-disk draft description the CLI consumes. It is
// the scenario format without the test-only fields: no assertions, no
// restores.
type DraftFile struct {
	DocumentDate string                 `yaml:"document_date"`
	Token        string                 `yaml:"token,omitempty"`
	Client       harness.ClientSpec     `yaml:"client"`
	Firm         harness.FirmSpec       `yaml:"firm"`
	Services     []harness.ServiceSpec  `yaml:"services"`
	Pricing      harness.PricingSpec    `yaml:"pricing"`
	Overrides    []harness.OverrideSpec `yaml:"overrides,omitempty"`
}

// LoadDraftFile reads and validates a draft YAML file.
// Unknown fields are rejected so typos surface immediately.
func LoadDraftFile(path string) (*DraftFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}

	var df DraftFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&df); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := df.toScenario(path).ValidateDraft(); err != nil {
		return nil, fmt.Errorf("invalid draft: %w", err)
	}
	return &df, nil
}

// toScenario adapts the draft file to the harness scenario type, which
// owns draft construction and validation.
func (df *DraftFile) toScenario(path string) *harness.Scenario {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &harness.Scenario{
		Name:         name,
		Description:  "draft file " + path,
		DocumentDate: df.DocumentDate,
		Token:        df.Token,
		Client:       df.Client,
		Firm:         df.Firm,
		Services:     df.Services,
		Pricing:      df.Pricing,
		Overrides:    df.Overrides,
	}
}
