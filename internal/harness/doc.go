// Package harness provides scenario-driven conformance testing for
// proposal assembly.
//
// The harness loads a draft description from YAML, applies text
// overrides, assembles the document, and validates the rendered
// sections against assertions and golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	document_date: "2026-01-15"
//	client:
//	  name: Acme Holdings LLC
//	  contact_name: Jordan Reyes
//	firm:
//	  name: Whitfield & Associates LLP
//	  city: Austin
//	services:
//	  - service_id: incorporation
//	    name: Entity Incorporation
//	    selected: true
//	    fee_type: one_time
//	    suggested_fee: 12000
//	pricing:
//	  mode: per_service
//	overrides:
//	  - section: background
//	    text: "Replacement background paragraph."
//	assertions:
//	  - type: section_contains
//	    section: pricing-lines
//	    substring: "$12,000.00"
//
// Fees in scenarios are whole currency units.
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - section_contains: Verifies a section is present and contains a substring
//   - section_absent: Verifies a section was omitted from the document
//   - section_order: Verifies sections appear in the given relative order
//   - warning_contains: Verifies an assembly warning contains a substring
//
// # Deterministic Execution
//
// Scenarios execute with an explicit document date, a fixed draft token,
// and a stepped override clock (testutil.SteppedClock), so the rendered
// markup is byte-identical across runs and safe for golden comparison.
//
// # Usage
//
// Load and run a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/per_service.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//
// Or compare against a golden file inside a test:
//
//	harness.RunWithGolden(t, scenario)
package harness
