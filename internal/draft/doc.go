// Package draft provides the core value types for proposal composition.
//
// This package contains type definitions and pure transitions only. All
// other internal packages import draft; draft imports nothing internal.
// This keeps it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Money is int64 minor units - NO float types anywhere
//   - Draft is an immutable value; every transition returns a new Draft
//   - Section identity is the typed SectionID, never ad-hoc strings
//   - All JSON tags use snake_case
package draft
