// Package store provides SQLite-backed durable storage for proposal
// editing sessions.
//
// Two surfaces:
//   - Override log: an append-only, ordered record of every override
//     set and restore, kept for audit and versioning. Ordering uses
//     the log's own sequence, never wall-clock comparisons.
//   - Snapshots: opaque draft snapshots (pricing config, service
//     selections, overrides, assembled markup) keyed by the draft
//     fingerprint, round-trippable through the codec.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
