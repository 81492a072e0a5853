// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database carries every column of the
//     store models (items, movements, sync_runs, daily_snapshots), and the
//     declared type where a model pins one.
//   - Source: Verifies that the bucket exists and holds the configured source
//     CSV objects, and lists the other CSV objects found next to them.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/source : Runs the source check.
package integrity
