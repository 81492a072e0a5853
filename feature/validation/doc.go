// Package validation reconciles candidate keys against the inventories.
//
// Validate trims and deduplicates the input (first occurrence wins, so
// ["A","A","B"] yields two results), looks every key up in the store with one
// query and classifies the hits as primary. The remaining keys are matched
// against the secondary inventory, read through the reconciliation cache and
// reloaded with a fresh TTL on a miss. When the secondary inventory cannot be
// read the call still succeeds: those keys come back as unknown and the report
// carries a warning.
//
// # HTTP Endpoints
//
//   - GET /items/:key
//   - POST /items/search
//   - POST /validate
package validation
