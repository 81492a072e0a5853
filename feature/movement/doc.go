// Package movement runs explicit operations on items: ship, transfer, status
// updates and removal.
//
// Each key is processed in its own transaction: the item row is locked, the
// preconditions are checked, the item is updated and one movement per changed
// field is appended to the ledger. A precondition failure is reported for that
// key only, as a PreconditionError in the BatchResult, and the remaining keys
// still run. Committed movements are published after the transaction ends.
//
// State rules:
//
//	in_stock -> shipped      (shipping twice fails with ErrAlreadyShipped)
//	in_stock -> in_stock     (transfer changes the location only)
//	in_stock|shipped -> grade/lock status edits
//	any -> removed           (removing twice fails with ErrItemRemoved)
//
// # HTTP Endpoints
//
//   - POST /movements/ship
//   - POST /movements/transfer
//   - POST /movements/status
//   - POST /movements/remove
package movement
