// Package ledger exposes the append-only movement ledger.
//
// Append is the only way a movement enters the ledger outside a sync batch; it
// runs inside the caller's transaction so the movement commits together with
// the item change it records. Reads are HistoryFor (one item, newest first)
// and Query (filters on key, type, location and a time range, paginated).
//
// # HTTP Endpoints
//
//   - GET /items/:key/history?limit=N
//   - GET /movements?key=&type=&location=&from=&to=&limit=&offset=
package ledger
