// Package snapshot builds dated summaries of the inventory.
//
// A snapshot of (date, location) holds the in-stock count, breakdowns by
// grade, model and lock status, the full item listing and that day's movement
// counts by type, where the day runs from 00:00 UTC to the next 00:00 UTC.
// Grade and lock status changes are reported together as status_changed.
// Generating the same day again replaces the earlier row.
//
// # HTTP Endpoints
//
//   - POST /snapshots
//   - GET /snapshots?from=&to=&location=
//   - GET /snapshots/summary?from=&to=&location=
//   - GET /snapshots/:date?location=
package snapshot
