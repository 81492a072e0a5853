// Package sync reconciles the external inventory sheet into the store.
//
// A run moves through fetching, diffing and writing before it completes or
// fails:
//
//  1. Tracker.Begin records an in_progress SyncRun before any I/O, refusing
//     with ErrSyncInProgress while another live run holds the target.
//  2. The source is fetched under a timeout.
//  3. Records are deduplicated by key and split into batches. Each batch loads
//     its stored items in one query and is written in one transaction: new
//     items with an added movement, changed items with one movement per
//     differing tracked field (grade, lock status), and a last-seen refresh for
//     the rest.
//  4. Counters are persisted after every batch so progress is observable.
//
// A failure marks the run failed with the message and a stack in its details;
// batches committed before the failure stay committed. Runs left in progress by
// a crashed process are completed by FixStale using the store's item count.
//
// # HTTP Endpoints
//
//   - POST /sync : Trigger a run.
//   - GET /sync/latest : Latest run.
//   - POST /sync/fix-stale?minutes=N : Repair stuck runs.
package sync
