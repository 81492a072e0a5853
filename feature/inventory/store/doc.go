// Package store persists items, the movement ledger, sync runs and daily
// snapshots.
//
// Two backends implement Store: a gorm backend over MySQL, Postgres or SQLite,
// and an in-memory backend. The backend is chosen once by Open from the
// configured database driver; callers only see the interfaces.
//
// Every write that changes an item is expected to append its movements in the
// same Transaction.
package store
