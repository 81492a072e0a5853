// Package models defines the persisted inventory records: items, the movement
// ledger, sync runs and daily snapshots.
package models
