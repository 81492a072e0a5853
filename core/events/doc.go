// Package events publishes committed movements to NATS so downstream systems
// can follow the ledger without polling it. Publishing happens after commit
// and never affects the outcome of the operation that produced the movement.
package events
