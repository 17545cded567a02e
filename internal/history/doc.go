// Package history persists a ledger of render runs so operators can review
// what was rendered, how long it took, and where the contact sheet landed.
package history
