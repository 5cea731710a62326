// Package store defines the persistence interfaces for users and notes,
// the errors every implementation returns, and the transaction helper the
// services use to group store calls.
package store
