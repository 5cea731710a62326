// Package testdb provides helpers for tests that run against a real
// Postgres database. Tests using it should carry the integration build tag
// and skip when no database URL is configured.
package testdb
