// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver, and ships the schema as embedded goose
// migrations.
package postgres
