// Package auth issues and validates HS256 JWT access and refresh tokens and
// verifies bcrypt password hashes.
package auth
