// Package mocks provides function-field fakes of the service interfaces for
// handler and middleware tests. A nil function field falls back to the
// mock's default return values.
package mocks
