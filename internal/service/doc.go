// Package service holds the application's use cases: registering and
// authenticating users, managing notes on behalf of their owners, and
// deriving study questions from stored notes.
//
// Services depend on the store interfaces, never on a concrete database,
// and translate store errors into the sentinels below so the API layer can
// map them to HTTP statuses.
package service
