// Package api holds the HTTP handlers. Handlers decode and validate
// requests, call the services and translate service errors into status
// codes and safe client messages.
package api
