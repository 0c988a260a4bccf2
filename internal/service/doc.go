// Package service contains the application use cases. It orchestrates the
// domain entities and the store interfaces (internal/store) to register and
// authenticate users and to enqueue their tasks.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete store implementation. Expected failures are returned as
// sentinel errors (or wrap one) so the API layer can map them to status codes
// with errors.Is.
package service
