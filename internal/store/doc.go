// Package store defines interfaces for data persistence operations: the
// credential store holding users and the per-user queue store holding
// serialized tasks. Implementations live under internal/platform.
package store
