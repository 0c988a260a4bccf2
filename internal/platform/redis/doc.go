// Package redis implements the per-user queue store on Redis lists. Each queue
// is a list key; RPUSH appends at the tail and LPOP removes from the head, so
// Redis alone decides the order of concurrent pushes.
package redis
