// Package task drains a user's queue in the background. A Worker pops tasks
// from the head of queue_<user_id> on a fixed interval and publishes each one
// to the downstream log topic, in the order they were enqueued.
package task
