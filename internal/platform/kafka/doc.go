// Package kafka publishes forwarded tasks to the downstream append-only log
// topic using segmentio/kafka-go.
package kafka
