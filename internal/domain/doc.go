// Package domain defines the core entities of the task queue service: the
// registered User whose ID namespaces a queue, and the opaque JSON Task that
// travels from the enqueue endpoint to the downstream log topic.
package domain
