// Package events defines the catalog change events emitted by the
// service layer and a simple in-memory emitter that dispatches them to
// registered handlers. Consumers (such as the CLI's logging handler)
// subscribe without the service knowing about them.
package events
