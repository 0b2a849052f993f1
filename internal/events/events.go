package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Catalog event types.
const (
	TypeUserAdded    = "user.added"
	TypeBookCreated  = "book.created"
	TypeBookRead     = "book.read"
	TypeEmailChanged = "email.changed"
)

// CatalogEvent describes a single change to the catalog. The payload is
// carried as serialized JSON so handlers do not depend on the producing
// package's types.
type CatalogEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// OccurredAt is the timestamp when the event was created
	OccurredAt time.Time `json:"occurred_at"`
}

// UserAddedPayload is the payload of a TypeUserAdded event.
type UserAddedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookCreatedPayload is the payload of a TypeBookCreated event.
type BookCreatedPayload struct {
	Title string `json:"title"`
	ISBN  int64  `json:"isbn"`
	Kind  string `json:"kind"`
}

// BookReadPayload is the payload of a TypeBookRead event.
type BookReadPayload struct {
	Title string `json:"title"`
	ISBN  int64  `json:"isbn"`
	Email string `json:"email"`
	Rated bool   `json:"rated"`
	Reads int    `json:"reads"`
}

// EmailChangedPayload is the payload of a TypeEmailChanged event.
type EmailChangedPayload struct {
	OldEmail string `json:"old_email"`
	NewEmail string `json:"new_email"`
}

// NewCatalogEvent creates a new CatalogEvent with the specified type and payload.
func NewCatalogEvent(eventType string, payload interface{}) (*CatalogEvent, error) {
	payloadBytes, err := jsoniter.ConfigFastest.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &CatalogEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Payload:    payloadBytes,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *CatalogEvent) UnmarshalPayload(v interface{}) error {
	return jsoniter.ConfigFastest.Unmarshal(e.Payload, v)
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *CatalogEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the service layer to publish events without direct
// knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *CatalogEvent) error
}
