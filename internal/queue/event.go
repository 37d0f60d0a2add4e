// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// EventsQueue is the durable queue all domain events are published to.
const EventsQueue = "registry.events"

// Event kinds published by the API.
const (
	KindUserRegistered  = "user.registered"
	KindBusinessCreated = "business.created"
	KindBusinessDeleted = "business.deleted"
	KindReviewAdded     = "review.added"
)

// Event is the envelope published for every domain event. It contains
// enough information for downstream consumers to log, notify, or feed
// analytics without calling back into the API.
type Event struct {
	Kind       string `json:"kind"`
	Actor      string `json:"actor"`                 // email of the acting user
	BusinessID uint64 `json:"business_id,omitempty"` // zero for auth events
	Business   string `json:"business,omitempty"`    // business name, when relevant
	OccurredAt string `json:"occurred_at"`           // RFC 3339 UTC timestamp
}
