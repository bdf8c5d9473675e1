package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventJobCreated     EventType = "job_created"
	EventJobUpdated     EventType = "job_updated"
	EventJobDeleted     EventType = "job_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id"`
	ActorID    string      `json:"actor_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// JobChangedPayload payload for job lifecycle events.
type JobChangedPayload struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
}
