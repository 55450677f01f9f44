package models

import "time"

// Типы событий ленты изменений
const (
	EventIncidentCreated     = "created"
	EventIncidentUpdated     = "updated"
	EventIncidentDeactivated = "deactivated"
)

// IncidentEvent - запись ленты изменений инцидентов
type IncidentEvent struct {
	Type       string    `json:"type"`
	Incident   *Incident `json:"incident"`
	OccurredAt time.Time `json:"occurred_at"`
}
