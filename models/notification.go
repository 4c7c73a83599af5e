package models

import "time"

// Notification is a persisted per-user message shown in the notification
// feed alongside computed due-reminder entries.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"id_usuario"`
	Message   string    `json:"mensaje"`
	Read      bool      `json:"leido"`
	CreatedAt time.Time `json:"fecha"`
}

// TableName returns the name of the database table
// associated with the Notification model.
func (n Notification) TableName() string {
	return "notifications"
}

// FeedEntry is one element of the merged notification feed. Kind is
// "notificacion" for persisted rows and "recordatorio" for entries derived
// from reminders due within the lookahead window.
type FeedEntry struct {
	ID      int64     `json:"id"`
	Message string    `json:"mensaje"`
	Date    time.Time `json:"fecha"`
	Kind    string    `json:"tipo"`
	Read    *bool     `json:"leido,omitempty"`
	Status  string    `json:"estado,omitempty"`
	Notes   string    `json:"notas,omitempty"`
}
