package models

import "time"

// Reminder states.
const (
	ReminderPending   = "Pendiente"
	ReminderCompleted = "Completado"
	ReminderOverdue   = "Vencido"
)

// Reminder is a dated care task (vaccination, deworming, checkup...) attached
// to a pet. A reminder left Pendiente past its due date is swept to Vencido
// by the background worker.
type Reminder struct {
	ID      int64     `json:"id"`
	PetID   int64     `json:"mascota_id"`
	TypeID  int64     `json:"tipo_recordatorio_id"`
	DueDate time.Time `json:"fecha_vencimiento"`
	Status  string    `json:"estado"`
	Notes   string    `json:"notas,omitempty"`
}

// TableName returns the name of the database table
// associated with the Reminder model.
func (r Reminder) TableName() string {
	return "reminders"
}

// ReminderType is a catalog entry naming a kind of care task.
type ReminderType struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// TableName returns the name of the database table
// associated with the ReminderType model.
func (t ReminderType) TableName() string {
	return "reminder_types"
}

// DueReminder is the join row used to build notification messages: a pending
// reminder together with the pet name and reminder-type name it refers to.
type DueReminder struct {
	ID       int64     `json:"id"`
	DueDate  time.Time `json:"fecha_vencimiento"`
	Status   string    `json:"estado"`
	Notes    string    `json:"notas,omitempty"`
	PetName  string    `json:"nombre_mascota"`
	TypeName string    `json:"tipo_recordatorio"`
}
