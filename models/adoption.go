package models

import "time"

// Adoption listing states.
const (
	AdoptionAvailable = "Disponible"
	AdoptionAdopted   = "Adoptado"
)

// Adoption request states.
const (
	RequestPending  = "Pendiente"
	RequestApproved = "Aprobada"
	RequestRejected = "Rechazada"
)

// Adoption is a published listing of an animal available for adoption.
type Adoption struct {
	ID          int64     `json:"id"`
	OwnerID     *int64    `json:"propietario_id,omitempty"`
	Name        string    `json:"nombre"`
	Species     string    `json:"especie"`
	Breed       string    `json:"raza,omitempty"`
	AgeYears    *int      `json:"edad_anios,omitempty"`
	Size        string    `json:"tamano,omitempty"`
	City        string    `json:"ciudad,omitempty"`
	Country     string    `json:"pais,omitempty"`
	Description string    `json:"descripcion,omitempty"`
	Shelter     string    `json:"refugio,omitempty"`
	Image       string    `json:"imagen,omitempty"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"fecha_registro,omitempty"`
}

// TableName returns the name of the database table
// associated with the Adoption model.
func (a Adoption) TableName() string {
	return "adoptions"
}

// AdoptionWithRequests decorates a listing with the number of requests filed
// against it. Used by admin views.
type AdoptionWithRequests struct {
	Adoption
	TotalRequests int `json:"total_solicitudes"`
}

// AdoptionRequest is a user's application to adopt a listed animal.
// Status moves Pendiente -> Aprobada|Rechazada under admin control.
type AdoptionRequest struct {
	ID             int64     `json:"id"`
	AdoptionID     int64     `json:"adopcion_id"`
	RequesterID    int64     `json:"solicitante_id"`
	RequesterName  string    `json:"solicitante_nombre,omitempty"`
	RequesterEmail string    `json:"solicitante_email,omitempty"`
	Message        string    `json:"mensaje,omitempty"`
	Status         string    `json:"estado_solicitud"`
	CreatedAt      time.Time `json:"fecha_solicitud,omitempty"`
}

// TableName returns the name of the database table
// associated with the AdoptionRequest model.
func (r AdoptionRequest) TableName() string {
	return "adoption_requests"
}

// ValidRequestStatus reports whether s is an accepted request state.
func ValidRequestStatus(s string) bool {
	return s == RequestPending || s == RequestApproved || s == RequestRejected
}
