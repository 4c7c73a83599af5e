package models

import "time"

// Pet is an animal registered by a user for care tracking.
type Pet struct {
	ID                int64      `json:"id"`
	OwnerID           int64      `json:"propietario_id"`
	Name              string     `json:"nombre"`
	Species           string     `json:"especie,omitempty"`
	BreedID           *int64     `json:"raza_id"`
	WeightKg          *float64   `json:"peso_kg,omitempty"`
	AgeYears          *int       `json:"edad_anios,omitempty"`
	AgeMonths         *int       `json:"edad_meses,omitempty"`
	BirthDate         *time.Time `json:"fecha_nacimiento,omitempty"`
	Description       string     `json:"descripcion,omitempty"`
	VaccinationStatus string     `json:"estado_vacunacion,omitempty"`
	PhotoURL          string     `json:"foto_url,omitempty"`
	CreatedAt         time.Time  `json:"fecha_creacion,omitempty"`
}

// TableName returns the name of the database table
// associated with the Pet model.
func (p Pet) TableName() string {
	return "pets"
}

// PetRef is the reduced id/name projection used by simple listings
// (e.g. populating a reminder form).
type PetRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}
