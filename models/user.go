package models

import "time"

// Role is the authorization level assigned to an account.
// The three values form a strict hierarchy: a superadmin may do everything an
// admin may do, an admin everything a regular user may do.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleSuperadmin
}

// User represents an account entity used for authentication and authorization.
// Wire names follow the public API contract of the application
// (nombre_completo, apellidos, cedula, rol, ...).
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the account.
	ID int64 `json:"id"`

	// UUID is the stable provisioning identifier used by out-of-band flows
	// such as MFA setup. Assigned once at registration.
	UUID string `json:"user_uuid,omitempty"`

	// Username is the unique short handle chosen at registration.
	Username string `json:"username,omitempty"`

	// FirstName and LastName are the display name fields.
	FirstName string `json:"nombre_completo"`
	LastName  string `json:"apellidos"`

	// Phone is the contact phone number (7-10 digits).
	Phone string `json:"telefono,omitempty"`

	// DocumentType and DocumentNumber identify the legal document presented
	// at registration (cedula is unique per account).
	DocumentType   string `json:"tipo_documento,omitempty"`
	DocumentNumber string `json:"cedula,omitempty"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Role is the authorization level of the account.
	Role Role `json:"rol"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"fecha_creacion,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserReport is a single row of the admin user listing: account fields plus
// per-account aggregate counters computed by the report query.
type UserReport struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"nombre_completo"`
	LastName       string    `json:"apellidos"`
	Email          string    `json:"email"`
	Role           Role      `json:"rol"`
	RegisteredAt   time.Time `json:"fecha_registro"`
	TotalPets      int       `json:"total_mascotas"`
	TotalAdoptions int       `json:"total_adopciones"`
}

// UserDetails is the full per-account view returned by the admin inspection
// endpoint: account info, owned pets, published adoption listings and
// aggregate statistics.
type UserDetails struct {
	Info       User                   `json:"info"`
	Pets       []Pet                  `json:"mascotas"`
	Adoptions  []AdoptionWithRequests `json:"adopciones"`
	Statistics UserStatistics         `json:"estadisticas"`
}

// UserStatistics aggregates ownership and adoption activity of one account.
type UserStatistics struct {
	TotalPets             int `json:"total_mascotas"`
	TotalAdoptions        int `json:"total_adopciones"`
	TotalAdoptionsOpen    int `json:"total_adopciones_disponibles"`
	TotalAdoptionsAdopted int `json:"total_adopciones_adoptadas"`
	TotalRequestsReceived int `json:"total_solicitudes_recibidas"`
}
