package store

import (
	"context"
	"time"

	"github.com/happytails/happytails/models"
)

// UserRepository persists and retrieves user accounts. Lookups that find no
// row return [ErrUserNotFound]; unique-constraint violations on create and
// update map to the per-column "already exists" sentinels.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUUID(ctx context.Context, uuid string) (models.User, error)
	CheckConflicts(ctx context.Context, email, username, document string) error
	ListAdmins(ctx context.Context) ([]models.User, error)
	ListUserReports(ctx context.Context) ([]models.UserReport, error)
	CountByRole(ctx context.Context) (map[models.Role]int, error)
	UpdateUser(ctx context.Context, id int64, fields map[string]any) error
	DeleteUser(ctx context.Context, id int64) error
	GetUserStatistics(ctx context.Context, id int64) (models.UserStatistics, error)
}

// MfaRepository persists the per-account TOTP configuration.
type MfaRepository interface {
	GetConfig(ctx context.Context, userID int64) (models.MfaConfig, error)
	UpsertSecret(ctx context.Context, userID int64, encryptedSecret string) error
	Enable(ctx context.Context, userID int64) error
}

// PetRepository persists registered pets.
type PetRepository interface {
	ListPets(ctx context.Context) ([]models.Pet, error)
	ListPetsByOwner(ctx context.Context, ownerID int64) ([]models.Pet, error)
	ListPetRefs(ctx context.Context) ([]models.PetRef, error)
	GetPet(ctx context.Context, id int64) (models.Pet, error)
	CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error)
	UpdatePet(ctx context.Context, id int64, fields map[string]any) error
	DeletePet(ctx context.Context, id int64) error
	PetExists(ctx context.Context, id int64) (bool, error)
}

// AdoptionRepository persists adoption listings and the requests filed
// against them.
type AdoptionRepository interface {
	ListAdoptions(ctx context.Context) ([]models.Adoption, error)
	GetAdoption(ctx context.Context, id int64) (models.Adoption, error)
	CreateAdoption(ctx context.Context, a models.Adoption) (models.Adoption, error)
	UpdateAdoption(ctx context.Context, id int64, fields map[string]any) error
	DeleteAdoption(ctx context.Context, id int64) error
	SetAdoptionStatus(ctx context.Context, id int64, status string) error
	ListByOwnerWithRequests(ctx context.Context, ownerID int64) ([]models.AdoptionWithRequests, error)

	CreateRequest(ctx context.Context, r models.AdoptionRequest) (models.AdoptionRequest, error)
	GetRequest(ctx context.Context, id int64) (models.AdoptionRequest, error)
	ListRequests(ctx context.Context) ([]models.AdoptionRequest, error)
	ListRequestsByAdoption(ctx context.Context, adoptionID int64) ([]models.AdoptionRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.AdoptionRequest, error)
	SetRequestStatus(ctx context.Context, id int64, status string) error
	DeleteRequest(ctx context.Context, id int64) error
}

// ReminderRepository persists care reminders and their type catalog.
type ReminderRepository interface {
	ListReminders(ctx context.Context) ([]models.Reminder, error)
	ListRemindersByOwner(ctx context.Context, ownerID int64) ([]models.Reminder, error)
	GetReminder(ctx context.Context, id int64) (models.Reminder, error)
	CreateReminder(ctx context.Context, r models.Reminder) (models.Reminder, error)
	UpdateReminder(ctx context.Context, id int64, fields map[string]any) error
	DeleteReminder(ctx context.Context, id int64) error
	ListTypes(ctx context.Context) ([]models.ReminderType, error)
	ListDueReminders(ctx context.Context, ownerID int64) ([]models.DueReminder, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// NotificationRepository persists per-user notification rows.
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Notification, error)
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

// ActivityRepository appends audit records. Append failures are logged by
// callers but never fail the triggering operation.
type ActivityRepository interface {
	Insert(ctx context.Context, userID int64, action string, meta []byte) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.ActivityEntry, error)
}
