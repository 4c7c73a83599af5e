package service

import (
	"context"

	"github.com/happytails/happytails/models"
)

// LoginResult is the outcome of login step 1. When MfaRequired is set the
// caller must run step 2 before a session may be issued; Challenge carries
// the signed step-2 binding token when challenge issuance is configured.
type LoginResult struct {
	User        models.User
	MfaRequired bool
	Challenge   string
}

// RegisterInput is the payload of a public registration.
type RegisterInput struct {
	Username       string
	FirstName      string
	LastName       string
	Phone          string
	DocumentType   string
	DocumentNumber string
	Email          string
	Password       string
}

// AdminInput is the payload of superadmin-managed admin account creation and
// update. Password is optional on update.
type AdminInput struct {
	FirstName      string
	LastName       string
	Phone          string
	DocumentNumber string
	Email          string
	Password       string
}

// UserUpdateInput is the payload of the admin user-management update.
// Nil pointers leave the column untouched.
type UserUpdateInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	Email     *string
	Role      *models.Role
	Password  *string
}

// AuthService implements registration and the two-step login state machine.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (models.User, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	VerifyMfaLogin(ctx context.Context, userID int64, code, challenge string) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}

// MfaService implements TOTP enrollment.
type MfaService interface {
	Setup(ctx context.Context, userUUID string) (otpauthURL string, err error)
	VerifySetup(ctx context.Context, userUUID, code string) error
}

// AccountService implements admin and superadmin account management.
type AccountService interface {
	ListUserReports(ctx context.Context) ([]models.UserReport, error)
	GetUserDetails(ctx context.Context, id int64) (models.UserDetails, error)
	CountUsersByRole(ctx context.Context) (map[models.Role]int, error)
	UserActivity(ctx context.Context, id int64, limit int) ([]models.ActivityEntry, error)
	CreateUser(ctx context.Context, actor models.Session, in RegisterInput, role models.Role) (models.User, error)
	UpdateUser(ctx context.Context, actor models.Session, id int64, in UserUpdateInput) error
	DeleteUser(ctx context.Context, actor models.Session, id int64) error

	ListAdmins(ctx context.Context) ([]models.User, error)
	CreateAdmin(ctx context.Context, actor models.Session, in AdminInput) (models.User, error)
	UpdateAdmin(ctx context.Context, actor models.Session, id int64, in AdminInput) error
	DeleteAdmin(ctx context.Context, actor models.Session, id int64) error
}

// PetService implements pet registration and care-profile management.
type PetService interface {
	ListPets(ctx context.Context) ([]models.Pet, error)
	ListPetRefs(ctx context.Context) ([]models.PetRef, error)
	CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error)
	UpdatePet(ctx context.Context, id int64, pet models.Pet) error
	DeletePet(ctx context.Context, id int64) error
}

// AdoptionService implements adoption listings and requests.
type AdoptionService interface {
	ListAdoptions(ctx context.Context) ([]models.Adoption, error)
	CreateAdoption(ctx context.Context, a models.Adoption) (models.Adoption, error)
	UpdateAdoption(ctx context.Context, id int64, a models.Adoption) error
	DeleteAdoption(ctx context.Context, id int64) error
	FileRequest(ctx context.Context, adoptionID, requesterID int64, message string) (models.AdoptionRequest, error)
	ListRequests(ctx context.Context) ([]models.AdoptionRequest, error)
	ListRequestsByAdoption(ctx context.Context, adoptionID int64) ([]models.AdoptionRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.AdoptionRequest, error)
	SetRequestStatus(ctx context.Context, id int64, status string) error
	DeleteRequest(ctx context.Context, id int64) error
}

// ReminderService implements care reminders and their type catalog.
type ReminderService interface {
	ListReminders(ctx context.Context) ([]models.Reminder, error)
	ListRemindersByOwner(ctx context.Context, ownerID int64) ([]models.Reminder, error)
	GetReminder(ctx context.Context, id int64) (models.Reminder, error)
	CreateReminder(ctx context.Context, r models.Reminder) (models.Reminder, error)
	UpdateReminder(ctx context.Context, id int64, r models.Reminder) error
	DeleteReminder(ctx context.Context, id int64) error
	ListTypes(ctx context.Context) ([]models.ReminderType, error)
}

// NotificationService builds the merged notification feed.
type NotificationService interface {
	Feed(ctx context.Context, userID int64) ([]models.FeedEntry, error)
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}
