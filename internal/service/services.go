package service

import (
	"github.com/happytails/happytails/internal/config"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/mfacrypt"
	"github.com/happytails/happytails/internal/store"
)

// Services bundles every service behind its interface so the handler layer
// receives a single dependency.
type Services struct {
	AuthService         AuthService
	MfaService          MfaService
	AccountService      AccountService
	PetService          PetService
	AdoptionService     AdoptionService
	ReminderService     ReminderService
	NotificationService NotificationService
}

// NewServices wires every service to the repositories and configuration.
// codec is the shared MFA secret codec built from Security.MfaEncryptionKey.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, codec *mfacrypt.Codec, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, storages.MfaRepository, storages.ActivityRepository, codec, cfg.Security, logger),
		MfaService:          NewMfaService(storages.UserRepository, storages.MfaRepository, storages.ActivityRepository, codec, cfg.App.Name, logger),
		AccountService:      NewAccountService(storages.UserRepository, storages.PetRepository, storages.AdoptionRepository, storages.ActivityRepository, logger),
		PetService:          NewPetService(storages.PetRepository, logger),
		AdoptionService:     NewAdoptionService(storages.AdoptionRepository, logger),
		ReminderService:     NewReminderService(storages.ReminderRepository, storages.PetRepository, logger),
		NotificationService: NewNotificationService(storages.NotificationRepository, storages.ReminderRepository, logger),
	}
}
