package store

import "github.com/happytails/happytails/internal/logger"

// Storages bundles every repository behind its interface so the service
// layer receives a single dependency.
type Storages struct {
	UserRepository         UserRepository
	MfaRepository          MfaRepository
	PetRepository          PetRepository
	AdoptionRepository     AdoptionRepository
	ReminderRepository     ReminderRepository
	NotificationRepository NotificationRepository
	ActivityRepository     ActivityRepository
}

// NewStorages constructs all PostgreSQL-backed repositories over the shared
// connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		MfaRepository:          NewMfaRepository(db, log),
		PetRepository:          NewPetRepository(db, log),
		AdoptionRepository:     NewAdoptionRepository(db, log),
		ReminderRepository:     NewReminderRepository(db, log),
		NotificationRepository: NewNotificationRepository(db, log),
		ActivityRepository:     NewActivityRepository(db, log),
	}
}
