package service

import (
	"context"
	"fmt"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/models"
)

// reminderService implements [ReminderService].
type reminderService struct {
	reminderRepository store.ReminderRepository
	petRepository      store.PetRepository
	logger             *logger.Logger
}

// NewReminderService constructs a [ReminderService].
func NewReminderService(reminders store.ReminderRepository, pets store.PetRepository, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminders,
		petRepository:      pets,
		logger:             logger,
	}
}

func (s *reminderService) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	return s.reminderRepository.ListReminders(ctx)
}

func (s *reminderService) ListRemindersByOwner(ctx context.Context, ownerID int64) ([]models.Reminder, error) {
	return s.reminderRepository.ListRemindersByOwner(ctx, ownerID)
}

func (s *reminderService) GetReminder(ctx context.Context, id int64) (models.Reminder, error) {
	return s.reminderRepository.GetReminder(ctx, id)
}

// CreateReminder validates and persists a new reminder. The referenced pet
// must exist; a missing status defaults to Pendiente.
func (s *reminderService) CreateReminder(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	if r.PetID == 0 || r.TypeID == 0 || r.DueDate.IsZero() {
		return models.Reminder{}, fmt.Errorf("%w: pet, type and due date are required", ErrInvalidDataProvided)
	}

	exists, err := s.petRepository.PetExists(ctx, r.PetID)
	if err != nil {
		return models.Reminder{}, err
	}
	if !exists {
		return models.Reminder{}, store.ErrPetNotFound
	}

	if r.Status == "" {
		r.Status = models.ReminderPending
	}
	if !validReminderStatus(r.Status) {
		return models.Reminder{}, fmt.Errorf("%w: unknown reminder status", ErrInvalidDataProvided)
	}

	return s.reminderRepository.CreateReminder(ctx, r)
}

// UpdateReminder applies a full-body edit of one reminder.
func (s *reminderService) UpdateReminder(ctx context.Context, id int64, r models.Reminder) error {
	if r.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrInvalidDataProvided)
	}
	if r.Status != "" && !validReminderStatus(r.Status) {
		return fmt.Errorf("%w: unknown reminder status", ErrInvalidDataProvided)
	}

	fields := map[string]any{
		"due_date": r.DueDate,
		"notes":    r.Notes,
	}
	if r.TypeID != 0 {
		fields["type_id"] = r.TypeID
	}
	if r.Status != "" {
		fields["status"] = r.Status
	}

	return s.reminderRepository.UpdateReminder(ctx, id, fields)
}

func (s *reminderService) DeleteReminder(ctx context.Context, id int64) error {
	return s.reminderRepository.DeleteReminder(ctx, id)
}

func (s *reminderService) ListTypes(ctx context.Context) ([]models.ReminderType, error) {
	return s.reminderRepository.ListTypes(ctx)
}

func validReminderStatus(status string) bool {
	return status == models.ReminderPending ||
		status == models.ReminderCompleted ||
		status == models.ReminderOverdue
}
