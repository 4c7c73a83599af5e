package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/models"
)

// reminderRepository is the PostgreSQL-backed implementation of
// [ReminderRepository] ("reminders" and "reminder_types" tables).
type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReminderRepository constructs a [ReminderRepository] backed by the
// provided database connection and logger.
func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reminderRepository) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	return r.list(ctx, "*reminderRepository.ListReminders", listReminders)
}

func (r *reminderRepository) ListRemindersByOwner(ctx context.Context, ownerID int64) ([]models.Reminder, error) {
	return r.list(ctx, "*reminderRepository.ListRemindersByOwner", listRemindersByOwner, ownerID)
}

func (r *reminderRepository) list(ctx context.Context, fn, query string, args ...any) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: querying reminders")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.PetID, &rem.TypeID, &rem.DueDate, &rem.Status, &rem.Notes); err != nil {
			log.Err(err).Str("func", fn).Msg("error: scanning reminder row")
			return nil, err
		}
		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}

// GetReminder retrieves one reminder. Returns [ErrReminderNotFound] when no
// row exists.
func (r *reminderRepository) GetReminder(ctx context.Context, id int64) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	var rem models.Reminder
	row := r.db.QueryRowContext(ctx, getReminder, id)
	if err := row.Scan(&rem.ID, &rem.PetID, &rem.TypeID, &rem.DueDate, &rem.Status, &rem.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reminder{}, ErrReminderNotFound
		}
		log.Err(err).Str("func", "*reminderRepository.GetReminder").Msg("error: scanning reminder")
		return models.Reminder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rem, nil
}

// CreateReminder persists a new reminder and returns it with the assigned id.
// Returns [ErrPetNotFound] when the referenced pet does not exist and
// [ErrReminderTypeNotFound] when the type id is unknown.
func (r *reminderRepository) CreateReminder(ctx context.Context, rem models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReminder, rem.PetID, rem.TypeID, rem.DueDate, rem.Status, rem.Notes)

	var saved models.Reminder
	if err := row.Scan(&saved.ID, &saved.PetID, &saved.TypeID, &saved.DueDate, &saved.Status, &saved.Notes); err != nil {
		log.Err(err).Str("func", "*reminderRepository.CreateReminder").Msg("error: inserting reminder")
		return models.Reminder{}, foreignKeySentinel(err)
	}

	return saved, nil
}

// UpdateReminder applies a partial update built from a column → value map.
// Returns [ErrReminderNotFound] when no row was updated.
func (r *reminderRepository) UpdateReminder(ctx context.Context, id int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("reminders").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.UpdateReminder").Msg("error: building update query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.UpdateReminder").Msg("error: executing update")
		return foreignKeySentinel(err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// DeleteReminder removes one reminder. Returns [ErrReminderNotFound] when no
// row was deleted.
func (r *reminderRepository) DeleteReminder(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteReminder, id)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.DeleteReminder").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// ListTypes returns the reminder type catalog.
func (r *reminderRepository) ListTypes(ctx context.Context) ([]models.ReminderType, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listReminderTypes)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.ListTypes").Msg("error: querying reminder types")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var types []models.ReminderType
	for rows.Next() {
		var t models.ReminderType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// ListDueReminders returns ownerID's pending reminders due within the next
// three days, joined with pet and type names for message building.
func (r *reminderRepository) ListDueReminders(ctx context.Context, ownerID int64) ([]models.DueReminder, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDueReminders, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.ListDueReminders").Msg("error: querying due reminders")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var due []models.DueReminder
	for rows.Next() {
		var d models.DueReminder
		if err := rows.Scan(&d.ID, &d.PetName, &d.TypeName, &d.DueDate, &d.Status); err != nil {
			log.Err(err).Str("func", "*reminderRepository.ListDueReminders").Msg("error: scanning due row")
			return nil, err
		}
		due = append(due, d)
	}

	return due, rows.Err()
}

// MarkOverdue moves every Pendiente reminder with a due date before now to
// Vencido and returns the number of rows swept.
func (r *reminderRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, markOverdueReminders, now)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.MarkOverdue").Msg("error: sweeping overdue reminders")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return n, nil
}
