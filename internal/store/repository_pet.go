package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/models"
)

// petRepository is the PostgreSQL-backed implementation of [PetRepository].
type petRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPetRepository constructs a [PetRepository] backed by the provided
// database connection and logger.
func NewPetRepository(db *DB, logger *logger.Logger) PetRepository {
	logger.Debug().Msg("creating pet repository")
	return &petRepository{
		db:     db,
		logger: logger,
	}
}

func (r *petRepository) ListPets(ctx context.Context) ([]models.Pet, error) {
	return r.list(ctx, "*petRepository.ListPets", listPets)
}

func (r *petRepository) ListPetsByOwner(ctx context.Context, ownerID int64) ([]models.Pet, error) {
	return r.list(ctx, "*petRepository.ListPetsByOwner", listPetsByOwner, ownerID)
}

func (r *petRepository) list(ctx context.Context, fn, query string, args ...any) ([]models.Pet, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: querying pets")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var pets []models.Pet
	for rows.Next() {
		var p models.Pet
		if err := scanPet(rows, &p); err != nil {
			log.Err(err).Str("func", fn).Msg("error: scanning pet row")
			return nil, err
		}
		pets = append(pets, p)
	}

	return pets, rows.Err()
}

// ListPetRefs returns the id/name projection used by selection lists.
func (r *petRepository) ListPetRefs(ctx context.Context) ([]models.PetRef, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPetRefs)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.ListPetRefs").Msg("error: querying pet refs")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var refs []models.PetRef
	for rows.Next() {
		var ref models.PetRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// GetPet retrieves one pet. Returns [ErrPetNotFound] when no row exists.
func (r *petRepository) GetPet(ctx context.Context, id int64) (models.Pet, error) {
	log := logger.FromContext(ctx)

	var p models.Pet
	row := r.db.QueryRowContext(ctx, getPet, id)
	if err := scanPet(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Pet{}, ErrPetNotFound
		}
		log.Err(err).Str("func", "*petRepository.GetPet").Msg("error: scanning pet")
		return models.Pet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return p, nil
}

// CreatePet persists a new pet and returns it with server-assigned fields.
func (r *petRepository) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPet,
		pet.OwnerID, pet.Name, pet.Species, pet.BreedID, pet.WeightKg, pet.AgeYears,
		pet.AgeMonths, pet.BirthDate, pet.Description, pet.VaccinationStatus, pet.PhotoURL)

	var saved models.Pet
	if err := scanPet(row, &saved); err != nil {
		log.Err(err).Str("func", "*petRepository.CreatePet").Msg("error: inserting pet")
		return models.Pet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// UpdatePet applies a partial update built from a column → value map.
// Returns [ErrPetNotFound] when no row was updated.
func (r *petRepository) UpdatePet(ctx context.Context, id int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("pets").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*petRepository.UpdatePet").Msg("error: building update query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.UpdatePet").Msg("error: executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPetNotFound
	}

	return nil
}

// DeletePet removes one pet. Returns [ErrPetNotFound] when no row was
// deleted. Reminders attached to the pet are removed by the ON DELETE
// CASCADE on reminders.pet_id.
func (r *petRepository) DeletePet(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deletePet, id)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.DeletePet").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPetNotFound
	}

	return nil
}

// PetExists reports whether a pet with the given id exists.
func (r *petRepository) PetExists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, petExists, id)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*petRepository.PetExists").Msg("error: scanning existence check")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner, p *models.Pet) error {
	return s.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.BreedID, &p.WeightKg,
		&p.AgeYears, &p.AgeMonths, &p.BirthDate, &p.Description, &p.VaccinationStatus,
		&p.PhotoURL, &p.CreatedAt)
}
