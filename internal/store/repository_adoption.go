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

// adoptionRepository is the PostgreSQL-backed implementation of
// [AdoptionRepository]. It covers both adoption listings and the requests
// filed against them ("adoptions" and "adoption_requests" tables).
type adoptionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdoptionRepository constructs an [AdoptionRepository] backed by the
// provided database connection and logger.
func NewAdoptionRepository(db *DB, logger *logger.Logger) AdoptionRepository {
	logger.Debug().Msg("creating adoption repository")
	return &adoptionRepository{
		db:     db,
		logger: logger,
	}
}

// ListAdoptions returns every listing, available ones first, newest first
// within each group.
func (r *adoptionRepository) ListAdoptions(ctx context.Context) ([]models.Adoption, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAdoptions)
	if err != nil {
		log.Err(err).Str("func", "*adoptionRepository.ListAdoptions").Msg("error: querying adoptions")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var adoptions []models.Adoption
	for rows.Next() {
		var a models.Adoption
		if err := scanAdoption(rows, &a); err != nil {
			log.Err(err).Str("func", "*adoptionRepository.ListAdoptions").Msg("error: scanning adoption row")
			return nil, err
		}
		adoptions = append(adoptions, a)
	}

	return adoptions, rows.Err()
}

// GetAdoption retrieves one listing. Returns [ErrAdoptionNotFound] when no
// row exists.
func (r *adoptionRepository) GetAdoption(ctx context.Context, id int64) (models.Adoption, error) {
	log := logger.FromContext(ctx)

	var a models.Adoption
	row := r.db.QueryRowContext(ctx, getAdoption, id)
	if err := scanAdoption(row, &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Adoption{}, ErrAdoptionNotFound
		}
		log.Err(err).Str("func", "*adoptionRepository.GetAdoption").Msg("error: scanning adoption")
		return models.Adoption{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return a, nil
}

// CreateAdoption persists a new listing and returns it with server-assigned
// fields.
func (r *adoptionRepository) CreateAdoption(ctx context.Context, a models.Adoption) (models.Adoption, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdoption,
		a.OwnerID, a.Name, a.Species, a.Breed, a.AgeYears, a.Size, a.City,
		a.Country, a.Description, a.Shelter, a.Image, a.Status)

	var saved models.Adoption
	if err := scanAdoption(row, &saved); err != nil {
		log.Err(err).Str("func", "*adoptionRepository.CreateAdoption").Msg("error: inserting adoption")
		return models.Adoption{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// UpdateAdoption applies a partial update built from a column → value map.
// Returns [ErrAdoptionNotFound] when no row was updated.
func (r *adoptionRepository) UpdateAdoption(ctx context.Context, id int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("adoptions").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*adoptionRepository.UpdateAdoption").Msg("error: building update query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adoptionRepository.UpdateAdoption").Msg("error: executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrAdoptionNotFound
	}

	return nil
}

// DeleteAdoption removes one listing and, via ON DELETE CASCADE, every
// request filed against it. Returns [ErrAdoptionNotFound] when no row was
// deleted.
func (r *adoptionRepository) DeleteAdoption(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAdoption, id)
	if err != nil {
		log.Err(err).Str("func", "*adoptionRepository.DeleteAdoption").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrAdoptionNotFound
	}

	return nil
}

// SetAdoptionStatus moves a listing between Disponible and Adoptado.
func (r *adoptionRepository) SetAdoptionStatus(ctx context.Context, id int64, status string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, setAdoptionStatus, id, status)
	if err != nil {
		log.Err(err).Str("func", "*adoptionRepository.SetAdoptionStatus").Msg("error: executing status update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrAdoptionNotFound
	}

	return nil
}

// ListByOwnerWithRequests returns the listings published by ownerID,
// each decorated with the number of requests filed against it.
func (r *adoptionRepository) ListByOwnerWithRequests(ctx context.Context, ownerID int64) ([]models.AdoptionWithRequests, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAdoptionsByOwnerWithRequests, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*adoptionRepository.ListByOwnerWithRequests").Msg("error: querying owner adoptions")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var adoptions []models.AdoptionWithRequests
	for rows.Next() {
		var a models.AdoptionWithRequests
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Name, &a.Species, &a.Breed, &a.AgeYears,
			&a.Size, &a.City, &a.Country, &a.Description, &a.Shelter, &a.Image,
			&a.Status, &a.CreatedAt, &a.TotalRequests); err != nil {
			log.Err(err).Str("func", "*adoptionRepository.ListByOwnerWithRequests").Msg("error: scanning row")
			return nil, err
		}
		adoptions = append(adoptions, a)
	}

	return adoptions, rows.Err()
}

// CreateRequest files a new adoption request in the Pendiente state.
func (r *adoptionRepository) CreateRequest(ctx context.Context, req models.AdoptionRequest) (models.AdoptionRequest, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdoptionRequest, req.AdoptionID, req.RequesterID, req.Message)

	var saved models.AdoptionRequest
	if err := row.Scan(&saved.ID, &saved.AdoptionID, &saved.RequesterID,
		&saved.Message, &saved.Status, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*adoptionRepository.CreateRequest").Msg("error: inserting request")
		return models.AdoptionRequest{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetRequest retrieves one request. Returns [ErrRequestNotFound] when no
// row exists.
func (r *adoptionRepository) GetRequest(ctx context.Context, id int64) (models.AdoptionRequest, error) {
	log := logger.FromContext(ctx)

	var req models.AdoptionRequest
	row := r.db.QueryRowContext(ctx, getAdoptionRequest, id)
	if err := row.Scan(&req.ID, &req.AdoptionID, &req.RequesterID,
		&req.Message, &req.Status, &req.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AdoptionRequest{}, ErrRequestNotFound
		}
		log.Err(err).Str("func", "*adoptionRepository.GetRequest").Msg("error: scanning request")
		return models.AdoptionRequest{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return req, nil
}

// ListRequests returns every request with requester identity, newest first.
func (r *adoptionRepository) ListRequests(ctx context.Context) ([]models.AdoptionRequest, error) {
	return r.listRequests(ctx, "*adoptionRepository.ListRequests", listAllRequests)
}

// ListRequestsByAdoption returns the requests filed against one listing.
func (r *adoptionRepository) ListRequestsByAdoption(ctx context.Context, adoptionID int64) ([]models.AdoptionRequest, error) {
	return r.listRequests(ctx, "*adoptionRepository.ListRequestsByAdoption", listRequestsByAdoption, adoptionID)
}

// ListRequestsByRequester returns the requests filed by one user.
func (r *adoptionRepository) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.AdoptionRequest, error) {
	return r.listRequests(ctx, "*adoptionRepository.ListRequestsByRequester", listRequestsByRequester, requesterID)
}

func (r *adoptionRepository) listRequests(ctx context.Context, fn, query string, args ...any) ([]models.AdoptionRequest, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: querying requests")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var requests []models.AdoptionRequest
	for rows.Next() {
		var req models.AdoptionRequest
		if err := rows.Scan(&req.ID, &req.AdoptionID, &req.RequesterID, &req.RequesterName,
			&req.RequesterEmail, &req.Message, &req.Status, &req.CreatedAt); err != nil {
			log.Err(err).Str("func", fn).Msg("error: scanning request row")
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// SetRequestStatus moves a request to the given state.
// Returns [ErrRequestNotFound] when no row was updated.
func (r *adoptionRepository) SetRequestStatus(ctx context.Context, id int64, status string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, setRequestStatus, id, status)
	if err != nil {
		log.Err(err).Str("func", "*adoptionRepository.SetRequestStatus").Msg("error: executing status update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// DeleteRequest removes one request. Returns [ErrRequestNotFound] when no
// row was deleted.
func (r *adoptionRepository) DeleteRequest(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAdoptionRequest, id)
	if err != nil {
		log.Err(err).Str("func", "*adoptionRepository.DeleteRequest").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrRequestNotFound
	}

	return nil
}

func scanAdoption(s scanner, a *models.Adoption) error {
	return s.Scan(&a.ID, &a.OwnerID, &a.Name, &a.Species, &a.Breed, &a.AgeYears,
		&a.Size, &a.City, &a.Country, &a.Description, &a.Shelter, &a.Image,
		&a.Status, &a.CreatedAt)
}
