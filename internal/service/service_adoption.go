package service

import (
	"context"
	"fmt"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/models"
)

// adoptionService implements [AdoptionService]. Approving a request marks
// the listing Adoptado; moving an approved request back to another state
// reopens the listing.
type adoptionService struct {
	adoptionRepository store.AdoptionRepository
	logger             *logger.Logger
}

// NewAdoptionService constructs an [AdoptionService].
func NewAdoptionService(adoptions store.AdoptionRepository, logger *logger.Logger) AdoptionService {
	return &adoptionService{
		adoptionRepository: adoptions,
		logger:             logger,
	}
}

func (s *adoptionService) ListAdoptions(ctx context.Context) ([]models.Adoption, error) {
	return s.adoptionRepository.ListAdoptions(ctx)
}

// CreateAdoption validates and publishes a new listing. Fresh listings
// always start Disponible.
func (s *adoptionService) CreateAdoption(ctx context.Context, a models.Adoption) (models.Adoption, error) {
	if a.Name == "" || a.Species == "" {
		return models.Adoption{}, fmt.Errorf("%w: name and species are required", ErrInvalidDataProvided)
	}
	a.Status = models.AdoptionAvailable

	return s.adoptionRepository.CreateAdoption(ctx, a)
}

// UpdateAdoption applies a full-body edit of one listing. Empty image keeps
// the stored image; an unknown status value is rejected.
func (s *adoptionService) UpdateAdoption(ctx context.Context, id int64, a models.Adoption) error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDataProvided)
	}
	if a.Status != "" && a.Status != models.AdoptionAvailable && a.Status != models.AdoptionAdopted {
		return fmt.Errorf("%w: unknown adoption status", ErrInvalidDataProvided)
	}

	fields := map[string]any{
		"name":        a.Name,
		"species":     a.Species,
		"breed":       a.Breed,
		"age_years":   a.AgeYears,
		"size":        a.Size,
		"city":        a.City,
		"country":     a.Country,
		"description": a.Description,
		"shelter":     a.Shelter,
	}
	if a.Image != "" {
		fields["image"] = a.Image
	}
	if a.Status != "" {
		fields["status"] = a.Status
	}

	return s.adoptionRepository.UpdateAdoption(ctx, id, fields)
}

func (s *adoptionService) DeleteAdoption(ctx context.Context, id int64) error {
	return s.adoptionRepository.DeleteAdoption(ctx, id)
}

// FileRequest files an adoption request against an available listing.
func (s *adoptionService) FileRequest(ctx context.Context, adoptionID, requesterID int64, message string) (models.AdoptionRequest, error) {
	adoption, err := s.adoptionRepository.GetAdoption(ctx, adoptionID)
	if err != nil {
		return models.AdoptionRequest{}, err
	}
	if adoption.Status != models.AdoptionAvailable {
		return models.AdoptionRequest{}, fmt.Errorf("%w: listing is no longer available", ErrInvalidDataProvided)
	}

	return s.adoptionRepository.CreateRequest(ctx, models.AdoptionRequest{
		AdoptionID:  adoptionID,
		RequesterID: requesterID,
		Message:     message,
	})
}

func (s *adoptionService) ListRequests(ctx context.Context) ([]models.AdoptionRequest, error) {
	return s.adoptionRepository.ListRequests(ctx)
}

func (s *adoptionService) ListRequestsByAdoption(ctx context.Context, adoptionID int64) ([]models.AdoptionRequest, error) {
	return s.adoptionRepository.ListRequestsByAdoption(ctx, adoptionID)
}

func (s *adoptionService) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.AdoptionRequest, error) {
	return s.adoptionRepository.ListRequestsByRequester(ctx, requesterID)
}

// SetRequestStatus moves a request between Pendiente, Aprobada and
// Rechazada. Approval marks the listing Adoptado; demoting a previously
// approved request reopens it. Changing a request that never held approval
// leaves the listing untouched, so rejecting a leftover pending request
// cannot reopen a listing adopted through a different request.
func (s *adoptionService) SetRequestStatus(ctx context.Context, id int64, status string) error {
	log := logger.FromContext(ctx)

	if !models.ValidRequestStatus(status) {
		return fmt.Errorf("%w: unknown request status", ErrInvalidDataProvided)
	}

	req, err := s.adoptionRepository.GetRequest(ctx, id)
	if err != nil {
		return err
	}

	if err := s.adoptionRepository.SetRequestStatus(ctx, id, status); err != nil {
		return err
	}

	var listingStatus string
	switch {
	case status == models.RequestApproved:
		listingStatus = models.AdoptionAdopted
	case req.Status == models.RequestApproved:
		listingStatus = models.AdoptionAvailable
	default:
		return nil
	}

	if err := s.adoptionRepository.SetAdoptionStatus(ctx, req.AdoptionID, listingStatus); err != nil {
		log.Err(err).Int64("adoption_id", req.AdoptionID).Msg("listing status sync failed")
		return err
	}

	return nil
}

func (s *adoptionService) DeleteRequest(ctx context.Context, id int64) error {
	return s.adoptionRepository.DeleteRequest(ctx, id)
}
