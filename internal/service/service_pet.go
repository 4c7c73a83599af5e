package service

import (
	"context"
	"fmt"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/models"
)

// petService implements [PetService].
type petService struct {
	petRepository store.PetRepository
	logger        *logger.Logger
}

// NewPetService constructs a [PetService].
func NewPetService(pets store.PetRepository, logger *logger.Logger) PetService {
	return &petService{
		petRepository: pets,
		logger:        logger,
	}
}

func (s *petService) ListPets(ctx context.Context) ([]models.Pet, error) {
	return s.petRepository.ListPets(ctx)
}

func (s *petService) ListPetRefs(ctx context.Context) ([]models.PetRef, error) {
	return s.petRepository.ListPetRefs(ctx)
}

// CreatePet validates and persists a new pet.
func (s *petService) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	if pet.Name == "" || pet.OwnerID == 0 {
		return models.Pet{}, fmt.Errorf("%w: name and owner are required", ErrInvalidDataProvided)
	}

	return s.petRepository.CreatePet(ctx, pet)
}

// UpdatePet applies a full-body edit of one pet. Empty photo_url keeps the
// stored photo.
func (s *petService) UpdatePet(ctx context.Context, id int64, pet models.Pet) error {
	if pet.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDataProvided)
	}

	fields := map[string]any{
		"name":               pet.Name,
		"species":            pet.Species,
		"breed_id":           pet.BreedID,
		"weight_kg":          pet.WeightKg,
		"age_years":          pet.AgeYears,
		"age_months":         pet.AgeMonths,
		"birth_date":         pet.BirthDate,
		"description":        pet.Description,
		"vaccination_status": pet.VaccinationStatus,
	}
	if pet.PhotoURL != "" {
		fields["photo_url"] = pet.PhotoURL
	}

	return s.petRepository.UpdatePet(ctx, id, fields)
}

func (s *petService) DeletePet(ctx context.Context, id int64) error {
	return s.petRepository.DeletePet(ctx, id)
}
