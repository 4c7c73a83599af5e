package service

import (
	"context"
	"time"

	"github.com/happytails/happytails/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn     func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findByIDFn       func(ctx context.Context, id int64) (models.User, error)
	findByUUIDFn     func(ctx context.Context, uuid string) (models.User, error)
	checkConflictsFn func(ctx context.Context, email, username, document string) error
	listAdminsFn     func(ctx context.Context) ([]models.User, error)
	listReportsFn    func(ctx context.Context) ([]models.UserReport, error)
	countByRoleFn    func(ctx context.Context) (map[models.Role]int, error)
	updateUserFn     func(ctx context.Context, id int64, fields map[string]any) error
	deleteUserFn     func(ctx context.Context, id int64) error
	statisticsFn     func(ctx context.Context, id int64) (models.UserStatistics, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (m *mockUserRepository) FindUserByUUID(ctx context.Context, uuid string) (models.User, error) {
	if m.findByUUIDFn != nil {
		return m.findByUUIDFn(ctx, uuid)
	}
	return models.User{UUID: uuid}, nil
}

func (m *mockUserRepository) CheckConflicts(ctx context.Context, email, username, document string) error {
	if m.checkConflictsFn != nil {
		return m.checkConflictsFn(ctx, email, username, document)
	}
	return nil
}

func (m *mockUserRepository) ListAdmins(ctx context.Context) ([]models.User, error) {
	if m.listAdminsFn != nil {
		return m.listAdminsFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListUserReports(ctx context.Context) ([]models.UserReport, error) {
	if m.listReportsFn != nil {
		return m.listReportsFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) CountByRole(ctx context.Context) (map[models.Role]int, error) {
	if m.countByRoleFn != nil {
		return m.countByRoleFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id int64, fields map[string]any) error {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, id, fields)
	}
	return nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) GetUserStatistics(ctx context.Context, id int64) (models.UserStatistics, error) {
	if m.statisticsFn != nil {
		return m.statisticsFn(ctx, id)
	}
	return models.UserStatistics{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.MfaRepository
// ─────────────────────────────────────────────

type mockMfaRepository struct {
	getConfigFn    func(ctx context.Context, userID int64) (models.MfaConfig, error)
	upsertSecretFn func(ctx context.Context, userID int64, encryptedSecret string) error
	enableFn       func(ctx context.Context, userID int64) error
}

func (m *mockMfaRepository) GetConfig(ctx context.Context, userID int64) (models.MfaConfig, error) {
	if m.getConfigFn != nil {
		return m.getConfigFn(ctx, userID)
	}
	return models.MfaConfig{}, nil
}

func (m *mockMfaRepository) UpsertSecret(ctx context.Context, userID int64, encryptedSecret string) error {
	if m.upsertSecretFn != nil {
		return m.upsertSecretFn(ctx, userID, encryptedSecret)
	}
	return nil
}

func (m *mockMfaRepository) Enable(ctx context.Context, userID int64) error {
	if m.enableFn != nil {
		return m.enableFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ActivityRepository
// ─────────────────────────────────────────────

type mockActivityRepository struct {
	insertFn func(ctx context.Context, userID int64, action string, meta []byte) error
	listFn   func(ctx context.Context, userID int64, limit int) ([]models.ActivityEntry, error)
}

func (m *mockActivityRepository) Insert(ctx context.Context, userID int64, action string, meta []byte) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, userID, action, meta)
	}
	return nil
}

func (m *mockActivityRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.ActivityEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.PetRepository
// ─────────────────────────────────────────────

type mockPetRepository struct {
	listPetsFn    func(ctx context.Context) ([]models.Pet, error)
	listByOwnerFn func(ctx context.Context, ownerID int64) ([]models.Pet, error)
	listRefsFn    func(ctx context.Context) ([]models.PetRef, error)
	getPetFn      func(ctx context.Context, id int64) (models.Pet, error)
	createPetFn   func(ctx context.Context, pet models.Pet) (models.Pet, error)
	updatePetFn   func(ctx context.Context, id int64, fields map[string]any) error
	deletePetFn   func(ctx context.Context, id int64) error
	petExistsFn   func(ctx context.Context, id int64) (bool, error)
}

func (m *mockPetRepository) ListPets(ctx context.Context) ([]models.Pet, error) {
	if m.listPetsFn != nil {
		return m.listPetsFn(ctx)
	}
	return nil, nil
}

func (m *mockPetRepository) ListPetsByOwner(ctx context.Context, ownerID int64) ([]models.Pet, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPetRepository) ListPetRefs(ctx context.Context) ([]models.PetRef, error) {
	if m.listRefsFn != nil {
		return m.listRefsFn(ctx)
	}
	return nil, nil
}

func (m *mockPetRepository) GetPet(ctx context.Context, id int64) (models.Pet, error) {
	if m.getPetFn != nil {
		return m.getPetFn(ctx, id)
	}
	return models.Pet{ID: id}, nil
}

func (m *mockPetRepository) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	if m.createPetFn != nil {
		return m.createPetFn(ctx, pet)
	}
	return pet, nil
}

func (m *mockPetRepository) UpdatePet(ctx context.Context, id int64, fields map[string]any) error {
	if m.updatePetFn != nil {
		return m.updatePetFn(ctx, id, fields)
	}
	return nil
}

func (m *mockPetRepository) DeletePet(ctx context.Context, id int64) error {
	if m.deletePetFn != nil {
		return m.deletePetFn(ctx, id)
	}
	return nil
}

func (m *mockPetRepository) PetExists(ctx context.Context, id int64) (bool, error) {
	if m.petExistsFn != nil {
		return m.petExistsFn(ctx, id)
	}
	return true, nil
}

// ─────────────────────────────────────────────
// Mock: store.AdoptionRepository
// ─────────────────────────────────────────────

type mockAdoptionRepository struct {
	listAdoptionsFn    func(ctx context.Context) ([]models.Adoption, error)
	getAdoptionFn      func(ctx context.Context, id int64) (models.Adoption, error)
	createAdoptionFn   func(ctx context.Context, a models.Adoption) (models.Adoption, error)
	updateAdoptionFn   func(ctx context.Context, id int64, fields map[string]any) error
	deleteAdoptionFn   func(ctx context.Context, id int64) error
	setStatusFn        func(ctx context.Context, id int64, status string) error
	listOwnerFn        func(ctx context.Context, ownerID int64) ([]models.AdoptionWithRequests, error)
	createRequestFn    func(ctx context.Context, r models.AdoptionRequest) (models.AdoptionRequest, error)
	getRequestFn       func(ctx context.Context, id int64) (models.AdoptionRequest, error)
	listRequestsFn     func(ctx context.Context) ([]models.AdoptionRequest, error)
	listByAdoptionFn   func(ctx context.Context, adoptionID int64) ([]models.AdoptionRequest, error)
	listByRequesterFn  func(ctx context.Context, requesterID int64) ([]models.AdoptionRequest, error)
	setRequestStatusFn func(ctx context.Context, id int64, status string) error
	deleteRequestFn    func(ctx context.Context, id int64) error
}

func (m *mockAdoptionRepository) ListAdoptions(ctx context.Context) ([]models.Adoption, error) {
	if m.listAdoptionsFn != nil {
		return m.listAdoptionsFn(ctx)
	}
	return nil, nil
}

func (m *mockAdoptionRepository) GetAdoption(ctx context.Context, id int64) (models.Adoption, error) {
	if m.getAdoptionFn != nil {
		return m.getAdoptionFn(ctx, id)
	}
	return models.Adoption{ID: id, Status: models.AdoptionAvailable}, nil
}

func (m *mockAdoptionRepository) CreateAdoption(ctx context.Context, a models.Adoption) (models.Adoption, error) {
	if m.createAdoptionFn != nil {
		return m.createAdoptionFn(ctx, a)
	}
	return a, nil
}

func (m *mockAdoptionRepository) UpdateAdoption(ctx context.Context, id int64, fields map[string]any) error {
	if m.updateAdoptionFn != nil {
		return m.updateAdoptionFn(ctx, id, fields)
	}
	return nil
}

func (m *mockAdoptionRepository) DeleteAdoption(ctx context.Context, id int64) error {
	if m.deleteAdoptionFn != nil {
		return m.deleteAdoptionFn(ctx, id)
	}
	return nil
}

func (m *mockAdoptionRepository) SetAdoptionStatus(ctx context.Context, id int64, status string) error {
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockAdoptionRepository) ListByOwnerWithRequests(ctx context.Context, ownerID int64) ([]models.AdoptionWithRequests, error) {
	if m.listOwnerFn != nil {
		return m.listOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockAdoptionRepository) CreateRequest(ctx context.Context, r models.AdoptionRequest) (models.AdoptionRequest, error) {
	if m.createRequestFn != nil {
		return m.createRequestFn(ctx, r)
	}
	return r, nil
}

func (m *mockAdoptionRepository) GetRequest(ctx context.Context, id int64) (models.AdoptionRequest, error) {
	if m.getRequestFn != nil {
		return m.getRequestFn(ctx, id)
	}
	return models.AdoptionRequest{ID: id}, nil
}

func (m *mockAdoptionRepository) ListRequests(ctx context.Context) ([]models.AdoptionRequest, error) {
	if m.listRequestsFn != nil {
		return m.listRequestsFn(ctx)
	}
	return nil, nil
}

func (m *mockAdoptionRepository) ListRequestsByAdoption(ctx context.Context, adoptionID int64) ([]models.AdoptionRequest, error) {
	if m.listByAdoptionFn != nil {
		return m.listByAdoptionFn(ctx, adoptionID)
	}
	return nil, nil
}

func (m *mockAdoptionRepository) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.AdoptionRequest, error) {
	if m.listByRequesterFn != nil {
		return m.listByRequesterFn(ctx, requesterID)
	}
	return nil, nil
}

func (m *mockAdoptionRepository) SetRequestStatus(ctx context.Context, id int64, status string) error {
	if m.setRequestStatusFn != nil {
		return m.setRequestStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockAdoptionRepository) DeleteRequest(ctx context.Context, id int64) error {
	if m.deleteRequestFn != nil {
		return m.deleteRequestFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ReminderRepository
// ─────────────────────────────────────────────

type mockReminderRepository struct {
	listRemindersFn func(ctx context.Context) ([]models.Reminder, error)
	listByOwnerFn   func(ctx context.Context, ownerID int64) ([]models.Reminder, error)
	getReminderFn   func(ctx context.Context, id int64) (models.Reminder, error)
	createFn        func(ctx context.Context, r models.Reminder) (models.Reminder, error)
	updateFn        func(ctx context.Context, id int64, fields map[string]any) error
	deleteFn        func(ctx context.Context, id int64) error
	listTypesFn     func(ctx context.Context) ([]models.ReminderType, error)
	listDueFn       func(ctx context.Context, ownerID int64) ([]models.DueReminder, error)
	markOverdueFn   func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockReminderRepository) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	if m.listRemindersFn != nil {
		return m.listRemindersFn(ctx)
	}
	return nil, nil
}

func (m *mockReminderRepository) ListRemindersByOwner(ctx context.Context, ownerID int64) ([]models.Reminder, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockReminderRepository) GetReminder(ctx context.Context, id int64) (models.Reminder, error) {
	if m.getReminderFn != nil {
		return m.getReminderFn(ctx, id)
	}
	return models.Reminder{ID: id}, nil
}

func (m *mockReminderRepository) CreateReminder(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	if m.createFn != nil {
		return m.createFn(ctx, r)
	}
	return r, nil
}

func (m *mockReminderRepository) UpdateReminder(ctx context.Context, id int64, fields map[string]any) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}

func (m *mockReminderRepository) DeleteReminder(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockReminderRepository) ListTypes(ctx context.Context) ([]models.ReminderType, error) {
	if m.listTypesFn != nil {
		return m.listTypesFn(ctx)
	}
	return nil, nil
}

func (m *mockReminderRepository) ListDueReminders(ctx context.Context, ownerID int64) ([]models.DueReminder, error) {
	if m.listDueFn != nil {
		return m.listDueFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockReminderRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	if m.markOverdueFn != nil {
		return m.markOverdueFn(ctx, now)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.NotificationRepository
// ─────────────────────────────────────────────

type mockNotificationRepository struct {
	listByUserFn func(ctx context.Context, userID int64) ([]models.Notification, error)
	createFn     func(ctx context.Context, n models.Notification) (models.Notification, error)
	markReadFn   func(ctx context.Context, id, userID int64) error
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockNotificationRepository) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	if m.createFn != nil {
		return m.createFn(ctx, n)
	}
	return n, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, id, userID)
	}
	return nil
}
