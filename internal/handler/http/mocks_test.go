package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/service"
	"github.com/happytails/happytails/internal/session"
	"github.com/happytails/happytails/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn       func(ctx context.Context, in service.RegisterInput) (models.User, error)
	loginFn          func(ctx context.Context, email, password string) (service.LoginResult, error)
	verifyMfaLoginFn func(ctx context.Context, userID int64, code, challenge string) (models.User, error)
	getUserByIDFn    func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, in service.RegisterInput) (models.User, error) {
	return m.registerFn(ctx, in)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (service.LoginResult, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) VerifyMfaLogin(ctx context.Context, userID int64, code, challenge string) (models.User, error) {
	return m.verifyMfaLoginFn(ctx, userID, code, challenge)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.getUserByIDFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock: service.MfaService
// ─────────────────────────────────────────────

type mockMfaService struct {
	setupFn       func(ctx context.Context, userUUID string) (string, error)
	verifySetupFn func(ctx context.Context, userUUID, code string) error
}

func (m *mockMfaService) Setup(ctx context.Context, userUUID string) (string, error) {
	return m.setupFn(ctx, userUUID)
}

func (m *mockMfaService) VerifySetup(ctx context.Context, userUUID, code string) error {
	return m.verifySetupFn(ctx, userUUID, code)
}

// ─────────────────────────────────────────────
// Mock: service.AccountService
// ─────────────────────────────────────────────

type mockAccountService struct {
	listUserReportsFn  func(ctx context.Context) ([]models.UserReport, error)
	getUserDetailsFn   func(ctx context.Context, id int64) (models.UserDetails, error)
	createUserFn       func(ctx context.Context, actor models.Session, in service.RegisterInput, role models.Role) (models.User, error)
	updateUserFn       func(ctx context.Context, actor models.Session, id int64, in service.UserUpdateInput) error
	deleteUserFn       func(ctx context.Context, actor models.Session, id int64) error
	countUsersByRoleFn func(ctx context.Context) (map[models.Role]int, error)
	userActivityFn     func(ctx context.Context, id int64, limit int) ([]models.ActivityEntry, error)
	listAdminsFn       func(ctx context.Context) ([]models.User, error)
	createAdminFn      func(ctx context.Context, actor models.Session, in service.AdminInput) (models.User, error)
	updateAdminFn      func(ctx context.Context, actor models.Session, id int64, in service.AdminInput) error
	deleteAdminFn      func(ctx context.Context, actor models.Session, id int64) error
}

func (m *mockAccountService) ListUserReports(ctx context.Context) ([]models.UserReport, error) {
	return m.listUserReportsFn(ctx)
}

func (m *mockAccountService) GetUserDetails(ctx context.Context, id int64) (models.UserDetails, error) {
	return m.getUserDetailsFn(ctx, id)
}

func (m *mockAccountService) CreateUser(ctx context.Context, actor models.Session, in service.RegisterInput, role models.Role) (models.User, error) {
	return m.createUserFn(ctx, actor, in, role)
}

func (m *mockAccountService) UpdateUser(ctx context.Context, actor models.Session, id int64, in service.UserUpdateInput) error {
	return m.updateUserFn(ctx, actor, id, in)
}

func (m *mockAccountService) DeleteUser(ctx context.Context, actor models.Session, id int64) error {
	return m.deleteUserFn(ctx, actor, id)
}

func (m *mockAccountService) CountUsersByRole(ctx context.Context) (map[models.Role]int, error) {
	return m.countUsersByRoleFn(ctx)
}

func (m *mockAccountService) UserActivity(ctx context.Context, id int64, limit int) ([]models.ActivityEntry, error) {
	return m.userActivityFn(ctx, id, limit)
}

func (m *mockAccountService) ListAdmins(ctx context.Context) ([]models.User, error) {
	return m.listAdminsFn(ctx)
}

func (m *mockAccountService) CreateAdmin(ctx context.Context, actor models.Session, in service.AdminInput) (models.User, error) {
	return m.createAdminFn(ctx, actor, in)
}

func (m *mockAccountService) UpdateAdmin(ctx context.Context, actor models.Session, id int64, in service.AdminInput) error {
	return m.updateAdminFn(ctx, actor, id, in)
}

func (m *mockAccountService) DeleteAdmin(ctx context.Context, actor models.Session, id int64) error {
	return m.deleteAdminFn(ctx, actor, id)
}

// ─────────────────────────────────────────────
// Mock: service.PetService
// ─────────────────────────────────────────────

type mockPetService struct {
	listPetsFn    func(ctx context.Context) ([]models.Pet, error)
	listPetRefsFn func(ctx context.Context) ([]models.PetRef, error)
	createPetFn   func(ctx context.Context, pet models.Pet) (models.Pet, error)
	updatePetFn   func(ctx context.Context, id int64, pet models.Pet) error
	deletePetFn   func(ctx context.Context, id int64) error
}

func (m *mockPetService) ListPets(ctx context.Context) ([]models.Pet, error) {
	return m.listPetsFn(ctx)
}

func (m *mockPetService) ListPetRefs(ctx context.Context) ([]models.PetRef, error) {
	return m.listPetRefsFn(ctx)
}

func (m *mockPetService) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	return m.createPetFn(ctx, pet)
}

func (m *mockPetService) UpdatePet(ctx context.Context, id int64, pet models.Pet) error {
	return m.updatePetFn(ctx, id, pet)
}

func (m *mockPetService) DeletePet(ctx context.Context, id int64) error {
	return m.deletePetFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock: service.AdoptionService
// ─────────────────────────────────────────────

type mockAdoptionService struct {
	listAdoptionsFn           func(ctx context.Context) ([]models.Adoption, error)
	createAdoptionFn          func(ctx context.Context, a models.Adoption) (models.Adoption, error)
	updateAdoptionFn          func(ctx context.Context, id int64, a models.Adoption) error
	deleteAdoptionFn          func(ctx context.Context, id int64) error
	fileRequestFn             func(ctx context.Context, adoptionID, requesterID int64, message string) (models.AdoptionRequest, error)
	listRequestsFn            func(ctx context.Context) ([]models.AdoptionRequest, error)
	listRequestsByAdoptionFn  func(ctx context.Context, adoptionID int64) ([]models.AdoptionRequest, error)
	listRequestsByRequesterFn func(ctx context.Context, requesterID int64) ([]models.AdoptionRequest, error)
	setRequestStatusFn        func(ctx context.Context, id int64, status string) error
	deleteRequestFn           func(ctx context.Context, id int64) error
}

func (m *mockAdoptionService) ListAdoptions(ctx context.Context) ([]models.Adoption, error) {
	return m.listAdoptionsFn(ctx)
}

func (m *mockAdoptionService) CreateAdoption(ctx context.Context, a models.Adoption) (models.Adoption, error) {
	return m.createAdoptionFn(ctx, a)
}

func (m *mockAdoptionService) UpdateAdoption(ctx context.Context, id int64, a models.Adoption) error {
	return m.updateAdoptionFn(ctx, id, a)
}

func (m *mockAdoptionService) DeleteAdoption(ctx context.Context, id int64) error {
	return m.deleteAdoptionFn(ctx, id)
}

func (m *mockAdoptionService) FileRequest(ctx context.Context, adoptionID, requesterID int64, message string) (models.AdoptionRequest, error) {
	return m.fileRequestFn(ctx, adoptionID, requesterID, message)
}

func (m *mockAdoptionService) ListRequests(ctx context.Context) ([]models.AdoptionRequest, error) {
	return m.listRequestsFn(ctx)
}

func (m *mockAdoptionService) ListRequestsByAdoption(ctx context.Context, adoptionID int64) ([]models.AdoptionRequest, error) {
	return m.listRequestsByAdoptionFn(ctx, adoptionID)
}

func (m *mockAdoptionService) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.AdoptionRequest, error) {
	return m.listRequestsByRequesterFn(ctx, requesterID)
}

func (m *mockAdoptionService) SetRequestStatus(ctx context.Context, id int64, status string) error {
	return m.setRequestStatusFn(ctx, id, status)
}

func (m *mockAdoptionService) DeleteRequest(ctx context.Context, id int64) error {
	return m.deleteRequestFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock: service.ReminderService
// ─────────────────────────────────────────────

type mockReminderService struct {
	listRemindersFn        func(ctx context.Context) ([]models.Reminder, error)
	listRemindersByOwnerFn func(ctx context.Context, ownerID int64) ([]models.Reminder, error)
	getReminderFn          func(ctx context.Context, id int64) (models.Reminder, error)
	createReminderFn       func(ctx context.Context, r models.Reminder) (models.Reminder, error)
	updateReminderFn       func(ctx context.Context, id int64, r models.Reminder) error
	deleteReminderFn       func(ctx context.Context, id int64) error
	listTypesFn            func(ctx context.Context) ([]models.ReminderType, error)
}

func (m *mockReminderService) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	return m.listRemindersFn(ctx)
}

func (m *mockReminderService) ListRemindersByOwner(ctx context.Context, ownerID int64) ([]models.Reminder, error) {
	return m.listRemindersByOwnerFn(ctx, ownerID)
}

func (m *mockReminderService) GetReminder(ctx context.Context, id int64) (models.Reminder, error) {
	return m.getReminderFn(ctx, id)
}

func (m *mockReminderService) CreateReminder(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	return m.createReminderFn(ctx, r)
}

func (m *mockReminderService) UpdateReminder(ctx context.Context, id int64, r models.Reminder) error {
	return m.updateReminderFn(ctx, id, r)
}

func (m *mockReminderService) DeleteReminder(ctx context.Context, id int64) error {
	return m.deleteReminderFn(ctx, id)
}

func (m *mockReminderService) ListTypes(ctx context.Context) ([]models.ReminderType, error) {
	return m.listTypesFn(ctx)
}

// ─────────────────────────────────────────────
// Mock: service.NotificationService
// ─────────────────────────────────────────────

type mockNotificationService struct {
	feedFn     func(ctx context.Context, userID int64) ([]models.FeedEntry, error)
	createFn   func(ctx context.Context, n models.Notification) (models.Notification, error)
	markReadFn func(ctx context.Context, id, userID int64) error
}

func (m *mockNotificationService) Feed(ctx context.Context, userID int64) ([]models.FeedEntry, error) {
	return m.feedFn(ctx, userID)
}

func (m *mockNotificationService) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	return m.createFn(ctx, n)
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id, userID int64) error {
	return m.markReadFn(ctx, id, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service set. Nil fields are
// fine as long as the exercised route never touches them.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = &service.Services{}
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// withSessionCookie attaches an encoded session cookie to the request.
func withSessionCookie(t *testing.T, req *http.Request, s models.Session) *http.Request {
	t.Helper()
	value, err := session.Encode(s)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})
	return req
}

// userSession is a convenience fixture for a regular account.
func userSession() models.Session {
	return models.Session{ID: 7, Email: "ana@example.com", Role: models.RoleUser, FirstName: "Ana", LastName: "García"}
}

func adminTestSession() models.Session {
	return models.Session{ID: 2, Email: "gestor@administrador.com", Role: models.RoleAdmin, FirstName: "Gestor", LastName: "Uno"}
}

func superadminTestSession() models.Session {
	return models.Session{ID: 1, Email: "root@administrador.com", Role: models.RoleSuperadmin, FirstName: "Root", LastName: "Admin"}
}

// sessionCookieFrom extracts the session cookie set on the response, if any.
func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}
