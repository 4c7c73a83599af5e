package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/models"
	"golang.org/x/crypto/bcrypt"
)

// defaultActivityPageSize caps the audit listing when the caller names no
// limit.
const defaultActivityPageSize = 50

// accountService implements [AccountService]: the admin user-management
// surface and the superadmin-only admin CRUD, with the protection matrix
// around superadmin accounts.
type accountService struct {
	userRepository     store.UserRepository
	petRepository      store.PetRepository
	adoptionRepository store.AdoptionRepository
	activity           store.ActivityRepository
	logger             *logger.Logger
}

// NewAccountService constructs an [AccountService].
func NewAccountService(users store.UserRepository, pets store.PetRepository, adoptions store.AdoptionRepository, activity store.ActivityRepository, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository:     users,
		petRepository:      pets,
		adoptionRepository: adoptions,
		activity:           activity,
		logger:             logger,
	}
}

// ListUserReports returns the admin user listing with per-account pet and
// adoption counters.
func (s *accountService) ListUserReports(ctx context.Context) ([]models.UserReport, error) {
	return s.userRepository.ListUserReports(ctx)
}

// GetUserDetails assembles the full admin inspection view of one account:
// profile, owned pets, published listings with request counts and aggregate
// statistics.
func (s *accountService) GetUserDetails(ctx context.Context, id int64) (models.UserDetails, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.UserDetails{}, err
	}

	pets, err := s.petRepository.ListPetsByOwner(ctx, id)
	if err != nil {
		return models.UserDetails{}, err
	}

	adoptions, err := s.adoptionRepository.ListByOwnerWithRequests(ctx, id)
	if err != nil {
		return models.UserDetails{}, err
	}

	stats, err := s.userRepository.GetUserStatistics(ctx, id)
	if err != nil {
		return models.UserDetails{}, err
	}

	return models.UserDetails{
		Info:       user,
		Pets:       pets,
		Adoptions:  adoptions,
		Statistics: stats,
	}, nil
}

// CountUsersByRole returns the platform account totals per role for the
// admin dashboard.
func (s *accountService) CountUsersByRole(ctx context.Context) (map[models.Role]int, error) {
	return s.userRepository.CountByRole(ctx)
}

// UserActivity returns the most recent audit records of one account, newest
// first. A limit of zero or less falls back to the default page size.
func (s *accountService) UserActivity(ctx context.Context, id int64, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultActivityPageSize
	}

	if _, err := s.userRepository.FindUserByID(ctx, id); err != nil {
		return nil, err
	}

	return s.activity.ListByUser(ctx, id, limit)
}

// CreateUser creates an account on behalf of an admin. Creating an admin
// account demands a superadmin actor; a second superadmin can never be
// created.
func (s *accountService) CreateUser(ctx context.Context, actor models.Session, in RegisterInput, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	if !role.Valid() {
		return models.User{}, fmt.Errorf("%w: unknown role", ErrInvalidDataProvided)
	}
	if role != models.RoleUser && actor.Role != models.RoleSuperadmin {
		return models.User{}, ErrAdminRequiresSuperadmin
	}
	if role == models.RoleSuperadmin {
		return models.User{}, ErrSuperadminExists
	}
	if err := validateRegistration(in); err != nil {
		return models.User{}, err
	}
	if err := s.userRepository.CheckConflicts(ctx, in.Email, in.Username, in.DocumentNumber); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		UUID:           uuid.NewString(),
		Username:       in.Username,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Role:           role,
	})
	if err != nil {
		log.Err(err).Str("email", in.Email).Msg("admin user creation ended with error")
		return models.User{}, err
	}

	s.audit(ctx, actor.ID, "admin_create_user", created.ID)

	return created, nil
}

// UpdateUser applies a partial admin edit. Superadmin targets are immutable
// through this path; promotion to admin or superadmin demands a superadmin
// actor, and promotion to superadmin is always refused.
func (s *accountService) UpdateUser(ctx context.Context, actor models.Session, id int64, in UserUpdateInput) error {
	target, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperadmin {
		return ErrSuperadminProtected
	}

	fields := make(map[string]any)
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Role != nil {
		role := *in.Role
		if !role.Valid() {
			return fmt.Errorf("%w: unknown role", ErrInvalidDataProvided)
		}
		if role == models.RoleSuperadmin {
			return ErrSuperadminExists
		}
		if role != target.Role && actor.Role != models.RoleSuperadmin {
			return ErrAdminRequiresSuperadmin
		}
		fields["role"] = role
	}
	if in.Password != nil {
		if err := validatePasswordStrength(*in.Password); err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("password hashing failed: %w", err)
		}
		fields["password_hash"] = string(hash)
	}

	if err := s.userRepository.UpdateUser(ctx, id, fields); err != nil {
		return err
	}

	s.audit(ctx, actor.ID, "admin_update_user", id)

	return nil
}

// DeleteUser removes an account. Superadmin targets are protected and an
// actor may never delete itself.
func (s *accountService) DeleteUser(ctx context.Context, actor models.Session, id int64) error {
	if actor.ID == id {
		return ErrCannotDeleteSelf
	}

	target, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperadmin {
		return ErrSuperadminProtected
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.audit(ctx, actor.ID, "admin_delete_user", id)

	return nil
}

// ListAdmins returns the admin and superadmin accounts, superadmins first.
func (s *accountService) ListAdmins(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListAdmins(ctx)
}

// CreateAdmin creates an admin account. Only superadmins may call it; admin
// emails live under the reserved domain; the admin password floor is 6
// characters.
func (s *accountService) CreateAdmin(ctx context.Context, actor models.Session, in AdminInput) (models.User, error) {
	if actor.Role != models.RoleSuperadmin {
		return models.User{}, ErrAdminRequiresSuperadmin
	}
	if err := validateAdminInput(in, true); err != nil {
		return models.User{}, err
	}

	if _, err := s.userRepository.FindUserByEmail(ctx, in.Email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		UUID:           uuid.NewString(),
		Username:       adminUsernameFromEmail(in.Email),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		DocumentNumber: in.DocumentNumber,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Role:           models.RoleAdmin,
	})
	if err != nil {
		return models.User{}, err
	}

	s.audit(ctx, actor.ID, "superadmin_create_admin", created.ID)

	return created, nil
}

// UpdateAdmin edits an admin account. Superadmin targets are protected;
// email uniqueness excludes the target itself.
func (s *accountService) UpdateAdmin(ctx context.Context, actor models.Session, id int64, in AdminInput) error {
	if actor.Role != models.RoleSuperadmin {
		return ErrAdminRequiresSuperadmin
	}

	target, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperadmin {
		return ErrSuperadminProtected
	}
	if target.Role != models.RoleAdmin {
		return ErrNotAnAdmin
	}
	if err := validateAdminInput(in, false); err != nil {
		return err
	}

	if in.Email != "" && in.Email != target.Email {
		if other, err := s.userRepository.FindUserByEmail(ctx, in.Email); err == nil && other.ID != id {
			return store.ErrEmailAlreadyExists
		} else if err != nil && !errors.Is(err, store.ErrUserNotFound) {
			return err
		}
	}

	fields := make(map[string]any)
	if in.FirstName != "" {
		fields["first_name"] = in.FirstName
	}
	if in.LastName != "" {
		fields["last_name"] = in.LastName
	}
	if in.Phone != "" {
		fields["phone"] = in.Phone
	}
	if in.DocumentNumber != "" {
		fields["document_number"] = in.DocumentNumber
	}
	if in.Email != "" {
		fields["email"] = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("password hashing failed: %w", err)
		}
		fields["password_hash"] = string(hash)
	}

	if err := s.userRepository.UpdateUser(ctx, id, fields); err != nil {
		return err
	}

	s.audit(ctx, actor.ID, "superadmin_update_admin", id)

	return nil
}

// DeleteAdmin removes an admin account. The actor may not delete itself and
// the target must currently hold the admin role.
func (s *accountService) DeleteAdmin(ctx context.Context, actor models.Session, id int64) error {
	if actor.Role != models.RoleSuperadmin {
		return ErrAdminRequiresSuperadmin
	}
	if actor.ID == id {
		return ErrCannotDeleteSelf
	}

	target, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperadmin {
		return ErrSuperadminProtected
	}
	if target.Role != models.RoleAdmin {
		return ErrNotAnAdmin
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.audit(ctx, actor.ID, "superadmin_delete_admin", id)

	return nil
}

// audit appends an activity record referencing the affected account;
// failures are logged and swallowed.
func (s *accountService) audit(ctx context.Context, actorID int64, action string, targetID int64) {
	meta, _ := json.Marshal(map[string]int64{"target_id": targetID})
	if err := s.activity.Insert(ctx, actorID, action, meta); err != nil {
		logger.FromContext(ctx).Err(err).Str("action", action).Msg("activity record insert failed")
	}
}

// validateAdminInput applies the admin account rule set. requirePassword is
// set on create; update treats an empty password as "leave unchanged".
func validateAdminInput(in AdminInput, requirePassword bool) error {
	if in.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidDataProvided)
	}
	if !strings.HasSuffix(strings.ToLower(in.Email), reservedEmailDomain) {
		return fmt.Errorf("%w: admin email must use the %s domain", ErrInvalidDataProvided, reservedEmailDomain)
	}
	if requirePassword && in.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidDataProvided)
	}
	if in.Password != "" && len(in.Password) < 6 {
		return fmt.Errorf("%w: password must have at least 6 characters", ErrInvalidDataProvided)
	}
	if requirePassword && (in.FirstName == "" || in.LastName == "") {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidDataProvided)
	}

	return nil
}

// adminUsernameFromEmail derives the account handle from the local part of
// the admin email.
func adminUsernameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
