package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and the admin reporting queries against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → one of the "already exists"
//     sentinels, picked by the violated constraint name.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.UUID, user.Username, user.FirstName, user.LastName, user.Phone,
		user.DocumentType, user.DocumentNumber, user.Email, user.PasswordHash, user.Role)

	var saved models.User
	if err := row.Scan(&saved.ID, &saved.UUID, &saved.Username, &saved.FirstName, &saved.LastName,
		&saved.Phone, &saved.DocumentType, &saved.DocumentNumber, &saved.Email, &saved.PasswordHash,
		&saved.Role, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, uniqueViolationSentinel(err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// FindUserByEmail retrieves the account registered under email.
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves the account with the given internal id.
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// FindUserByUUID retrieves the account with the given provisioning uuid.
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) FindUserByUUID(ctx context.Context, uuid string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUUID", findUserByUUID, uuid)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&found.ID, &found.UUID, &found.Username, &found.FirstName, &found.LastName,
		&found.Phone, &found.DocumentType, &found.DocumentNumber, &found.Email, &found.PasswordHash,
		&found.Role, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", fn).Msg("error: scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// CheckConflicts reports registration uniqueness violations before the
// INSERT is attempted, so that callers can answer with a field-specific
// conflict message. Returns nil when email, username and document are all
// free.
func (r *userRepository) CheckConflicts(ctx context.Context, email, username, document string) error {
	log := logger.FromContext(ctx)

	var emailTaken, usernameTaken, documentTaken bool
	row := r.db.QueryRowContext(ctx, findUserConflicts, email, username, document)
	if err := row.Scan(&emailTaken, &usernameTaken, &documentTaken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		log.Err(err).Str("func", "*userRepository.CheckConflicts").Msg("error: scanning conflict row")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	switch {
	case emailTaken:
		return ErrEmailAlreadyExists
	case usernameTaken:
		return ErrUsernameAlreadyExists
	default:
		return ErrDocumentAlreadyExists
	}
}

// ListAdmins returns every admin and superadmin account, superadmins first.
func (r *userRepository) ListAdmins(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAdmins)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListAdmins").Msg("error: querying admins")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var admins []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.UUID, &u.Username, &u.FirstName, &u.LastName,
			&u.Phone, &u.DocumentType, &u.DocumentNumber, &u.Email, &u.PasswordHash,
			&u.Role, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListAdmins").Msg("error: scanning admin row")
			return nil, err
		}
		admins = append(admins, u)
	}

	return admins, rows.Err()
}

// ListUserReports returns the admin user listing: one row per account with
// pet and adoption counters, ordered superadmins, admins, then users by
// registration date.
func (r *userRepository) ListUserReports(ctx context.Context) ([]models.UserReport, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserReports)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUserReports").Msg("error: querying user reports")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var reports []models.UserReport
	for rows.Next() {
		var rep models.UserReport
		if err := rows.Scan(&rep.ID, &rep.Username, &rep.FirstName, &rep.LastName,
			&rep.Email, &rep.Role, &rep.RegisteredAt, &rep.TotalPets, &rep.TotalAdoptions); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUserReports").Msg("error: scanning report row")
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

// CountByRole returns the number of accounts per role.
func (r *userRepository) CountByRole(ctx context.Context) (map[models.Role]int, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, countUsersByRole)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountByRole").Msg("error: querying role counts")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Role]int)
	for rows.Next() {
		var role models.Role
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		counts[role] = n
	}

	return counts, rows.Err()
}

// UpdateUser applies a partial update built from fields, a column → value
// map assembled by the service layer. Unknown accounts yield
// [ErrUserNotFound]; unique violations map to the per-column sentinels.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("users").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: executing update")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return uniqueViolationSentinel(err)
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteUser removes the account with the given id.
// Returns [ErrUserNotFound] when no row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}

	return nil
}

// GetUserStatistics computes ownership and adoption counters for one account.
func (r *userRepository) GetUserStatistics(ctx context.Context, id int64) (models.UserStatistics, error) {
	log := logger.FromContext(ctx)

	var stats models.UserStatistics
	row := r.db.QueryRowContext(ctx, userStatistics, id)
	if err := row.Scan(&stats.TotalPets, &stats.TotalAdoptions, &stats.TotalAdoptionsOpen,
		&stats.TotalAdoptionsAdopted, &stats.TotalRequestsReceived); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserStatistics").Msg("error: scanning statistics")
		return models.UserStatistics{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return stats, nil
}
