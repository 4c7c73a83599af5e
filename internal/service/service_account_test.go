package service

import (
	"context"
	"testing"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccountService(users *mockUserRepository) AccountService {
	return NewAccountService(users, &mockPetRepository{}, &mockAdoptionRepository{}, &mockActivityRepository{}, logger.Nop())
}

func adminSession() models.Session {
	return models.Session{ID: 2, Email: "admin@administrador.com", Role: models.RoleAdmin}
}

func superadminSession() models.Session {
	return models.Session{ID: 1, Email: "root@administrador.com", Role: models.RoleSuperadmin}
}

func TestUpdateUser_SuperadminTargetProtected(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Role: models.RoleSuperadmin}, nil
		},
		updateUserFn: func(context.Context, int64, map[string]any) error {
			t.Fatal("update must not reach storage for a superadmin target")
			return nil
		},
	}
	svc := newTestAccountService(users)

	name := "nuevo"
	err := svc.UpdateUser(context.Background(), superadminSession(), 1, UserUpdateInput{Username: &name})
	assert.ErrorIs(t, err, ErrSuperadminProtected)
}

func TestUpdateUser_PromotionRequiresSuperadmin(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Role: models.RoleUser}, nil
		},
	}
	svc := newTestAccountService(users)

	role := models.RoleAdmin
	err := svc.UpdateUser(context.Background(), adminSession(), 5, UserUpdateInput{Role: &role})
	assert.ErrorIs(t, err, ErrAdminRequiresSuperadmin)

	err = svc.UpdateUser(context.Background(), superadminSession(), 5, UserUpdateInput{Role: &role})
	assert.NoError(t, err)
}

func TestUpdateUser_NoSecondSuperadmin(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Role: models.RoleUser}, nil
		},
	}
	svc := newTestAccountService(users)

	role := models.RoleSuperadmin
	err := svc.UpdateUser(context.Background(), superadminSession(), 5, UserUpdateInput{Role: &role})
	assert.ErrorIs(t, err, ErrSuperadminExists)
}

func TestDeleteUser_GuardMatrix(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			if id == 1 {
				return models.User{ID: id, Role: models.RoleSuperadmin}, nil
			}
			return models.User{ID: id, Role: models.RoleUser}, nil
		},
	}
	svc := newTestAccountService(users)

	t.Run("self delete refused", func(t *testing.T) {
		err := svc.DeleteUser(context.Background(), adminSession(), 2)
		assert.ErrorIs(t, err, ErrCannotDeleteSelf)
	})

	t.Run("superadmin target refused", func(t *testing.T) {
		err := svc.DeleteUser(context.Background(), adminSession(), 1)
		assert.ErrorIs(t, err, ErrSuperadminProtected)
	})

	t.Run("regular target deleted", func(t *testing.T) {
		err := svc.DeleteUser(context.Background(), adminSession(), 5)
		assert.NoError(t, err)
	})
}

func TestCreateUser_AdminRoleNeedsSuperadmin(t *testing.T) {
	svc := newTestAccountService(&mockUserRepository{})

	_, err := svc.CreateUser(context.Background(), adminSession(), validRegistration(), models.RoleAdmin)
	assert.ErrorIs(t, err, ErrAdminRequiresSuperadmin)

	_, err = svc.CreateUser(context.Background(), superadminSession(), validRegistration(), models.RoleSuperadmin)
	assert.ErrorIs(t, err, ErrSuperadminExists)

	created, err := svc.CreateUser(context.Background(), adminSession(), validRegistration(), models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)
}

func TestCreateAdmin_Validation(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAccountService(users)

	valid := AdminInput{
		FirstName:      "Laura",
		LastName:       "Gomez",
		Email:          "laura@administrador.com",
		Password:       "clave123",
		DocumentNumber: "9876543",
	}

	t.Run("actor must be superadmin", func(t *testing.T) {
		_, err := svc.CreateAdmin(context.Background(), adminSession(), valid)
		assert.ErrorIs(t, err, ErrAdminRequiresSuperadmin)
	})

	t.Run("wrong email domain", func(t *testing.T) {
		in := valid
		in.Email = "laura@example.com"
		_, err := svc.CreateAdmin(context.Background(), superadminSession(), in)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("short password", func(t *testing.T) {
		in := valid
		in.Password = "abc12"
		_, err := svc.CreateAdmin(context.Background(), superadminSession(), in)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("success", func(t *testing.T) {
		created, err := svc.CreateAdmin(context.Background(), superadminSession(), valid)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, created.Role)
		assert.Equal(t, "laura", created.Username)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := &mockUserRepository{
			findByEmailFn: func(context.Context, string) (models.User, error) {
				return models.User{ID: 9}, nil
			},
		}
		_, err := newTestAccountService(dup).CreateAdmin(context.Background(), superadminSession(), valid)
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})
}

func TestDeleteAdmin_GuardMatrix(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			switch id {
			case 1:
				return models.User{ID: id, Role: models.RoleSuperadmin}, nil
			case 3:
				return models.User{ID: id, Role: models.RoleAdmin}, nil
			default:
				return models.User{ID: id, Role: models.RoleUser}, nil
			}
		},
	}
	svc := newTestAccountService(users)

	t.Run("actor must be superadmin", func(t *testing.T) {
		err := svc.DeleteAdmin(context.Background(), adminSession(), 3)
		assert.ErrorIs(t, err, ErrAdminRequiresSuperadmin)
	})

	t.Run("self delete refused", func(t *testing.T) {
		err := svc.DeleteAdmin(context.Background(), superadminSession(), 1)
		assert.ErrorIs(t, err, ErrCannotDeleteSelf)
	})

	t.Run("non-admin target refused", func(t *testing.T) {
		err := svc.DeleteAdmin(context.Background(), superadminSession(), 7)
		assert.ErrorIs(t, err, ErrNotAnAdmin)
	})

	t.Run("admin target deleted", func(t *testing.T) {
		err := svc.DeleteAdmin(context.Background(), superadminSession(), 3)
		assert.NoError(t, err)
	})
}

func TestGetUserDetails(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Username: "ana"}, nil
		},
		statisticsFn: func(context.Context, int64) (models.UserStatistics, error) {
			return models.UserStatistics{TotalPets: 2, TotalAdoptions: 1}, nil
		},
	}
	pets := &mockPetRepository{
		listByOwnerFn: func(context.Context, int64) ([]models.Pet, error) {
			return []models.Pet{{ID: 1}, {ID: 2}}, nil
		},
	}
	adoptions := &mockAdoptionRepository{
		listOwnerFn: func(context.Context, int64) ([]models.AdoptionWithRequests, error) {
			return []models.AdoptionWithRequests{{TotalRequests: 3}}, nil
		},
	}
	svc := NewAccountService(users, pets, adoptions, &mockActivityRepository{}, logger.Nop())

	details, err := svc.GetUserDetails(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "ana", details.Info.Username)
	assert.Len(t, details.Pets, 2)
	assert.Len(t, details.Adoptions, 1)
	assert.Equal(t, 2, details.Statistics.TotalPets)
}

func TestCountUsersByRole(t *testing.T) {
	users := &mockUserRepository{
		countByRoleFn: func(context.Context) (map[models.Role]int, error) {
			return map[models.Role]int{models.RoleUser: 9, models.RoleAdmin: 1}, nil
		},
	}
	svc := newTestAccountService(users)

	counts, err := svc.CountUsersByRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, counts[models.RoleUser])
	assert.Equal(t, 1, counts[models.RoleAdmin])
}

func TestUserActivity(t *testing.T) {
	t.Run("zero limit falls back to the default page size", func(t *testing.T) {
		activity := &mockActivityRepository{
			listFn: func(_ context.Context, userID int64, limit int) ([]models.ActivityEntry, error) {
				assert.Equal(t, int64(7), userID)
				assert.Equal(t, defaultActivityPageSize, limit)
				return []models.ActivityEntry{{ID: 1, UserID: 7, Action: "login"}}, nil
			},
		}
		svc := NewAccountService(&mockUserRepository{}, &mockPetRepository{}, &mockAdoptionRepository{}, activity, logger.Nop())

		entries, err := svc.UserActivity(context.Background(), 7, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "login", entries[0].Action)
	})

	t.Run("unknown account surfaces the lookup error", func(t *testing.T) {
		users := &mockUserRepository{
			findByIDFn: func(context.Context, int64) (models.User, error) {
				return models.User{}, store.ErrUserNotFound
			},
		}
		activity := &mockActivityRepository{
			listFn: func(context.Context, int64, int) ([]models.ActivityEntry, error) {
				t.Fatal("activity listing must not run for an unknown account")
				return nil, nil
			},
		}
		svc := NewAccountService(users, &mockPetRepository{}, &mockAdoptionRepository{}, activity, logger.Nop())

		_, err := svc.UserActivity(context.Background(), 99, 10)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
