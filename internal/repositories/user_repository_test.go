package repositories_test

import (
	"testing"

	"fitpro_backend/internal/database"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newUser(username string, role models.UserRole) *models.User {
	return &models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: "x",
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
		IsActive:     true,
	}
}

func TestUserRepository_CreateRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	require.NoError(t, repo.Create(newUser("dup", models.UserRoleMember)))

	sameName := newUser("dup", models.UserRoleMember)
	sameName.Email = "other@test.com"
	assert.ErrorIs(t, repo.Create(sameName), repositories.ErrUserAlreadyExists)

	sameEmail := newUser("dup2", models.UserRoleMember)
	sameEmail.Email = "dup@test.com"
	assert.ErrorIs(t, repo.Create(sameEmail), repositories.ErrUserAlreadyExists)
}

func TestUserRepository_DeactivateIsSoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	user := newUser("retiree", models.UserRoleTrainer)
	require.NoError(t, repo.Create(user))
	require.NoError(t, repo.Deactivate(user.ID))

	// Gone from role listings.
	active, err := repo.FindAllByRole(models.UserRoleTrainer)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Still resolvable by id for historical rows.
	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
	assert.Equal(t, "retiree", found.Username)
}

func TestUserRepository_DeactivateUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	assert.ErrorIs(t, repo.Deactivate(9999), repositories.ErrUserNotFound)
}

func TestUserRepository_FindAllByRoleOrdersByCreation(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(newUser(name, models.UserRoleMember)))
	}
	require.NoError(t, repo.Create(newUser("coach", models.UserRoleTrainer)))

	members, err := repo.FindAllByRole(models.UserRoleMember)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "first", members[0].Username)

	count, err := repo.CountByRole(models.UserRoleMember)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestUserRepository_FindByUsernameAndEmail(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	require.NoError(t, repo.Create(newUser("finder", models.UserRoleMember)))

	byName, err := repo.FindByUsername("finder")
	require.NoError(t, err)
	byEmail, err := repo.FindByEmail("finder@test.com")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byEmail.ID)

	_, err = repo.FindByUsername("missing")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
