package services_test

import (
	"testing"

	"fitpro_backend/internal/email"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) services.AuthService {
	return services.NewAuthService(
		db,
		repositories.NewUserRepository(db),
		repositories.NewProfileRepository(db),
		&email.NoopProvider{},
	)
}

func registerRequest(username string, role models.UserRole) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  username,
		Email:     username + "@test.com",
		Password:  "password123",
		Role:      role,
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestRegister_CreatesUserWithMemberProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(registerRequest("alice", models.UserRoleMember))
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, models.UserRoleMember, resp.Role)
	assert.True(t, resp.IsActive)

	var profile models.MemberProfile
	require.NoError(t, db.Where("user_id = ?", resp.ID).First(&profile).Error)
}

func TestRegister_CreatesTrainerProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(registerRequest("coach", models.UserRoleTrainer))
	require.NoError(t, err)

	var profile models.TrainerProfile
	require.NoError(t, db.Where("user_id = ?", resp.ID).First(&profile).Error)
}

func TestRegister_DuplicateUsernameRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(registerRequest("bob", models.UserRoleMember))
	require.NoError(t, err)

	dup := registerRequest("bob", models.UserRoleMember)
	dup.Email = "different@test.com"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(registerRequest("carol", models.UserRoleMember))
	require.NoError(t, err)

	dup := registerRequest("carol2", models.UserRoleMember)
	dup.Email = "carol@test.com"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := registerRequest("dave", models.UserRoleMember)
	req.Password = "12345"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	createUser(t, db, "erin", models.UserRoleMember)

	resp, err := svc.Login(&dto.LoginRequest{Username: "erin", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "erin", resp.User.Username)
}

func TestLogin_FailureSignalsAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	createUser(t, db, "frank", models.UserRoleMember)

	_, badPassErr := svc.Login(&dto.LoginRequest{Username: "frank", Password: "wrong"})
	_, noUserErr := svc.Login(&dto.LoginRequest{Username: "nobody", Password: "password123"})

	assert.ErrorIs(t, badPassErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, noUserErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, badPassErr.Error(), noUserErr.Error())
}

func TestLogin_DeactivatedUserRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	user := createUser(t, db, "gone", models.UserRoleMember)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err := svc.Login(&dto.LoginRequest{Username: "gone", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword_RequiresCurrentPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	user := createUser(t, db, "harry", models.UserRoleMember)

	err := svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Username: "harry", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestResetPassword_OverwritesByEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	createUser(t, db, "iris", models.UserRoleMember)

	err := svc.ResetPassword(&dto.ResetPasswordRequest{
		Email:       "iris@test.com",
		NewPassword: "resetpass",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Username: "iris", Password: "resetpass"})
	assert.NoError(t, err)
}
