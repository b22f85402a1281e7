package services_test

import (
	"testing"

	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileService(db *gorm.DB) services.ProfileService {
	return services.NewProfileService(
		repositories.NewProfileRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestSaveMemberProfile_UpsertsByUserID(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	member := createUser(t, db, "pm1", models.UserRoleMember)

	first, err := svc.SaveMemberProfile(member.ID, &dto.SaveMemberProfileRequest{
		Height: 180, Weight: 82, FitnessGoals: "strength",
	})
	require.NoError(t, err)

	second, err := svc.SaveMemberProfile(member.ID, &dto.SaveMemberProfileRequest{
		Height: 180, Weight: 79, FitnessGoals: "endurance",
	})
	require.NoError(t, err)
	assert.Equal(t, 79.0, second.Weight)

	// Still a single row for the user.
	var count int64
	db.Model(&models.MemberProfile{}).Where("user_id = ?", member.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	stored, err := svc.GetMemberProfile(member.ID)
	require.NoError(t, err)
	assert.Equal(t, first.UserID, stored.UserID)
	assert.Equal(t, "endurance", stored.FitnessGoals)
}

func TestSaveTrainerProfile_RoleMismatchRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	member := createUser(t, db, "pm2", models.UserRoleMember)

	_, err := svc.SaveTrainerProfile(member.ID, &dto.SaveTrainerProfileRequest{Bio: "nope"})
	assert.Error(t, err)
}

func TestGetMemberProfile_MissingYieldsEmptyRecord(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	member := createUser(t, db, "pm3", models.UserRoleMember)

	profile, err := svc.GetMemberProfile(member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, profile.UserID)
	assert.Zero(t, profile.ID)
}
