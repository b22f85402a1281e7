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

func newClassService(db *gorm.DB) services.ClassService {
	return services.NewClassService(
		repositories.NewClassRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestEnroll_CapacityAndDuplicateGuards(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	m1 := createUser(t, db, "cm1", models.UserRoleMember)
	m2 := createUser(t, db, "cm2", models.UserRoleMember)

	class, err := svc.Create(&dto.SaveClassRequest{Name: "Spin", Capacity: 1, Duration: 45})
	require.NoError(t, err)

	_, err = svc.Enroll(m1.ID, class.ID)
	require.NoError(t, err)

	// Same member twice.
	_, err = svc.Enroll(m1.ID, class.ID)
	assert.Error(t, err)

	// Over capacity.
	_, err = svc.Enroll(m2.ID, class.ID)
	assert.Error(t, err)
}

func TestEnroll_InactiveClassRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	member := createUser(t, db, "cm3", models.UserRoleMember)

	class, err := svc.Create(&dto.SaveClassRequest{Name: "Retired", Duration: 30})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(class.ID))

	_, err = svc.Enroll(member.ID, class.ID)
	assert.Error(t, err)

	active, err := svc.GetAllActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestClass_ScheduleMustBeValidJSON(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)

	_, err := svc.Create(&dto.SaveClassRequest{
		Name:     "Broken",
		Duration: 30,
		Schedule: []byte("mon 9am"),
	})
	assert.Error(t, err)

	class, err := svc.Create(&dto.SaveClassRequest{
		Name:     "Morning Yoga",
		Duration: 60,
		Schedule: []byte(`{"mon":"09:00","wed":"09:00"}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mon":"09:00","wed":"09:00"}`, string(class.Schedule))

	// Omitted schedule stays empty rather than storing "null"-ish text.
	bare, err := svc.Create(&dto.SaveClassRequest{Name: "Unscheduled", Duration: 30})
	require.NoError(t, err)
	assert.Empty(t, bare.Schedule)
}

func TestClass_TrainerAssignmentValidated(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	member := createUser(t, db, "cm4", models.UserRoleMember)
	trainer := createUser(t, db, "ct1", models.UserRoleTrainer)

	_, err := svc.Create(&dto.SaveClassRequest{Name: "Bad", TrainerID: &member.ID, Duration: 30})
	assert.Error(t, err)

	class, err := svc.Create(&dto.SaveClassRequest{Name: "Good", TrainerID: &trainer.ID, Duration: 30})
	require.NoError(t, err)

	byTrainer, err := svc.GetByTrainerID(trainer.ID)
	require.NoError(t, err)
	require.Len(t, byTrainer, 1)
	assert.Equal(t, class.ID, byTrainer[0].ID)
}
