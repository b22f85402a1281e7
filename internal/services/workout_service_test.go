package services_test

import (
	"encoding/json"
	"testing"

	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWorkoutService(db *gorm.DB) services.WorkoutService {
	return services.NewWorkoutService(
		repositories.NewWorkoutRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestWorkout_ExerciseSnapshotRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	member := createUser(t, db, "wm1", models.UserRoleMember)
	trainer := createUser(t, db, "wt1", models.UserRoleTrainer)

	entries := []models.ExerciseEntry{
		{Name: "Push-ups", Sets: "3", Reps: "10"},
		{Name: "Squats", Sets: "4", Reps: "12", Weight: "20kg", Rest: "90s", Notes: "slow tempo"},
	}

	created, err := svc.Create(trainer.ID, &dto.SaveWorkoutRequest{
		MemberID:  member.ID,
		Name:      "Strength A",
		Exercises: entries,
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entries, fetched.Exercises)
	assert.Equal(t, trainer.ID, fetched.TrainerID)
}

func TestWorkout_EmptyPlanIsEmptyListNotNull(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	member := createUser(t, db, "wm2", models.UserRoleMember)
	trainer := createUser(t, db, "wt2", models.UserRoleTrainer)

	created, err := svc.Create(trainer.ID, &dto.SaveWorkoutRequest{
		MemberID: member.ID,
		Name:     "Rest Week",
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Exercises)
	assert.Empty(t, fetched.Exercises)

	// The stored column and the serialized response both say [], not null.
	var workout models.Workout
	require.NoError(t, db.First(&workout, created.ID).Error)
	assert.JSONEq(t, "[]", string(workout.Exercises))

	body, err := json.Marshal(fetched)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"exercises":[]`)
}

func TestWorkout_OnlyMembersReceivePlans(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	trainer := createUser(t, db, "wt3", models.UserRoleTrainer)
	otherTrainer := createUser(t, db, "wt4", models.UserRoleTrainer)

	_, err := svc.Create(trainer.ID, &dto.SaveWorkoutRequest{
		MemberID: otherTrainer.ID,
		Name:     "Bad Assignment",
	})
	assert.Error(t, err)
}

func TestWorkout_DeactivateHidesFromLists(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	member := createUser(t, db, "wm5", models.UserRoleMember)
	trainer := createUser(t, db, "wt5", models.UserRoleTrainer)

	created, err := svc.Create(trainer.ID, &dto.SaveWorkoutRequest{
		MemberID: member.ID,
		Name:     "Old Plan",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(created.ID))

	list, err := svc.GetByMemberID(member.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The row itself survives for history.
	var workout models.Workout
	require.NoError(t, db.First(&workout, created.ID).Error)
	assert.False(t, workout.IsActive)
}

func TestWorkout_UpdateReplacesSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	member := createUser(t, db, "wm6", models.UserRoleMember)
	trainer := createUser(t, db, "wt6", models.UserRoleTrainer)

	created, err := svc.Create(trainer.ID, &dto.SaveWorkoutRequest{
		MemberID:  member.ID,
		Name:      "Plan v1",
		Exercises: []models.ExerciseEntry{{Name: "Push-ups", Sets: "3", Reps: "10"}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &dto.SaveWorkoutRequest{
		MemberID:  member.ID,
		Name:      "Plan v2",
		Exercises: []models.ExerciseEntry{{Name: "Pull-ups", Sets: "5", Reps: "5"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Plan v2", updated.Name)
	require.Len(t, updated.Exercises, 1)
	assert.Equal(t, "Pull-ups", updated.Exercises[0].Name)
}
