package services_test

import (
	"testing"
	"time"

	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSessionService(db *gorm.DB) services.SessionService {
	return services.NewSessionService(
		db,
		repositories.NewSessionRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewNotificationRepository(db),
	)
}

func TestBook_PastDateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	member := createUser(t, db, "member1", models.UserRoleMember)
	trainer := createUser(t, db, "trainer1", models.UserRoleTrainer)

	_, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   trainer.ID,
		SessionDate: time.Now().Add(-time.Hour),
		Duration:    60,
	})
	require.Error(t, err)

	var count int64
	db.Model(&models.Session{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestBook_CreatesSessionAndBothNotifications(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	member := createUser(t, db, "member2", models.UserRoleMember)
	trainer := createUser(t, db, "trainer2", models.UserRoleTrainer)

	when := time.Now().Add(48 * time.Hour)
	resp, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   trainer.ID,
		SessionDate: when,
		Duration:    60,
		SessionType: "yoga",
		Price:       40,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusScheduled, resp.Status)

	var notifications []models.Notification
	require.NoError(t, db.Order("user_id").Find(&notifications).Error)
	require.Len(t, notifications, 2)

	byUser := map[uint]models.Notification{}
	for _, n := range notifications {
		byUser[n.UserID] = n
	}

	memberNotice := byUser[member.ID]
	assert.Equal(t, "Session Booked", memberNotice.Title)
	assert.Contains(t, memberNotice.Message, "yoga")
	assert.Contains(t, memberNotice.Message, when.Format("January 02, 2006 at 03:04 PM"))
	assert.False(t, memberNotice.IsRead)

	trainerNotice := byUser[trainer.ID]
	assert.Equal(t, "New Session Request", trainerNotice.Title)
	assert.Contains(t, trainerNotice.Message, member.FullName())
}

func TestBook_TrainerMustBeActiveTrainer(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	member := createUser(t, db, "member3", models.UserRoleMember)
	otherMember := createUser(t, db, "member4", models.UserRoleMember)

	_, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   otherMember.ID,
		SessionDate: time.Now().Add(time.Hour),
		Duration:    30,
	})
	assert.Error(t, err)
}

func TestComplete_TransitionsAndNotifies(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	member := createUser(t, db, "member5", models.UserRoleMember)
	trainer := createUser(t, db, "trainer5", models.UserRoleTrainer)

	resp, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   trainer.ID,
		SessionDate: time.Now().Add(time.Hour),
		Duration:    60,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Complete(resp.ID))

	updated, err := svc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCompleted, updated.Status)

	var notice models.Notification
	require.NoError(t, db.Where("title = ?", "Session Completed").First(&notice).Error)
	assert.Equal(t, member.ID, notice.UserID)
}

func TestCompletedSessionIsTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	member := createUser(t, db, "member6", models.UserRoleMember)
	trainer := createUser(t, db, "trainer6", models.UserRoleTrainer)

	resp, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   trainer.ID,
		SessionDate: time.Now().Add(time.Hour),
		Duration:    60,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Complete(resp.ID))

	assert.Error(t, svc.Complete(resp.ID))
	assert.Error(t, svc.Cancel(resp.ID))

	updated, err := svc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCompleted, updated.Status)
}

func TestCancel_LeavesNoNotification(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	member := createUser(t, db, "member7", models.UserRoleMember)
	trainer := createUser(t, db, "trainer7", models.UserRoleTrainer)

	resp, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   trainer.ID,
		SessionDate: time.Now().Add(time.Hour),
		Duration:    60,
	})
	require.NoError(t, err)

	var before int64
	db.Model(&models.Notification{}).Count(&before)

	require.NoError(t, svc.Cancel(resp.ID))

	updated, err := svc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCancelled, updated.Status)

	var after int64
	db.Model(&models.Notification{}).Count(&after)
	assert.Equal(t, before, after)

	// Cancelled is terminal too.
	assert.Error(t, svc.Complete(resp.ID))
}

func TestGetUpcoming_FutureScheduledOnlySoonestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	member := createUser(t, db, "member10", models.UserRoleMember)
	trainer := createUser(t, db, "trainer10", models.UserRoleTrainer)

	later, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   trainer.ID,
		SessionDate: time.Now().Add(72 * time.Hour),
		Duration:    60,
	})
	require.NoError(t, err)
	sooner, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   trainer.ID,
		SessionDate: time.Now().Add(24 * time.Hour),
		Duration:    60,
	})
	require.NoError(t, err)

	// A session already in the past and a completed future one are
	// both invisible to the upcoming view.
	require.NoError(t, db.Create(&models.Session{
		MemberID:    member.ID,
		TrainerID:   trainer.ID,
		SessionDate: time.Now().Add(-24 * time.Hour),
		Duration:    60,
		Status:      models.SessionStatusScheduled,
	}).Error)
	done, err := svc.Book(member.ID, &dto.BookSessionRequest{
		TrainerID:   trainer.ID,
		SessionDate: time.Now().Add(time.Hour),
		Duration:    60,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Complete(done.ID))

	upcoming, err := svc.GetUpcomingByMemberID(member.ID)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, sooner.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)

	forTrainer, err := svc.GetUpcomingByTrainerID(trainer.ID)
	require.NoError(t, err)
	assert.Len(t, forTrainer, 2)
}

func TestGetAll_ReturnsEveryMembersSessions(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)
	trainer := createUser(t, db, "trainer8", models.UserRoleTrainer)
	m1 := createUser(t, db, "member8", models.UserRoleMember)
	m2 := createUser(t, db, "member9", models.UserRoleMember)

	for _, m := range []*models.User{m1, m2} {
		_, err := svc.Book(m.ID, &dto.BookSessionRequest{
			TrainerID:   trainer.ID,
			SessionDate: time.Now().Add(time.Hour),
			Duration:    45,
		})
		require.NoError(t, err)
	}

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
