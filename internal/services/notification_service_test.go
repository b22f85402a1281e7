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

func newNotificationService(db *gorm.DB) services.NotificationService {
	return services.NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestBroadcast_MembersOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	m1 := createUser(t, db, "bm1", models.UserRoleMember)
	m2 := createUser(t, db, "bm2", models.UserRoleMember)
	createUser(t, db, "bt1", models.UserRoleTrainer)
	createUser(t, db, "ba1", models.UserRoleAdmin)

	recipients, err := svc.Broadcast(&dto.BroadcastRequest{
		Title:    "Holiday hours",
		Message:  "The gym closes early on Friday.",
		Audience: models.AudienceMembers,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, recipients)

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 2)

	got := map[uint]bool{}
	for _, n := range notifications {
		got[n.UserID] = true
		assert.Equal(t, "Holiday hours", n.Title)
		assert.False(t, n.IsRead)
	}
	assert.True(t, got[m1.ID])
	assert.True(t, got[m2.ID])
}

func TestBroadcast_AllReachesEveryRole(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	createUser(t, db, "am1", models.UserRoleMember)
	createUser(t, db, "at1", models.UserRoleTrainer)
	createUser(t, db, "aa1", models.UserRoleAdmin)

	recipients, err := svc.Broadcast(&dto.BroadcastRequest{
		Title:    "Maintenance",
		Message:  "The booking system restarts at midnight.",
		Audience: models.AudienceAll,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, recipients)
}

func TestBroadcast_SkipsDeactivatedUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	createUser(t, db, "sm1", models.UserRoleMember)
	former := createUser(t, db, "sm2", models.UserRoleMember)
	require.NoError(t, db.Model(former).Update("is_active", false).Error)

	recipients, err := svc.Broadcast(&dto.BroadcastRequest{
		Title:    "News",
		Message:  "New classes this month.",
		Audience: models.AudienceMembers,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, recipients)
}

func TestMarkAsRead_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	owner := createUser(t, db, "own1", models.UserRoleMember)
	stranger := createUser(t, db, "own2", models.UserRoleMember)

	created, err := svc.Create(owner.ID, "Hello", "A note for you", "info")
	require.NoError(t, err)

	assert.Error(t, svc.MarkAsRead(stranger.ID, created.ID))
	require.NoError(t, svc.MarkAsRead(owner.ID, created.ID))

	count, err := svc.UnreadCount(owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestMarkAllAsRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := createUser(t, db, "mar1", models.UserRoleMember)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(user.ID, "Ping", "msg", "info")
		require.NoError(t, err)
	}

	count, err := svc.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	require.NoError(t, svc.MarkAllAsRead(user.ID))

	count, err = svc.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestGetUserNotifications_UnreadFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := createUser(t, db, "fil1", models.UserRoleMember)

	first, err := svc.Create(user.ID, "One", "msg", "info")
	require.NoError(t, err)
	_, err = svc.Create(user.ID, "Two", "msg", "info")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(user.ID, first.ID))

	unread, err := svc.GetUserNotifications(user.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "Two", unread[0].Title)

	all, err := svc.GetUserNotifications(user.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
