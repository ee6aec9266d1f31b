package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lfgconnect/lfg-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestCreateWithCreator_EnrollsCreatorInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sessions`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `session_attendees`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	session := &models.GameSession{
		CreatorID:       1,
		GameID:          2,
		SessionDatetime: time.Now().Add(24 * time.Hour),
		MaxPlayers:      4,
	}
	require.NoError(t, repo.CreateWithCreator(session))
	require.EqualValues(t, 7, session.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithCreator_RollsBackOnAttendeeFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sessions`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `session_attendees`").
		WillReturnError(gorm.ErrInvalidData)
	mock.ExpectRollback()

	session := &models.GameSession{
		CreatorID:       1,
		GameID:          2,
		SessionDatetime: time.Now().Add(24 * time.Hour),
		MaxPlayers:      4,
	}
	require.Error(t, repo.CreateWithCreator(session))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRSVP_UsesOnDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `session_attendees` .* ON DUPLICATE KEY UPDATE `rsvp_status`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpsertRSVP(&models.SessionAttendee{
		SessionID:  7,
		UserID:     3,
		RsvpStatus: models.RsvpStatusGoing,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAttended_SkipsQueryForEmptyList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	// No expectations set: an empty id list must not touch the database.
	require.NoError(t, repo.MarkAttended(7, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAttended_UpdatesListedUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `session_attendees` SET `attended`=.* WHERE session_id = .* AND user_id IN").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.MarkAttended(7, []uint64{1, 3}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRSVPs_OrdersByPriorityThenUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery("SELECT session_attendees\\.\\* FROM `session_attendees` " +
		"JOIN users ON users\\.id = session_attendees\\.user_id " +
		"WHERE session_attendees\\.session_id = .* " +
		"ORDER BY CASE session_attendees\\.rsvp_status " +
		"WHEN 'going' THEN 1 WHEN 'pending' THEN 2 WHEN 'cant_go' THEN 3 ELSE 4 END," +
		"users\\.username").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "user_id", "rsvp_status", "attended"}))

	attendees, err := repo.ListRSVPs(7)
	require.NoError(t, err)
	require.Empty(t, attendees)
	require.NoError(t, mock.ExpectationsWereMet())
}
