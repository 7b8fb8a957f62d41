package repository

import (
	"errors"
	"testing"
	"time"

	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RepositoryUnitTestSuite exercises repository SQL against sqlmock
type RepositoryUnitTestSuite struct {
	suite.Suite
	db   *gorm.DB
	mock sqlmock.Sqlmock
}

func (suite *RepositoryUnitTestSuite) SetupTest() {
	suite.db, suite.mock = testutils.NewMockDB(suite.T())
}

func (suite *RepositoryUnitTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *RepositoryUnitTestSuite) expectTeamLock(teamID uuid.UUID, members int64) {
	suite.mock.ExpectQuery(`SELECT \* FROM "teams" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "mode"}).AddRow(teamID, "Piksel", "team"))
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE team_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(members))
}

func (suite *RepositoryUnitTestSuite) TestAttachToTeamSuccess() {
	repo := NewUserRepository(suite.db)
	teamID, userID := uuid.New(), uuid.New()

	suite.mock.ExpectBegin()
	suite.expectTeamLock(teamID, 2)
	suite.mock.ExpectExec(`UPDATE "users" SET .* WHERE id = \$\d+ AND team_id IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := repo.AttachToTeam(teamID, userID, models.ProfileRoleArtist, 4)
	suite.NoError(err)
}

func (suite *RepositoryUnitTestSuite) TestAttachToTeamFull() {
	repo := NewUserRepository(suite.db)
	teamID := uuid.New()

	suite.mock.ExpectBegin()
	suite.expectTeamLock(teamID, 4)
	suite.mock.ExpectRollback()

	err := repo.AttachToTeam(teamID, uuid.New(), models.ProfileRoleArtist, 4)
	suite.ErrorIs(err, apperrors.ErrTeamFull)
}

func (suite *RepositoryUnitTestSuite) TestAttachToTeamLostRace() {
	repo := NewUserRepository(suite.db)
	teamID := uuid.New()

	suite.mock.ExpectBegin()
	suite.expectTeamLock(teamID, 1)
	suite.mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	err := repo.AttachToTeam(teamID, uuid.New(), models.ProfileRoleSound, 4)
	suite.ErrorIs(err, apperrors.ErrInOtherTeam)
}

func (suite *RepositoryUnitTestSuite) TestAttachToTeamMissingTeam() {
	repo := NewUserRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT \* FROM "teams"`).WillReturnError(gorm.ErrRecordNotFound)
	suite.mock.ExpectRollback()

	err := repo.AttachToTeam(uuid.New(), uuid.New(), models.ProfileRoleSound, 4)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RepositoryUnitTestSuite) TestCreateInTeamRequiresTeam() {
	repo := NewUserRepository(suite.db)

	err := repo.CreateInTeam(&models.User{Email: "a@b.co"}, 4)
	suite.True(apperrors.IsValidation(err))
}

func (suite *RepositoryUnitTestSuite) TestCreateInTeamFull() {
	repo := NewUserRepository(suite.db)
	teamID := uuid.New()

	suite.mock.ExpectBegin()
	suite.expectTeamLock(teamID, 4)
	suite.mock.ExpectRollback()

	err := repo.CreateInTeam(&models.User{Email: "Yeni@Example.com", TeamID: &teamID}, 4)
	suite.ErrorIs(err, apperrors.ErrTeamFull)
}

func (suite *RepositoryUnitTestSuite) TestDetachFromTeam() {
	repo := NewUserRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "users" SET "team_id"=\$1,"updated_at"=\$2 WHERE team_id = \$3 AND email = \$4`).
		WithArgs(nil, sqlmock.AnyArg(), sqlmock.AnyArg(), "mert@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	n, err := repo.DetachFromTeam(uuid.New(), " MERT@example.com ")
	suite.NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *RepositoryUnitTestSuite) TestReplaceForUserDeletesPriorTokens() {
	repo := NewPasswordResetTokenRepository(suite.db)
	token := &models.PasswordResetToken{UserID: uuid.New(), TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour)}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM "password_reset_tokens" WHERE user_id = \$1`).
		WithArgs(token.UserID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectExec(`INSERT INTO "password_reset_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(repo.ReplaceForUser(token))
	suite.NotEqual(uuid.Nil, token.ID)
}

func (suite *RepositoryUnitTestSuite) TestLiveUserIDs() {
	repo := NewPasswordResetTokenRepository(suite.db)
	live := uuid.New()

	suite.mock.ExpectQuery(`SELECT DISTINCT "user_id" FROM "password_reset_tokens" WHERE user_id IN .* AND used_at IS NULL AND expires_at > `).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(live))

	ids, err := repo.LiveUserIDs([]uuid.UUID{live, uuid.New()}, time.Now())
	suite.NoError(err)
	suite.Equal([]uuid.UUID{live}, ids)
}

func (suite *RepositoryUnitTestSuite) TestLiveUserIDsEmptyInput() {
	repo := NewPasswordResetTokenRepository(suite.db)

	ids, err := repo.LiveUserIDs(nil, time.Now())
	suite.NoError(err)
	suite.Empty(ids)
}

func (suite *RepositoryUnitTestSuite) TestConsumeRejectsUsedToken() {
	repo := NewPasswordResetTokenRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "password_reset_tokens" SET "used_at"=.* WHERE id = \$\d+ AND used_at IS NULL AND expires_at > \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	err := repo.Consume(uuid.New(), uuid.New(), "hash", time.Now())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *RepositoryUnitTestSuite) TestConsumeActivatesUser() {
	repo := NewPasswordResetTokenRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "password_reset_tokens" SET "used_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`UPDATE "users" SET .*"can_login"=.*"password_hash"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(repo.Consume(uuid.New(), uuid.New(), "hash", time.Now()))
}

func (suite *RepositoryUnitTestSuite) TestDeleteStale() {
	repo := NewPasswordResetTokenRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM "password_reset_tokens" WHERE expires_at <= \$1 OR used_at IS NOT NULL`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	suite.mock.ExpectCommit()

	n, err := repo.DeleteStale(time.Now())
	suite.NoError(err)
	suite.Equal(int64(3), n)
}

func (suite *RepositoryUnitTestSuite) TestTeamUpdateFieldsMissing() {
	repo := NewTeamRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "teams" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := repo.UpdateFields(uuid.New(), map[string]interface{}{"name": "Yeni"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *RepositoryUnitTestSuite) TestDeleteUnlinkingMembers() {
	repo := NewTeamRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "users" SET "team_id"=\$1`).WillReturnResult(sqlmock.NewResult(0, 3))
	suite.mock.ExpectExec(`DELETE FROM "teams" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(repo.DeleteUnlinkingMembers(uuid.New()))
}

func (suite *RepositoryUnitTestSuite) TestMessageMarkRead() {
	repo := NewMessageRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "message_recipients" SET "read_at"=COALESCE\(read_at, \$1\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	n, err := repo.MarkRead(uuid.New(), uuid.New(), time.Now())
	suite.NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *RepositoryUnitTestSuite) TestMessageUnreadCount() {
	repo := NewMessageRepository(suite.db)

	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "message_recipients" WHERE user_id = \$1 AND deleted = \$2 AND read_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.UnreadCount(uuid.New())
	suite.NoError(err)
	suite.Equal(int64(5), n)
}

func (suite *RepositoryUnitTestSuite) TestAnnouncementDeleteMissing() {
	repo := NewAnnouncementRepository(suite.db)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM "announcements" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	suite.ErrorIs(repo.Delete(uuid.New()), gorm.ErrRecordNotFound)
}

func TestRepositoryUnitTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryUnitTestSuite))
}
