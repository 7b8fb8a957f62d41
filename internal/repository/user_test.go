//go:build integration
// +build integration

package repository

import (
	"sync"
	"testing"
	"time"

	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository and the token repository it pairs with
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	teamRepo      *TeamRepository
	tokenRepo     *PasswordResetTokenRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.tokenRepo = NewPasswordResetTokenRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateLowercasesEmail tests email normalization and case-insensitive lookup
func (suite *UserRepositoryTestSuite) TestCreateLowercasesEmail() {
	user := suite.factories.User.WithEmail("Ayse.Yilmaz@Example.COM")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("  ayse.yilmaz@example.com ")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.Equal("ayse.yilmaz@example.com", found.Email)
}

// TestCreateDuplicateEmail tests the global email uniqueness constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.NoError(suite.repo.Create(suite.factories.User.WithEmail("dup@example.com")))

	err := suite.repo.Create(suite.factories.User.WithEmail("dup@example.com"))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestAttachToTeamCapacity tests attaching up to the limit
func (suite *UserRepositoryTestSuite) TestAttachToTeamCapacity() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teamRepo.Create(team))
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.User.WithTeam(team.ID)))
	}

	fourth := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(fourth))
	suite.NoError(suite.repo.AttachToTeam(team.ID, fourth.ID, models.ProfileRoleSound, 4))

	reloaded, err := suite.repo.GetByID(fourth.ID)
	suite.NoError(err)
	suite.Equal(models.ProfileRoleSound, reloaded.ProfileRole)

	fifth := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(fifth))
	err = suite.repo.AttachToTeam(team.ID, fifth.ID, models.ProfileRoleSound, 4)
	suite.ErrorIs(err, apperrors.ErrTeamFull)
}

// TestAttachToTeamAlreadyElsewhere tests the guard against users in another team
func (suite *UserRepositoryTestSuite) TestAttachToTeamAlreadyElsewhere() {
	teamA := suite.factories.Team.Create()
	teamB := suite.factories.Team.Create()
	suite.Require().NoError(suite.teamRepo.Create(teamA))
	suite.Require().NoError(suite.teamRepo.Create(teamB))
	user := suite.factories.User.WithTeam(teamA.ID)
	suite.Require().NoError(suite.repo.Create(user))

	err := suite.repo.AttachToTeam(teamB.ID, user.ID, models.ProfileRoleArtist, 4)
	suite.ErrorIs(err, apperrors.ErrInOtherTeam)
}

// TestCreateInTeamConcurrent tests that the row lock keeps a team at capacity under concurrency
func (suite *UserRepositoryTestSuite) TestCreateInTeamConcurrent() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teamRepo.Create(team))
	suite.Require().NoError(suite.repo.Create(suite.factories.User.WithTeam(team.ID)))

	var wg sync.WaitGroup
	errs := make(chan error, 6)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := suite.factories.User.Inactive()
			u.TeamID = &team.ID
			errs <- suite.repo.CreateInTeam(u, 4)
		}()
	}
	wg.Wait()
	close(errs)

	full := 0
	for err := range errs {
		if err != nil {
			suite.ErrorIs(err, apperrors.ErrTeamFull)
			full++
		}
	}
	suite.Equal(3, full)

	members, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Len(members, 4)
}

// TestDetachHelpers tests single and bulk detach
func (suite *UserRepositoryTestSuite) TestDetachHelpers() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teamRepo.Create(team))
	leader := suite.factories.User.WithTeam(team.ID)
	a := suite.factories.User.WithTeam(team.ID)
	b := suite.factories.User.WithTeam(team.ID)
	for _, u := range []*models.User{leader, a, b} {
		suite.Require().NoError(suite.repo.Create(u))
	}

	n, err := suite.repo.DetachFromTeam(team.ID, a.Email)
	suite.NoError(err)
	suite.Equal(int64(1), n)

	n, err = suite.repo.DetachAllExcept(team.ID, leader.ID)
	suite.NoError(err)
	suite.Equal(int64(1), n)

	members, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Require().Len(members, 1)
	suite.Equal(leader.ID, members[0].ID)
}

// TestTokenReplaceAndLiveness tests that issuing replaces prior tokens and liveness honours expiry and use
func (suite *UserRepositoryTestSuite) TestTokenReplaceAndLiveness() {
	user := suite.factories.User.Inactive()
	suite.Require().NoError(suite.repo.Create(user))
	now := time.Now()

	first := &models.PasswordResetToken{UserID: user.ID, TokenHash: "hash-1", ExpiresAt: now.Add(time.Hour)}
	suite.Require().NoError(suite.tokenRepo.ReplaceForUser(first))
	second := &models.PasswordResetToken{UserID: user.ID, TokenHash: "hash-2", ExpiresAt: now.Add(time.Hour)}
	suite.Require().NoError(suite.tokenRepo.ReplaceForUser(second))

	_, err := suite.tokenRepo.GetByHash("hash-1")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	live, err := suite.tokenRepo.LiveUserIDs([]uuid.UUID{user.ID}, now)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{user.ID}, live)

	suite.NoError(suite.tokenRepo.Consume(second.ID, user.ID, "bcrypt-hash", now))
	suite.ErrorIs(suite.tokenRepo.Consume(second.ID, user.ID, "bcrypt-hash", now), gorm.ErrRecordNotFound)

	activated, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.True(activated.CanLogin)
	suite.Require().NotNil(activated.PasswordHash)

	live, err = suite.tokenRepo.LiveUserIDs([]uuid.UUID{user.ID}, now)
	suite.NoError(err)
	suite.Empty(live)

	purged, err := suite.tokenRepo.DeleteStale(now)
	suite.NoError(err)
	suite.Equal(int64(1), purged)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
