//go:build integration
// +build integration

package repository

import (
	"testing"

	"gamejam-portal-backend/internal/database/models"
	"gamejam-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithLeader tests that the leader is moved into the new team
func (suite *TeamRepositoryTestSuite) TestCreateWithLeader() {
	leader := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(leader))

	team := suite.factories.Team.Create()
	err := suite.repo.CreateWithLeader(team, leader.ID)
	suite.NoError(err)

	reloaded, err := suite.userRepo.GetByID(leader.ID)
	suite.NoError(err)
	suite.Require().NotNil(reloaded.TeamID)
	suite.Equal(team.ID, *reloaded.TeamID)

	stored, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(leader.ID, *stored.LeaderID)
}

// TestGetWithMembers tests members are preloaded oldest first
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))

	first := suite.factories.User.WithTeam(team.ID)
	suite.Require().NoError(suite.userRepo.Create(first))
	second := suite.factories.User.WithTeam(team.ID)
	second.CreatedAt = first.CreatedAt.Add(1)
	suite.Require().NoError(suite.userRepo.Create(second))

	loaded, err := suite.repo.GetWithMembers(team.ID)
	suite.NoError(err)
	suite.Require().Len(loaded.Members, 2)
	suite.Equal(first.ID, loaded.Members[0].ID)
}

// TestGetWithMembersNotFound tests retrieving a missing team
func (suite *TeamRepositoryTestSuite) TestGetWithMembersNotFound() {
	_, err := suite.repo.GetWithMembers(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllCountsMembers tests the admin listing with member counts and name filter
func (suite *TeamRepositoryTestSuite) TestGetAllCountsMembers() {
	alpha := suite.factories.Team.WithName("Alpha Pikselleri")
	beta := suite.factories.Team.WithName("Beta Sesleri")
	suite.Require().NoError(suite.repo.Create(alpha))
	suite.Require().NoError(suite.repo.Create(beta))
	suite.Require().NoError(suite.userRepo.Create(suite.factories.User.WithTeam(alpha.ID)))
	suite.Require().NoError(suite.userRepo.Create(suite.factories.User.WithTeam(alpha.ID)))

	teams, total, err := suite.repo.GetAll("", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	counts := map[uuid.UUID]int64{}
	for _, t := range teams {
		counts[t.ID] = t.MemberCount
	}
	suite.Equal(int64(2), counts[alpha.ID])
	suite.Equal(int64(0), counts[beta.ID])

	filtered, total, err := suite.repo.GetAll("piksel", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(alpha.ID, filtered[0].ID)
}

// TestUpdateFields tests partial updates
func (suite *TeamRepositoryTestSuite) TestUpdateFields() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))

	err := suite.repo.UpdateFields(team.ID, map[string]interface{}{"name": "Yeni İsim", "mode": models.TeamTypeIndividual})
	suite.NoError(err)

	stored, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal("Yeni İsim", stored.Name)
	suite.Equal(models.TeamTypeIndividual, stored.Mode)
}

// TestDeleteUnlinkingMembers tests members survive team deletion without a team
func (suite *TeamRepositoryTestSuite) TestDeleteUnlinkingMembers() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))
	member := suite.factories.User.WithTeam(team.ID)
	suite.Require().NoError(suite.userRepo.Create(member))

	suite.NoError(suite.repo.DeleteUnlinkingMembers(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	reloaded, err := suite.userRepo.GetByID(member.ID)
	suite.NoError(err)
	suite.Nil(reloaded.TeamID)
}

// TestCountSubmissions tests the guard used before deleting a team
func (suite *TeamRepositoryTestSuite) TestCountSubmissions() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))

	subRepo := NewSubmissionRepository(suite.baseTestSuite.DB)
	sub := &models.Submission{TeamID: &team.ID, Title: "Oyun", Slug: "oyun", Status: models.SubmissionStatusDraft}
	suite.Require().NoError(subRepo.SaveWithTags(sub, []string{"Unity", "puzzle"}))

	count, err := suite.repo.CountSubmissions(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	loaded, err := subRepo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Len(loaded.Tags, 2)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
