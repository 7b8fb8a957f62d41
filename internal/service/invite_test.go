package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamejam-portal-backend/internal/database/models"
	"gamejam-portal-backend/internal/mocks"
	"gamejam-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InviteServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTokens    *mocks.MockPasswordResetTokenRepositoryInterface
	inviteService *service.InviteService
}

func (suite *InviteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTokens = mocks.NewMockPasswordResetTokenRepositoryInterface(suite.ctrl)
	suite.inviteService = service.NewInviteService(suite.mockTokens, "https://jam.example.com/", 24*time.Hour)
}

func (suite *InviteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InviteServiceTestSuite) TestIssueStoresOnlyHash() {
	userID := uuid.New()
	var stored *models.PasswordResetToken
	suite.mockTokens.EXPECT().ReplaceForUser(gomock.Any()).
		DoAndReturn(func(token *models.PasswordResetToken) error {
			stored = token
			return nil
		})

	before := time.Now()
	raw, expiresAt, err := suite.inviteService.Issue(context.Background(), userID)

	suite.Require().NoError(err)
	suite.Len(raw, 64)
	suite.Regexp(`^[0-9a-f]{64}$`, raw)
	suite.Require().NotNil(stored)
	suite.Equal(userID, stored.UserID)
	suite.Equal(service.HashToken(raw), stored.TokenHash)
	suite.NotEqual(raw, stored.TokenHash)
	suite.Nil(stored.UsedAt)
	suite.WithinDuration(before.Add(24*time.Hour), expiresAt, 5*time.Second)
	suite.Equal(expiresAt, stored.ExpiresAt)
}

func (suite *InviteServiceTestSuite) TestIssueProducesDistinctTokens() {
	suite.mockTokens.EXPECT().ReplaceForUser(gomock.Any()).Return(nil).Times(2)

	first, _, err := suite.inviteService.Issue(context.Background(), uuid.New())
	suite.Require().NoError(err)
	second, _, err := suite.inviteService.Issue(context.Background(), uuid.New())
	suite.Require().NoError(err)

	suite.NotEqual(first, second)
}

func (suite *InviteServiceTestSuite) TestIssueStorageError() {
	suite.mockTokens.EXPECT().ReplaceForUser(gomock.Any()).Return(errors.New("disk full"))

	raw, _, err := suite.inviteService.Issue(context.Background(), uuid.New())

	suite.Error(err)
	suite.Empty(raw)
}

func (suite *InviteServiceTestSuite) TestResetURL() {
	suite.Equal("https://jam.example.com/sifre-sifirla?token=abc123", suite.inviteService.ResetURL("abc123"))
}

func (suite *InviteServiceTestSuite) TestLiveTokenUserIDs() {
	live, dead := uuid.New(), uuid.New()
	suite.mockTokens.EXPECT().LiveUserIDs([]uuid.UUID{live, dead}, gomock.Any()).Return([]uuid.UUID{live}, nil)

	got, err := suite.inviteService.LiveTokenUserIDs(context.Background(), []uuid.UUID{live, dead})

	suite.Require().NoError(err)
	suite.True(got[live])
	suite.False(got[dead])
}

func (suite *InviteServiceTestSuite) TestLiveTokenUserIDsSkipsEmptyInput() {
	got, err := suite.inviteService.LiveTokenUserIDs(context.Background(), nil)

	suite.NoError(err)
	suite.Empty(got)
}

func (suite *InviteServiceTestSuite) TestHasLiveToken() {
	userID := uuid.New()
	suite.mockTokens.EXPECT().LiveUserIDs([]uuid.UUID{userID}, gomock.Any()).Return(nil, nil)

	ok, err := suite.inviteService.HasLiveToken(context.Background(), userID)

	suite.NoError(err)
	suite.False(ok)
}

func (suite *InviteServiceTestSuite) TestPurgeExpired() {
	suite.mockTokens.EXPECT().DeleteStale(gomock.Any()).Return(int64(7), nil)

	n, err := suite.inviteService.PurgeExpired(context.Background())

	suite.NoError(err)
	suite.Equal(int64(7), n)
}

func TestInviteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InviteServiceTestSuite))
}
