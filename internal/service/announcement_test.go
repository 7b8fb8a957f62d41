package service_test

import (
	"context"
	"testing"
	"time"

	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/mocks"
	"gamejam-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AnnouncementServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRepo            *mocks.MockAnnouncementRepositoryInterface
	announcementService *service.AnnouncementService
}

func (suite *AnnouncementServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAnnouncementRepositoryInterface(suite.ctrl)
	suite.announcementService = service.NewAnnouncementService(suite.mockRepo, service.NewValidator())
}

func (suite *AnnouncementServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AnnouncementServiceTestSuite) TestCreatePublishesNow() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	before := time.Now()
	a, err := suite.announcementService.Create(context.Background(), &service.CreateAnnouncementRequest{
		Title: " Tema açıklandı ", Body: "Bu yılın teması: Döngüler", Pinned: true,
	})

	suite.Require().NoError(err)
	suite.Equal("Tema açıklandı", a.Title)
	suite.True(a.Pinned)
	suite.WithinDuration(before, a.PublishedAt, 5*time.Second)
}

func (suite *AnnouncementServiceTestSuite) TestCreateScheduled() {
	at := time.Date(2026, 11, 20, 18, 0, 0, 0, time.UTC)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	a, err := suite.announcementService.Create(context.Background(), &service.CreateAnnouncementRequest{
		Title: "Teslim", Body: "Son gün", PublishedAt: &at,
	})

	suite.Require().NoError(err)
	suite.Equal(at, a.PublishedAt)
}

func (suite *AnnouncementServiceTestSuite) TestCreateRequiresTitle() {
	_, err := suite.announcementService.Create(context.Background(), &service.CreateAnnouncementRequest{Title: "  ", Body: "x"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *AnnouncementServiceTestSuite) TestListNeverReturnsNil() {
	suite.mockRepo.EXPECT().GetAll(20, 0).Return(nil, int64(0), nil)

	resp, err := suite.announcementService.List(1, 20)

	suite.Require().NoError(err)
	suite.NotNil(resp.Announcements)
	suite.Empty(resp.Announcements)
}

func (suite *AnnouncementServiceTestSuite) TestListPageSizeCapped() {
	suite.mockRepo.EXPECT().GetAll(100, 0).Return([]models.Announcement{{Title: "a"}}, int64(1), nil)

	resp, err := suite.announcementService.List(1, 500)

	suite.Require().NoError(err)
	suite.Equal(100, resp.PageSize)
}

func (suite *AnnouncementServiceTestSuite) TestDeleteNotFound() {
	suite.mockRepo.EXPECT().Delete(gomock.Any()).Return(gorm.ErrRecordNotFound)

	err := suite.announcementService.Delete(context.Background(), uuid.New())

	suite.ErrorIs(err, apperrors.ErrAnnouncementNotFound)
}

func TestAnnouncementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementServiceTestSuite))
}
