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
)

type MessageServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockMessageRepositoryInterface
	mockUsers      *mocks.MockUserRepositoryInterface
	messageService *service.MessageService
	adminID        uuid.UUID
	ctx            context.Context
}

func (suite *MessageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMessageRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.messageService = service.NewMessageService(suite.mockRepo, suite.mockUsers, service.NewValidator())
	suite.adminID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *MessageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func recipientIDs(msg *models.Message) []uuid.UUID {
	ids := make([]uuid.UUID, len(msg.Recipients))
	for i, r := range msg.Recipients {
		ids[i] = r.UserID
	}
	return ids
}

func (suite *MessageServiceTestSuite) TestBroadcastToAllDedupesAndSkipsSender() {
	a, b := uuid.New(), uuid.New()
	suite.mockUsers.EXPECT().GetParticipantIDs().Return([]uuid.UUID{a, b, a, suite.adminID}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(msg *models.Message) error {
			suite.Equal([]uuid.UUID{a, b}, recipientIDs(msg))
			suite.Equal(suite.adminID, *msg.SenderID)
			suite.Equal("Kodlama başladı", msg.Subject)
			msg.ID = uuid.New()
			return nil
		})

	resp, err := suite.messageService.Broadcast(suite.ctx, suite.adminID, &service.BroadcastRequest{
		Subject:  " Kodlama başladı ",
		Body:     "48 saatiniz var.",
		Audience: service.AudienceAll,
	})

	suite.Require().NoError(err)
	suite.Equal(2, resp.RecipientCount)
	suite.Equal(0, resp.ReadCount)
}

func (suite *MessageServiceTestSuite) TestBroadcastToTeam() {
	teamID := uuid.New()
	member := models.User{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockUsers.EXPECT().GetByTeamID(teamID).Return([]models.User{member}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.messageService.Broadcast(suite.ctx, suite.adminID, &service.BroadcastRequest{
		Subject: "Teslim", Body: "Yarın 18:00", Audience: service.AudienceTeam, TeamID: &teamID,
	})

	suite.Require().NoError(err)
	suite.Equal(1, resp.RecipientCount)
}

func (suite *MessageServiceTestSuite) TestBroadcastToTeamRequiresTeamID() {
	_, err := suite.messageService.Broadcast(suite.ctx, suite.adminID, &service.BroadcastRequest{
		Subject: "Teslim", Body: "Yarın", Audience: service.AudienceTeam,
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *MessageServiceTestSuite) TestBroadcastToUnknownUsersHasNoRecipients() {
	ids := []uuid.UUID{uuid.New()}
	suite.mockUsers.EXPECT().GetByIDs(ids).Return(nil, nil)

	_, err := suite.messageService.Broadcast(suite.ctx, suite.adminID, &service.BroadcastRequest{
		Subject: "Merhaba", Body: "Selam", Audience: service.AudienceUsers, UserIDs: ids,
	})

	suite.ErrorIs(err, apperrors.ErrNoRecipients)
}

func (suite *MessageServiceTestSuite) TestBroadcastValidation() {
	testCases := []struct {
		name string
		req  service.BroadcastRequest
		msg  string
	}{
		{"blank subject", service.BroadcastRequest{Subject: "  ", Body: "x", Audience: service.AudienceAll}, "Konu gerekli"},
		{"blank body", service.BroadcastRequest{Subject: "x", Body: "\n", Audience: service.AudienceAll}, "Mesaj gerekli"},
		{"unknown audience", service.BroadcastRequest{Subject: "x", Body: "x", Audience: "admins"}, "Geçersiz alıcı grubu"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := tc.req
			_, err := suite.messageService.Broadcast(suite.ctx, suite.adminID, &req)

			suite.True(apperrors.IsValidation(err))
			suite.Equal(tc.msg, apperrors.PublicMessage(err))
		})
	}
}

func (suite *MessageServiceTestSuite) TestSendGoesToOrganisers() {
	participant := uuid.New()
	admins := []models.User{
		{BaseModel: models.BaseModel{ID: uuid.New()}, IsAdmin: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, IsAdmin: true},
	}
	suite.mockUsers.EXPECT().GetAdmins().Return(admins, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(msg *models.Message) error {
			suite.Equal([]uuid.UUID{admins[0].ID, admins[1].ID}, recipientIDs(msg))
			suite.Equal(participant, *msg.SenderID)
			return nil
		})

	resp, err := suite.messageService.Send(suite.ctx, participant, &service.SendMessageRequest{Subject: "Soru", Body: "Sunucu çöktü"})

	suite.Require().NoError(err)
	suite.Equal(2, resp.RecipientCount)
}

func (suite *MessageServiceTestSuite) TestInboxSenderNames() {
	userID := uuid.New()
	now := time.Now()
	rows := []models.MessageRecipient{
		{MessageID: uuid.New(), Message: &models.Message{Subject: "Duyuru", Sender: &models.User{Name: "Admin", IsAdmin: true}}},
		{MessageID: uuid.New(), ReadAt: &now, Message: &models.Message{Subject: "Soru", Sender: &models.User{Name: "Ayşe"}}},
		{MessageID: uuid.New(), Message: &models.Message{Subject: "Sistem"}},
	}
	suite.mockRepo.EXPECT().Inbox(userID, 20, 0).Return(rows, int64(3), nil)

	resp, err := suite.messageService.Inbox(userID, 1, 20)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Messages, 3)
	suite.Equal("Organizasyon Ekibi", resp.Messages[0].SenderName)
	suite.Equal("Ayşe", resp.Messages[1].SenderName)
	suite.NotNil(resp.Messages[1].ReadAt)
	suite.Equal("Organizasyon Ekibi", resp.Messages[2].SenderName)
}

func (suite *MessageServiceTestSuite) TestOutboxCountsReads() {
	now := time.Now()
	msgs := []models.Message{{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Subject:    "Hatırlatma",
		Recipients: []models.MessageRecipient{{ReadAt: &now}, {}, {}},
	}}
	suite.mockRepo.EXPECT().Outbox(suite.adminID, 20, 0).Return(msgs, int64(1), nil)

	resp, err := suite.messageService.Outbox(suite.adminID, 0, 0)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Messages, 1)
	suite.Equal(3, resp.Messages[0].RecipientCount)
	suite.Equal(1, resp.Messages[0].ReadCount)
}

func (suite *MessageServiceTestSuite) TestMarkReadAndDeletesReportMissingRows() {
	userID, messageID := uuid.New(), uuid.New()

	suite.Run("mark read", func() {
		suite.mockRepo.EXPECT().MarkRead(messageID, userID, gomock.Any()).Return(int64(0), nil)
		suite.ErrorIs(suite.messageService.MarkRead(userID, messageID), apperrors.ErrMessageNotFound)
	})

	suite.Run("delete inbox copy", func() {
		suite.mockRepo.EXPECT().DeleteForRecipient(messageID, userID).Return(int64(1), nil)
		suite.NoError(suite.messageService.DeleteForRecipient(userID, messageID))
	})

	suite.Run("delete outbox copy of someone else's message", func() {
		suite.mockRepo.EXPECT().DeleteForSender(messageID, userID).Return(int64(0), nil)
		suite.ErrorIs(suite.messageService.DeleteForSender(userID, messageID), apperrors.ErrMessageNotFound)
	})
}

func (suite *MessageServiceTestSuite) TestUnreadCount() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().UnreadCount(userID).Return(int64(4), nil)

	n, err := suite.messageService.UnreadCount(userID)

	suite.NoError(err)
	suite.Equal(int64(4), n)
}

func TestMessageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}
