package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"gamejam-portal-backend/internal/api/handlers"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/mocks"
	"gamejam-portal-backend/internal/service"
	"gamejam-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessageHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMessageServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

func (suite *MessageHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMessageServiceInterface(suite.ctrl)
	handler := handlers.NewMessageHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	authed := suite.httpSuite.Router.Group("/api")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})
	messages := authed.Group("/messages")
	{
		messages.GET("/inbox", handler.Inbox)
		messages.GET("/outbox", handler.Outbox)
		messages.GET("/unread-count", handler.UnreadCount)
		messages.POST("", handler.Send)
		messages.POST("/:id/read", handler.MarkRead)
		messages.DELETE("/:id", handler.Delete)
	}
	authed.POST("/admin/messages/broadcast", handler.Broadcast)

	// no identity on this route
	suite.httpSuite.Router.GET("/anon/inbox", handler.Inbox)
}

func (suite *MessageHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MessageHandlerTestSuite) TestInbox() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Inbox(suite.userID, 1, 20).
			Return(&service.InboxResponse{
				Messages: []service.InboxItem{{MessageID: uuid.New(), Subject: "Hoş geldiniz", SenderName: "Organizasyon Ekibi"}},
				Total:    1, Page: 1, PageSize: 20,
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/messages/inbox", nil)

		var resp service.InboxResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Len(t, resp.Messages, 1)
	})

	suite.T().Run("Unauthenticated", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/anon/inbox", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Giriş yapmanız gerekiyor")
	})
}

func (suite *MessageHandlerTestSuite) TestOutboxAndUnread() {
	suite.mockService.EXPECT().
		Outbox(suite.userID, 3, 5).
		Return(&service.OutboxResponse{Messages: []service.MessageResponse{}, Page: 3, PageSize: 5}, nil)
	suite.mockService.EXPECT().UnreadCount(suite.userID).Return(int64(4), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/messages/outbox?page=3&page_size=5", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/messages/unread-count", nil)
	var resp handlers.UnreadCountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(4), resp.Count)
}

func (suite *MessageHandlerTestSuite) TestSend() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Send(gomock.Any(), suite.userID, &service.SendMessageRequest{Subject: "Soru", Body: "Teslim saati?"}).
			Return(&service.MessageResponse{ID: uuid.New(), Subject: "Soru", RecipientCount: 2}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/messages",
			map[string]string{"subject": "Soru", "body": "Teslim saati?"})

		var resp service.MessageResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &resp)
		assert.Equal(t, 2, resp.RecipientCount)
	})

	suite.T().Run("NoOrganisers", func(t *testing.T) {
		suite.mockService.EXPECT().Send(gomock.Any(), suite.userID, gomock.Any()).Return(nil, apperrors.ErrNoRecipients)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/messages",
			map[string]string{"subject": "Soru", "body": "?"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *MessageHandlerTestSuite) TestBroadcast() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		Broadcast(gomock.Any(), suite.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.BroadcastRequest) (*service.MessageResponse, error) {
			suite.Equal(service.AudienceTeam, req.Audience)
			suite.Require().NotNil(req.TeamID)
			suite.Equal(teamID, *req.TeamID)
			return &service.MessageResponse{ID: uuid.New(), RecipientCount: 3}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/messages/broadcast", map[string]interface{}{
		"subject":  "Duyuru",
		"body":     "Yarın 10:00",
		"audience": "team",
		"team_id":  teamID.String(),
	})

	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *MessageHandlerTestSuite) TestMarkReadAndDelete() {
	id := uuid.New()

	suite.T().Run("MarkRead", func(t *testing.T) {
		suite.mockService.EXPECT().MarkRead(suite.userID, id).Return(nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/messages/"+id.String()+"/read", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("DeleteDefaultsToInbox", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteForRecipient(suite.userID, id).Return(nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/messages/"+id.String(), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("DeleteFromOutbox", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteForSender(suite.userID, id).Return(apperrors.ErrMessageNotFound)
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/messages/"+id.String()+"?box=outbox", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("UnknownBox", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/messages/"+id.String()+"?box=trash", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestMessageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MessageHandlerTestSuite))
}
