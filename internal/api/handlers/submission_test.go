package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"gamejam-portal-backend/internal/api/handlers"
	"gamejam-portal-backend/internal/database/models"
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

type SubmissionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSubmissionServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

func (suite *SubmissionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSubmissionServiceInterface(suite.ctrl)
	handler := handlers.NewSubmissionHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	api := suite.httpSuite.Router.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})
	api.GET("/submissions/mine", handler.GetMine)
	api.PUT("/submissions/mine", handler.PutMine)
	api.GET("/admin/submissions", handler.List)
	api.POST("/admin/submissions/:id/review", handler.Review)
}

func (suite *SubmissionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubmissionHandlerTestSuite) TestMine() {
	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().Mine(suite.userID).Return(nil, apperrors.ErrSubmissionNotFound)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/submissions/mine", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Save", func(t *testing.T) {
		suite.mockService.EXPECT().
			Upsert(gomock.Any(), suite.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.UpsertSubmissionRequest) (*service.SubmissionResponse, error) {
				assert.True(t, req.Submit)
				assert.Equal(t, []string{"platformer"}, req.Tags)
				return &service.SubmissionResponse{Title: req.Title, Slug: "kayip-piksel", Status: models.SubmissionStatusSubmitted}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/submissions/mine", map[string]interface{}{
			"title":  "Kayıp Piksel",
			"tags":   []string{"platformer"},
			"submit": true,
		})

		var resp service.SubmissionResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, "kayip-piksel", resp.Slug)
	})

	suite.T().Run("Locked", func(t *testing.T) {
		suite.mockService.EXPECT().Upsert(gomock.Any(), suite.userID, gomock.Any()).Return(nil, apperrors.ErrSubmissionLocked)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/submissions/mine", map[string]interface{}{"title": "X"})

		var resp handlers.ConflictResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &resp)
		assert.Equal(t, "ALREADY_REVIEWED", resp.Code)
	})
}

func (suite *SubmissionHandlerTestSuite) TestAdmin() {
	suite.T().Run("ListWithFilters", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(models.SubmissionStatusSubmitted, "puzzle", 1, 20).
			Return(&service.SubmissionListResponse{Submissions: []service.SubmissionResponse{}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/admin/submissions?status=submitted&tag=puzzle", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Review", func(t *testing.T) {
		id := uuid.New()
		score := 87
		suite.mockService.EXPECT().
			Review(gomock.Any(), id, &service.ReviewSubmissionRequest{Score: 87, Note: "iyi"}).
			Return(&service.SubmissionResponse{ID: id, Status: models.SubmissionStatusReviewed, ReviewScore: &score}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/submissions/"+id.String()+"/review",
			map[string]interface{}{"score": 87, "note": "iyi"})

		var resp service.SubmissionResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, 87, *resp.ReviewScore)
	})
}

func TestSubmissionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerTestSuite))
}
